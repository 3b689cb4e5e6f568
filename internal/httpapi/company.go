package httpapi

import (
	"net/http"

	"enertek-backend-go/internal/models"
)

type CompanyRequest struct {
	Name        string  `json:"name" validate:"required"`
	About       *string `json:"about"`
	Address     *string `json:"address"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	MapEmbedURL *string `json:"mapEmbedUrl"`
	Facebook    *string `json:"facebook"`
	Instagram   *string `json:"instagram"`
	LinkedIn    *string `json:"linkedin"`
}

func companyFromRequest(req CompanyRequest) models.CompanyInformation {
	return models.CompanyInformation{
		Name:        req.Name,
		About:       req.About,
		Address:     req.Address,
		Email:       req.Email,
		Phone:       req.Phone,
		MapEmbedURL: req.MapEmbedURL,
		Facebook:    req.Facebook,
		Instagram:   req.Instagram,
		LinkedIn:    req.LinkedIn,
	}
}

// GetCompany serves the public company profile, the first row on record.
func (s *Server) GetCompany(w http.ResponseWriter, r *http.Request) {
	item, err := s.company.Current()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if item == nil {
		WriteError(w, http.StatusNotFound, "Company information not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) ListCompany(w http.ResponseWriter, r *http.Request) {
	items, err := s.company.All()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req CompanyRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := companyFromRequest(req)
	created, err := s.company.Create(&item, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (s *Server) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req CompanyRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := companyFromRequest(req)
	item.ID = id
	updated, err := s.company.Update(&item, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !updated {
		WriteError(w, http.StatusNotFound, "Company information not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	writeDeleteOutcome(w, s.company.Delete(id))
}
