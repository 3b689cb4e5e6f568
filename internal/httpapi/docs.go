package httpapi

import (
	"net/http"
	"strings"

	"enertek-backend-go/internal/models"
	"enertek-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

type TechnicalDocRequest struct {
	Name       string `json:"name" validate:"required"`
	CategoryID *int64 `json:"tdCategoryId"`
}

type OtherCategoryRequest struct {
	CategoryType string `json:"categoryType" validate:"required"`
	Name         string `json:"name" validate:"required"`
}

func (s *Server) ListTechnicalDocs(w http.ResponseWriter, r *http.Request) {
	items, err := s.docs.All(parseLimit(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) GetTechnicalDoc(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, err := s.docs.ByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if item == nil {
		WriteError(w, http.StatusNotFound, "Document not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) CreateTechnicalDoc(w http.ResponseWriter, r *http.Request) {
	var req TechnicalDocRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := &models.TechnicalDoc{Name: req.Name, CategoryID: req.CategoryID}
	created, err := s.docs.Create(item, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (s *Server) UpdateTechnicalDoc(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req TechnicalDocRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	existing, err := s.docs.ByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing == nil {
		WriteError(w, http.StatusNotFound, "Document not found")
		return
	}
	existing.Name = req.Name
	existing.CategoryID = req.CategoryID
	updated, err := s.docs.Update(existing, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !updated {
		WriteError(w, http.StatusNotFound, "Document not found")
		return
	}
	WriteJSON(w, http.StatusOK, existing)
}

func (s *Server) DeleteTechnicalDoc(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if strings.TrimSpace(id) == "" {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	writeDeleteOutcome(w, s.docs.Delete(id))
}

func (s *Server) UploadTechnicalDocFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, err := s.docs.ByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if item == nil {
		WriteError(w, http.StatusNotFound, "Document not found")
		return
	}
	file, header, ok := s.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()
	url, err := s.uploader.SaveDocument(services.FeatureDocuments, header.Filename, header.Size, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	previous := item.FilePath
	item.FilePath = &url
	if _, err := s.docs.Update(item, CurrentActor(r)); err != nil {
		s.uploader.Remove(url)
		writeServiceError(w, err)
		return
	}
	if previous != nil && *previous != url {
		s.uploader.Remove(*previous)
	}
	WriteJSON(w, http.StatusOK, map[string]string{"url": url})
}

// ListDocCategories returns the technical documentation branch of the
// shared category table.
func (s *Server) ListDocCategories(w http.ResponseWriter, r *http.Request) {
	items, err := s.otherCategories.ByType("TD")
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) ListOtherCategories(w http.ResponseWriter, r *http.Request) {
	categoryType := strings.TrimSpace(chi.URLParam(r, "type"))
	if categoryType == "" {
		WriteError(w, http.StatusBadRequest, "Invalid category type")
		return
	}
	items, err := s.otherCategories.ByType(categoryType)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) GetOtherCategory(w http.ResponseWriter, r *http.Request) {
	categoryType := strings.TrimSpace(chi.URLParam(r, "type"))
	id, ok := parseID(r, "id")
	if categoryType == "" || !ok {
		WriteError(w, http.StatusBadRequest, "Invalid category key")
		return
	}
	item, err := s.otherCategories.ByKey(categoryType, id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if item == nil {
		WriteError(w, http.StatusNotFound, "Category not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) CreateOtherCategory(w http.ResponseWriter, r *http.Request) {
	var req OtherCategoryRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := &models.OtherCategory{CategoryType: req.CategoryType, Name: req.Name}
	created, err := s.otherCategories.Create(item, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (s *Server) UpdateOtherCategory(w http.ResponseWriter, r *http.Request) {
	categoryType := strings.TrimSpace(chi.URLParam(r, "type"))
	id, ok := parseID(r, "id")
	if categoryType == "" || !ok {
		WriteError(w, http.StatusBadRequest, "Invalid category key")
		return
	}
	var req OtherCategoryRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := &models.OtherCategory{CategoryID: id, CategoryType: categoryType, Name: req.Name}
	updated, err := s.otherCategories.Update(item, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !updated {
		WriteError(w, http.StatusNotFound, "Category not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) DeleteOtherCategory(w http.ResponseWriter, r *http.Request) {
	categoryType := strings.TrimSpace(chi.URLParam(r, "type"))
	id, ok := parseID(r, "id")
	if categoryType == "" || !ok {
		WriteError(w, http.StatusBadRequest, "Invalid category key")
		return
	}
	writeDeleteOutcome(w, s.otherCategories.Delete(categoryType, id))
}
