package httpapi

import (
	"net/http"

	"enertek-backend-go/internal/models"
	"enertek-backend-go/internal/services"
)

type SolutionRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	MainPicture *string  `json:"mainPicture"`
	Photos      []string `json:"photos"`
}

type SolutionProductRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}

func (s *Server) ListSolutions(w http.ResponseWriter, r *http.Request) {
	items, err := s.solutions.All(parseLimit(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) GetSolution(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	item, err := s.solutions.ByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if item == nil {
		WriteError(w, http.StatusNotFound, "Solution not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) CreateSolution(w http.ResponseWriter, r *http.Request) {
	var req SolutionRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := &models.Solution{
		Title:       req.Title,
		Description: req.Description,
		MainPicture: req.MainPicture,
		Photos:      req.Photos,
	}
	created, err := s.solutions.Create(item, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (s *Server) UpdateSolution(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req SolutionRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := &models.Solution{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		MainPicture: req.MainPicture,
		Photos:      req.Photos,
	}
	updated, err := s.solutions.Update(item, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !updated {
		WriteError(w, http.StatusNotFound, "Solution not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) DeleteSolution(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	writeDeleteOutcome(w, s.solutions.Delete(id))
}

func (s *Server) AddSolutionProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req SolutionProductRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	if err := s.solutions.AddProduct(id, req.ProductID); err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, models.SolutionProduct{SolutionID: id, ProductID: req.ProductID})
}

func (s *Server) RemoveSolutionProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	productID, ok := parseID(r, "productId")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	if err := s.solutions.RemoveProduct(id, productID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) UploadSolutionPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	file, header, ok := s.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()
	url, err := s.uploader.SaveImage(services.FeatureSolutions, header.Filename, header.Size, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := s.solutions.AddPhoto(id, url); err != nil {
		s.uploader.Remove(url)
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"url": url})
}

// UploadSolutionMainPicture replaces the solution's cover image.
func (s *Server) UploadSolutionMainPicture(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	item, err := s.solutions.ByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if item == nil {
		WriteError(w, http.StatusNotFound, "Solution not found")
		return
	}
	file, header, ok := s.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()
	url, err := s.uploader.SaveImage(services.FeatureSolutions, header.Filename, header.Size, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	previous := item.MainPicture
	item.MainPicture = &url
	if _, err := s.solutions.Update(item, CurrentActor(r)); err != nil {
		s.uploader.Remove(url)
		writeServiceError(w, err)
		return
	}
	if previous != nil && *previous != url {
		s.uploader.Remove(*previous)
	}
	WriteJSON(w, http.StatusOK, map[string]string{"url": url})
}
