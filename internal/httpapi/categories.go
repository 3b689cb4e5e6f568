package httpapi

import (
	"net/http"

	"enertek-backend-go/internal/models"
)

type CategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := s.categories.All(parseLimit(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	item, err := s.categories.ByID(id)
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

func (s *Server) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := &models.Category{Name: req.Name, Description: req.Description}
	created, err := s.categories.Create(item, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (s *Server) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req CategoryRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := &models.Category{ID: id, Name: req.Name, Description: req.Description}
	updated, err := s.categories.Update(item, CurrentActor(r))
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

func (s *Server) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	writeDeleteOutcome(w, s.categories.Delete(id))
}
