package httpapi

import (
	"net/http"
	"strings"

	"enertek-backend-go/internal/models"
	"enertek-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

type PageRequest struct {
	Title   string  `json:"title" validate:"required"`
	Slug    string  `json:"slug" validate:"required"`
	Content *string `json:"content"`
	Status  string  `json:"status"`
}

func (s *Server) ListPages(w http.ResponseWriter, r *http.Request) {
	items, err := s.pages.All(parseLimit(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) GetPage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	item, err := s.pages.ByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if item == nil {
		WriteError(w, http.StatusNotFound, "Page not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) GetPageBySlug(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		WriteError(w, http.StatusBadRequest, "Invalid slug")
		return
	}
	item, err := s.pages.BySlug(slug)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if item == nil {
		WriteError(w, http.StatusNotFound, "Page not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) RecordPageVisit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	count, found, err := s.pages.RecordVisit(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !found {
		WriteError(w, http.StatusNotFound, "Page not found")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]int64{"visitorCount": count})
}

func (s *Server) CreatePage(w http.ResponseWriter, r *http.Request) {
	var req PageRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := &models.Page{
		Title:   req.Title,
		Slug:    req.Slug,
		Content: req.Content,
		Status:  models.PageStatus(req.Status),
	}
	created, err := s.pages.Create(item, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (s *Server) UpdatePage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req PageRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := &models.Page{
		ID:      id,
		Title:   req.Title,
		Slug:    req.Slug,
		Content: req.Content,
		Status:  models.PageStatus(req.Status),
	}
	updated, err := s.pages.Update(item, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !updated {
		WriteError(w, http.StatusNotFound, "Page not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) DeletePage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	writeDeleteOutcome(w, s.pages.Delete(id))
}

// UploadPageAsset stages an image for embedding in page content and returns
// its URL; nothing is persisted beyond the file itself.
func (s *Server) UploadPageAsset(w http.ResponseWriter, r *http.Request) {
	file, header, ok := s.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()
	url, err := s.uploader.SaveImage(services.FeaturePages, header.Filename, header.Size, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"url": url})
}
