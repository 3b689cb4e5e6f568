package httpapi

import (
	"net/http"

	"enertek-backend-go/internal/models"
	"enertek-backend-go/internal/services"
)

type NewsRequest struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Author     *string  `json:"author"`
	CategoryID *int64   `json:"categoryId"`
	Photos     []string `json:"photos"`
}

func (s *Server) ListNews(w http.ResponseWriter, r *http.Request) {
	items, err := s.news.All(parseLimit(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) GetNews(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	item, err := s.news.ByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if item == nil {
		WriteError(w, http.StatusNotFound, "News not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) CreateNews(w http.ResponseWriter, r *http.Request) {
	var req NewsRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := &models.News{
		Title:      req.Title,
		Content:    req.Content,
		Author:     req.Author,
		CategoryID: req.CategoryID,
		Photos:     req.Photos,
	}
	created, err := s.news.Create(item, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (s *Server) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req NewsRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := &models.News{
		ID:         id,
		Title:      req.Title,
		Content:    req.Content,
		Author:     req.Author,
		CategoryID: req.CategoryID,
		Photos:     req.Photos,
	}
	updated, err := s.news.Update(item, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !updated {
		WriteError(w, http.StatusNotFound, "News not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	writeDeleteOutcome(w, s.news.Delete(id))
}

func (s *Server) UploadNewsPhoto(w http.ResponseWriter, r *http.Request) {
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
	url, err := s.uploader.SaveImage(services.FeatureNews, header.Filename, header.Size, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := s.news.AddPhoto(id, url); err != nil {
		s.uploader.Remove(url)
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"url": url})
}
