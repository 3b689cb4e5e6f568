package httpapi

import (
	"net/http"

	"enertek-backend-go/internal/models"
	"enertek-backend-go/internal/services"
)

type SlideRequest struct {
	Description *string `json:"description"`
	PicturePath string  `json:"picturePath"`
	EntityType  *string `json:"entityType"`
	EntityID    *int64  `json:"entityId"`
}

func (s *Server) ListSlides(w http.ResponseWriter, r *http.Request) {
	items, err := s.slides.All(parseLimit(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) GetSlide(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	item, err := s.slides.ByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if item == nil {
		WriteError(w, http.StatusNotFound, "Slide not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) CreateSlide(w http.ResponseWriter, r *http.Request) {
	var req SlideRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := &models.Slide{
		Description: req.Description,
		PicturePath: req.PicturePath,
		EntityType:  req.EntityType,
		EntityID:    req.EntityID,
	}
	created, err := s.slides.Create(item, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (s *Server) UpdateSlide(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req SlideRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := &models.Slide{
		ID:          id,
		Description: req.Description,
		PicturePath: req.PicturePath,
		EntityType:  req.EntityType,
		EntityID:    req.EntityID,
	}
	updated, err := s.slides.Update(item, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !updated {
		WriteError(w, http.StatusNotFound, "Slide not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) DeleteSlide(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	writeDeleteOutcome(w, s.slides.Delete(id))
}

func (s *Server) UploadSlidePicture(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	item, err := s.slides.ByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if item == nil {
		WriteError(w, http.StatusNotFound, "Slide not found")
		return
	}
	file, header, ok := s.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()
	url, err := s.uploader.SaveImage(services.FeatureSlides, header.Filename, header.Size, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	previous := item.PicturePath
	item.PicturePath = url
	if _, err := s.slides.Update(item, CurrentActor(r)); err != nil {
		s.uploader.Remove(url)
		writeServiceError(w, err)
		return
	}
	if previous != url && previous != services.PlaceholderSlidePicture {
		s.uploader.Remove(previous)
	}
	WriteJSON(w, http.StatusOK, map[string]string{"url": url})
}
