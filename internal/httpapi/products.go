package httpapi

import (
	"net/http"
	"strings"

	"enertek-backend-go/internal/models"
	"enertek-backend-go/internal/services"
)

type ProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	CategoryID  *int64   `json:"categoryId"`
	Photos      []string `json:"photos"`
}

func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	items, err := s.products.All(parseLimit(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	items, err := s.products.ByCategory(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	item, err := s.products.ByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if item == nil {
		WriteError(w, http.StatusNotFound, "Product not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Photos:      req.Photos,
	}
	created, err := s.products.Create(item, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (s *Server) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req ProductRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := &models.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Photos:      req.Photos,
	}
	updated, err := s.products.Update(item, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !updated {
		WriteError(w, http.StatusNotFound, "Product not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	writeDeleteOutcome(w, s.products.Delete(id))
}

// UploadProductPhoto stages the image on disk and records its URL in the
// photo sub-store.
func (s *Server) UploadProductPhoto(w http.ResponseWriter, r *http.Request) {
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
	url, err := s.uploader.SaveImage(services.FeatureProducts, header.Filename, header.Size, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if err := s.products.AddPhoto(id, url); err != nil {
		s.uploader.Remove(url)
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]string{"url": url})
}

// DeletePhotoByURL removes every photo row carrying the url, then the file.
func (s *Server) DeletePhotoByURL(w http.ResponseWriter, r *http.Request) {
	url := strings.TrimSpace(r.URL.Query().Get("url"))
	if url == "" {
		WriteError(w, http.StatusBadRequest, "url query parameter is required")
		return
	}
	removed, err := s.solutions.DeletePhoto(url)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if removed == 0 {
		WriteError(w, http.StatusNotFound, "Photo not found")
		return
	}
	s.uploader.Remove(url)
	w.WriteHeader(http.StatusNoContent)
}
