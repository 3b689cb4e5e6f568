package httpapi

import (
	"net/http"
	"strings"

	"enertek-backend-go/internal/models"
)

type ContactMessageRequest struct {
	FirstName string  `json:"firstName" validate:"required"`
	LastName  *string `json:"lastName"`
	Company   *string `json:"company"`
	Email     string  `json:"email" validate:"required"`
	Phone     string  `json:"phone" validate:"required"`
	Message   string  `json:"message" validate:"required"`
}

// CreateContactMessage is the public contact form endpoint. The sender is
// not authenticated, so the audit actor falls back to the submitted email.
func (s *Server) CreateContactMessage(w http.ResponseWriter, r *http.Request) {
	var req ContactMessageRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	actor := strings.TrimSpace(req.Email)
	if actor == "" {
		actor = "anonymous"
	}
	item := &models.ContactMessage{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	}
	created, err := s.contacts.Create(item, actor)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, created)
}

func (s *Server) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	items, err := s.contacts.All(parseLimit(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) GetContactMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	item, err := s.contacts.ByID(id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if item == nil {
		WriteError(w, http.StatusNotFound, "Message not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) UpdateContactMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req ContactMessageRequest
	if err := s.decodeValid(r, &req); err != nil {
		writeServiceError(w, err)
		return
	}
	item := &models.ContactMessage{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	}
	updated, err := s.contacts.Update(item, CurrentActor(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !updated {
		WriteError(w, http.StatusNotFound, "Message not found")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) DeleteContactMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	writeDeleteOutcome(w, s.contacts.Delete(id))
}
