package services

import (
	"log"
	"strings"

	"enertek-backend-go/internal/models"
	"enertek-backend-go/internal/store"
)

type ContactService struct {
	store  *store.Store
	mailer *Mailer
}

func NewContactService(s *store.Store, mailer *Mailer) *ContactService {
	return &ContactService{store: s, mailer: mailer}
}

func (s *ContactService) All(limit int) ([]models.ContactMessage, error) {
	return s.store.Contacts.All(limit)
}

func (s *ContactService) ByID(id int64) (*models.ContactMessage, error) {
	return s.store.Contacts.ByID(id)
}

// Create validates the sender's email and phone before any insert and fires
// the notification mail best-effort after the row is stored.
func (s *ContactService) Create(item *models.ContactMessage, actor string) (*models.ContactMessage, error) {
	if err := validateContact(item); err != nil {
		return nil, err
	}
	created, err := s.store.Contacts.Create(item, actor)
	if err != nil {
		return nil, err
	}
	if s.mailer != nil {
		if err := s.mailer.NotifyContact(created); err != nil {
			log.Printf("contact notification: %v", err)
		}
	}
	return created, nil
}

func (s *ContactService) Update(item *models.ContactMessage, actor string) (bool, error) {
	if err := validateContact(item); err != nil {
		return false, err
	}
	return s.store.Contacts.Update(item, actor)
}

func (s *ContactService) Delete(id int64) DeleteOutcome {
	return outcomeFromDelete(s.store.Contacts.Delete(id),
		"Cannot delete message, records still reference it")
}

func validateContact(item *models.ContactMessage) error {
	firstName, err := NormalizeRequired(item.FirstName, "Name is required")
	if err != nil {
		return ErrBadRequest(err.Error())
	}
	message, err := NormalizeRequired(item.Message, "Message is required")
	if err != nil {
		return ErrBadRequest(err.Error())
	}
	if !ValidEmail(item.Email) {
		return ErrBadRequest("A valid email address is required")
	}
	if !ValidPhone(item.Phone) {
		return ErrBadRequest("A valid phone number is required")
	}
	item.FirstName = firstName
	item.Message = message
	item.Email = strings.TrimSpace(item.Email)
	item.Phone = strings.TrimSpace(item.Phone)
	return nil
}
