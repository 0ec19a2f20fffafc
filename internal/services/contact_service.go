package services

import (
	"context"
	"strings"

	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"
)

type CreateContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type ContactService interface {
	FindAll(ctx context.Context) ([]models.ContactMessage, error)
	FindUnread(ctx context.Context) ([]models.ContactMessage, error)
	FindOne(ctx context.Context, id uint) (*models.ContactMessage, error)
	Create(ctx context.Context, input CreateContactInput) (*models.ContactMessage, error)
	MarkAsRead(ctx context.Context, id uint) (*models.ContactMessage, error)
	Remove(ctx context.Context, id uint) (*models.ContactMessage, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
	audit       AuditLogService
}

// Contact messages are not cached.
func NewContactService(contactRepo repository.ContactRepository, audit AuditLogService) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		audit:       audit,
	}
}

func (s *contactService) FindAll(ctx context.Context) ([]models.ContactMessage, error) {
	return s.contactRepo.List(ctx)
}

func (s *contactService) FindUnread(ctx context.Context) ([]models.ContactMessage, error) {
	return s.contactRepo.ListUnread(ctx)
}

func (s *contactService) FindOne(ctx context.Context, id uint) (*models.ContactMessage, error) {
	return s.contactRepo.GetByID(ctx, id)
}

func (s *contactService) Create(ctx context.Context, input CreateContactInput) (*models.ContactMessage, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	message := &models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}
	if err := s.contactRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *contactService) MarkAsRead(ctx context.Context, id uint) (*models.ContactMessage, error) {
	message, err := s.contactRepo.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, models.AuditMarkRead, "contact_message", id, "")
	return message, nil
}

func (s *contactService) Remove(ctx context.Context, id uint) (*models.ContactMessage, error) {
	message, err := s.contactRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, models.AuditDelete, "contact_message", id, message.Email)
	return message, nil
}
