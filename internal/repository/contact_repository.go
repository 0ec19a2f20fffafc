package repository

import (
	"context"
	stderrors "errors"

	"portfolio-api/internal/models"
	"portfolio-api/internal/pkg/errors"

	"gorm.io/gorm"
)

type ContactRepository interface {
	List(ctx context.Context) ([]models.ContactMessage, error)
	ListUnread(ctx context.Context) ([]models.ContactMessage, error)
	GetByID(ctx context.Context, id uint) (*models.ContactMessage, error)
	Create(ctx context.Context, message *models.ContactMessage) error
	MarkRead(ctx context.Context, id uint) (*models.ContactMessage, error)
	Delete(ctx context.Context, id uint) (*models.ContactMessage, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&messages).Error; err != nil {
		return nil, errors.Database(err, "failed to list contact messages")
	}
	return messages, nil
}

func (r *contactRepository) ListUnread(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.WithContext(ctx).
		Where("read = ?", false).
		Order("created_at DESC, id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, errors.Database(err, "failed to list unread contact messages")
	}
	return messages, nil
}

func (r *contactRepository) GetByID(ctx context.Context, id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.WithContext(ctx).First(&message, "id = ?", id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("Message", id)
		}
		return nil, errors.Database(err, "failed to get contact message")
	}
	return &message, nil
}

func (r *contactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return errors.Database(err, "failed to create contact message")
	}
	return nil
}

func (r *contactRepository) MarkRead(ctx context.Context, id uint) (*models.ContactMessage, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	err := r.db.WithContext(ctx).Model(&models.ContactMessage{ID: id}).Update("read", true).Error
	if err != nil {
		return nil, errors.Database(err, "failed to mark contact message as read")
	}
	return r.GetByID(ctx, id)
}

func (r *contactRepository) Delete(ctx context.Context, id uint) (*models.ContactMessage, error) {
	message, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.ContactMessage{}, "id = ?", id).Error; err != nil {
		return nil, errors.Database(err, "failed to delete contact message")
	}
	return message, nil
}
