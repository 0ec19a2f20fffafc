package repository

import (
	"context"
	stderrors "errors"

	"portfolio-api/internal/models"
	"portfolio-api/internal/pkg/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	// CreateIfMissing inserts admin unless one with the same email exists; an existing
	// record is left untouched. It reports whether a row was inserted.
	CreateIfMissing(ctx context.Context, admin *models.Admin) (bool, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	result := r.db.WithContext(ctx).First(&admin, "email = ?", email)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound
		}
		return nil, errors.Database(result.Error, "failed to get admin by email")
	}
	return &admin, nil
}

func (r *adminRepository) CreateIfMissing(ctx context.Context, admin *models.Admin) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(admin)
	if result.Error != nil {
		return false, errors.Database(result.Error, "failed to create admin")
	}
	return result.RowsAffected > 0, nil
}
