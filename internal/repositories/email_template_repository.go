package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kolok/internal/models/db_models"
)

type EmailTemplateRepository interface {
	FindByName(ctx context.Context, name string) (*db_models.EmailTemplate, error)
}

type emailTemplateRepository struct {
	db *gorm.DB
}

func NewEmailTemplateRepository(db *gorm.DB) EmailTemplateRepository {
	return &emailTemplateRepository{db: db}
}

func (r *emailTemplateRepository) FindByName(ctx context.Context, name string) (*db_models.EmailTemplate, error) {
	var tpl db_models.EmailTemplate
	err := r.db.WithContext(ctx).First(&tpl, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tpl, nil
}
