package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kolok/internal/models/db_models"
)

type CertificateRepository interface {
	Create(ctx context.Context, certificate *db_models.Certificate) (uuid.UUID, error)
	UpdateURL(ctx context.Context, id uuid.UUID, url string) error
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Certificate, error)
}

type certificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) Create(ctx context.Context, certificate *db_models.Certificate) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(certificate).Error; err != nil {
		return uuid.Nil, err
	}
	return certificate.ID, nil
}

// UpdateURL fills the artifact URL once the certificate id is known; issued
// certificates are otherwise never mutated.
func (r *certificateRepository) UpdateURL(ctx context.Context, id uuid.UUID, url string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Certificate{}).
		Where("id = ?", id).
		Update("certificate_url", url).Error
}

func (r *certificateRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Certificate, error) {
	var certificates []db_models.Certificate
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Preload("Location").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&certificates).Error
	if err != nil {
		return nil, err
	}
	return certificates, nil
}
