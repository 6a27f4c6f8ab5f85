package service

import (
	"context"
	"errors"

	"github.com/jasakreatif/storefront-service/internal/errs"
	"github.com/jasakreatif/storefront-service/internal/model"
	"gorm.io/gorm"
)

// CatalogServicer — интерфейс каталога для handler-слоя (подменяется фейком в тестах).
type CatalogServicer interface {
	List(ctx context.Context) ([]model.Service, error)
	GetByID(ctx context.Context, id string) (*model.Service, error)
}

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// List returns every catalog service ordered by service_type ascending, the
// order the storefront groups them in.
func (s *CatalogService) List(ctx context.Context) ([]model.Service, error) {
	var items []model.Service
	if err := s.db.WithContext(ctx).Order("service_type ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*model.Service, error) {
	var svc model.Service
	if err := s.db.WithContext(ctx).First(&svc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}
