package service

import (
	"context"
	"errors"

	"github.com/jasakreatif/storefront-service/internal/errs"
	"github.com/jasakreatif/storefront-service/internal/model"
	"gorm.io/gorm"
)

// OrderServicer — интерфейс заказов для handler-слоя (Dependency Inversion).
type OrderServicer interface {
	Create(ctx context.Context, o *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, filter map[string]interface{}) ([]model.Order, int64, error)
	Update(ctx context.Context, id string, changes map[string]interface{}) (*model.Order, error)
}

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Create inserts the order as-is. Status and telegram_user_id defaults are the
// caller's responsibility; no referential check against services is made.
func (s *OrderService) Create(ctx context.Context, o *model.Order) error {
	return s.db.WithContext(ctx).Create(o).Error
}

// GetByID returns the order joined with its service. A dangling service_id
// leaves Service nil rather than failing.
func (s *OrderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	if err := s.db.WithContext(ctx).Preload("Service").First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// List returns orders newest first, each joined with its service.
func (s *OrderService) List(ctx context.Context, filter map[string]interface{}) ([]model.Order, int64, error) {
	var items []model.Order
	var total int64
	tx := s.db.WithContext(ctx).Model(&model.Order{})
	for k, v := range filter {
		tx = tx.Where(k, v)
	}
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := tx.Preload("Service").Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update applies a partial update: only keys present in changes are written,
// so omitted fields keep their stored values and an explicit empty string
// clears. The full row is re-fetched afterwards (Updates does not refresh
// columns) so callers always observe fresh store state.
func (s *OrderService) Update(ctx context.Context, id string, changes map[string]interface{}) (*model.Order, error) {
	var o model.Order
	if err := s.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&o).Updates(changes).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}
