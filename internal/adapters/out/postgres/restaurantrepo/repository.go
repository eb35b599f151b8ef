package restaurantrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// Save inserts a restaurant or replaces its activity flag and menu.
func (r *GormRestaurantRepository) Save(ctx context.Context, restaurant *order.Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return err
	}

	dto := fromDomain(restaurant)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"active"}),
		}).Omit("Products").Create(&dto).Error; err != nil {
			return err
		}

		if err := tx.Where("restaurant_id = ?", dto.ID).Delete(&ProductDTO{}).Error; err != nil {
			return err
		}

		if len(dto.Products) == 0 {
			return nil
		}
		return tx.Create(&dto.Products).Error
	})
}

// Get retrieves a restaurant and its menu by ID.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*order.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).Preload("Products").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
