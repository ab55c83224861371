package orderrepo

import (
	"context"
	"errors"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const storeName = "postgres"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
// The schema must already exist; see postgres.Migrate.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{
		db: db,
	}
}

// Save upserts the order row and replaces its pancakes and ingredients in a single transaction.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
			Omit(clause.Associations).
			Create(&dto).Error; err != nil {
			return err
		}

		if err := deletePancakes(tx, dto.ID); err != nil {
			return err
		}

		if len(dto.Pancakes) == 0 {
			return nil
		}
		return tx.Create(&dto.Pancakes).Error
	})
	if err != nil {
		return errs.NewUnavailableErrorWithCause(storeName, err)
	}

	return nil
}

// Get retrieves an order with its pancakes and ingredients by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withPancakes(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewUnavailableErrorWithCause(storeName, err)
	}

	return toDomain(dto)
}

// FindActive retrieves all orders that are not Delivered or Cancelled, oldest first.
func (r *GormOrderRepository) FindActive(ctx context.Context) ([]*order.Order, error) {
	active := make([]int, 0, len(order.Statuses()))
	for _, s := range order.Statuses() {
		if s.IsActive() {
			active = append(active, int(s))
		}
	}

	return r.find(ctx, "status IN ?", active)
}

// FindByStatus retrieves all orders in the given status, oldest first.
func (r *GormOrderRepository) FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, "status = ?", int(status))
}

// Exists reports whether an order row with the given ID is present.
func (r *GormOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, errs.NewUnavailableErrorWithCause(storeName, err)
	}

	return count > 0, nil
}

// Delete removes the order together with its pancakes and ingredients.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var removed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deletePancakes(tx, id.Bytes()); err != nil {
			return err
		}

		result := tx.Delete(&OrderDTO{}, "id = ?", id.Bytes())
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, errs.NewUnavailableErrorWithCause(storeName, err)
	}

	return removed, nil
}

func (r *GormOrderRepository) find(ctx context.Context, query string, args ...any) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withPancakes(ctx).Where(query, args...).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, errs.NewUnavailableErrorWithCause(storeName, err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) withPancakes(ctx context.Context) *gorm.DB {
	byPosition := func(db *gorm.DB) *gorm.DB { return db.Order("position") }

	return r.db.WithContext(ctx).
		Preload("Pancakes", byPosition).
		Preload("Pancakes.Ingredients", byPosition)
}

func deletePancakes(tx *gorm.DB, orderID any) error {
	pancakeIDs := tx.Model(&PancakeDTO{}).Select("id").Where("order_id = ?", orderID)
	if err := tx.Where("pancake_id IN (?)", pancakeIDs).Delete(&IngredientDTO{}).Error; err != nil {
		return err
	}

	return tx.Where("order_id = ?", orderID).Delete(&PancakeDTO{}).Error
}
