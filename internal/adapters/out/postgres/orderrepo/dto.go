// Package orderrepo persists order aggregates in PostgreSQL through GORM.
//
// An order is stored across three tables: orders, pancakes and ingredients.
// Pancakes and ingredients carry a position column so that the order in which
// they were added survives a round trip.
package orderrepo

import (
	"time"

	"pancakelab/internal/core/domain/model/kernel"
	"pancakelab/internal/core/domain/model/order"
	"pancakelab/internal/core/domain/model/pancake"

	"github.com/google/uuid"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Building  string       `gorm:"size:64;not null"`
	Room      string       `gorm:"size:16;not null"`
	Status    int          `gorm:"not null;index"`
	CreatedAt time.Time    `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt time.Time    `gorm:"not null;autoUpdateTime:false"`
	Pancakes  []PancakeDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// PancakeDTO is the row of the pancakes table.
type PancakeDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	Ingredients []IngredientDTO `gorm:"foreignKey:PancakeID;constraint:OnDelete:CASCADE"`
}

func (PancakeDTO) TableName() string {
	return "pancakes"
}

// IngredientDTO is the row of the ingredients table. Ingredients have no
// identity of their own, so the key is a surrogate.
type IngredientDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	PancakeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position  int       `gorm:"not null"`
	Name      string    `gorm:"size:128;not null"`
	Category  int       `gorm:"not null"`
}

func (IngredientDTO) TableName() string {
	return "ingredients"
}

// Models lists every table of the store, for AutoMigrate.
func Models() []any {
	return []any{&OrderDTO{}, &PancakeDTO{}, &IngredientDTO{}}
}

func fromDomain(o *order.Order) OrderDTO {
	pancakes := o.Pancakes()
	dto := OrderDTO{
		ID:        o.ID().Bytes(),
		Building:  o.Address().Building(),
		Room:      o.Address().Room(),
		Status:    int(o.Status()),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
		Pancakes:  make([]PancakeDTO, 0, len(pancakes)),
	}

	for i, p := range pancakes {
		ingredients := p.Ingredients()
		pDTO := PancakeDTO{
			ID:          p.ID().Bytes(),
			OrderID:     dto.ID,
			Position:    i,
			Ingredients: make([]IngredientDTO, 0, len(ingredients)),
		}
		for j, ing := range ingredients {
			pDTO.Ingredients = append(pDTO.Ingredients, IngredientDTO{
				PancakeID: pDTO.ID,
				Position:  j,
				Name:      ing.Name(),
				Category:  int(ing.Category()),
			})
		}
		dto.Pancakes = append(dto.Pancakes, pDTO)
	}

	return dto
}

// toDomain rebuilds the aggregate through the restore constructors, so rows
// that break an invariant are reported instead of loaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewDeliveryAddress(dto.Building, dto.Room)
	if err != nil {
		return nil, err
	}

	pancakes := make([]pancake.Pancake, 0, len(dto.Pancakes))
	for _, pDTO := range dto.Pancakes {
		p, pErr := pancakeToDomain(pDTO)
		if pErr != nil {
			return nil, pErr
		}
		pancakes = append(pancakes, p)
	}

	return order.RestoreOrder(id, address, pancakes, order.Status(dto.Status), dto.CreatedAt, dto.UpdatedAt)
}

func pancakeToDomain(dto PancakeDTO) (pancake.Pancake, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return pancake.Pancake{}, err
	}

	ingredients := make([]pancake.Ingredient, 0, len(dto.Ingredients))
	for _, iDTO := range dto.Ingredients {
		ing, iErr := pancake.NewIngredient(iDTO.Name, pancake.Category(iDTO.Category))
		if iErr != nil {
			return pancake.Pancake{}, iErr
		}
		ingredients = append(ingredients, ing)
	}

	return pancake.RestorePancake(id, ingredients)
}
