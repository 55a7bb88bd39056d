package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/J3FF-omg/SaveFood/models"
)

// Catalog holds restaurants and food offers. Quantity is the single
// contended field; every mutation of it goes through SetQuantity, Reserve or
// Release, and Reserve serializes whole batches behind one mutex so two
// overlapping checkouts can never both take the last unit.
type Catalog struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// ── Restaurants ─────────────────────────────────────────────────────────────

// Restaurants returns all restaurants in insertion order.
func (s *Catalog) Restaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Order("created_at").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// Restaurant looks up a single restaurant by identifier.
func (s *Catalog) Restaurant(id string) (models.Restaurant, error) {
	var r models.Restaurant
	err := s.db.First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Restaurant{}, ErrNotFound
	}
	if err != nil {
		return models.Restaurant{}, err
	}
	return r, nil
}

// RestaurantBySeller returns the first restaurant owned by the given seller.
// One restaurant per seller is a sample-data convention, not an enforced
// invariant, so "first" is by creation time.
func (s *Catalog) RestaurantBySeller(sellerID string) (models.Restaurant, error) {
	var r models.Restaurant
	err := s.db.Where("seller_id = ?", sellerID).Order("created_at, id").First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Restaurant{}, ErrNotFound
	}
	if err != nil {
		return models.Restaurant{}, err
	}
	return r, nil
}

// AddRestaurant stores a new restaurant and returns it with its generated
// identifier.
func (s *Catalog) AddRestaurant(r models.Restaurant) (models.Restaurant, error) {
	if r.Name == "" {
		return models.Restaurant{}, fmt.Errorf("%w: restaurant name is required", ErrInvalid)
	}
	r.ID = uuid.NewString()
	if err := s.db.Create(&r).Error; err != nil {
		return models.Restaurant{}, err
	}
	return r, nil
}

// RemoveRestaurant deletes a restaurant and its food offers.
func (s *Catalog) RemoveRestaurant(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Restaurant{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Delete(&models.FoodItem{}, "restaurant_id = ?", id).Error
	})
}

// ── Food offers ─────────────────────────────────────────────────────────────

// Food looks up a single food item by identifier.
func (s *Catalog) Food(id string) (models.FoodItem, error) {
	var f models.FoodItem
	err := s.db.First(&f, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.FoodItem{}, ErrNotFound
	}
	if err != nil {
		return models.FoodItem{}, err
	}
	return f, nil
}

// FoodByRestaurant returns every offer of a restaurant, sold out included,
// for the seller's own view.
func (s *Catalog) FoodByRestaurant(restaurantID string) ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := s.db.Where("restaurant_id = ?", restaurantID).Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListFood returns in-stock offers for the buyer's browse view. Either
// filter, if non-empty, must match exactly; sold-out items are never listed.
func (s *Catalog) ListFood(category, restaurantName string) ([]models.FoodItem, error) {
	query := s.db.Select("food_items.*").Where("quantity > 0")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if restaurantName != "" {
		query = query.Joins("JOIN restaurants ON restaurants.id = food_items.restaurant_id").
			Where("restaurants.name = ?", restaurantName)
	}
	var items []models.FoodItem
	if err := query.Order("food_items.created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddFood stores a new offer and returns it with its generated identifier.
func (s *Catalog) AddFood(f models.FoodItem) (models.FoodItem, error) {
	if f.Name == "" || f.RestaurantID == "" {
		return models.FoodItem{}, fmt.Errorf("%w: food name and restaurant are required", ErrInvalid)
	}
	if f.Price < 0 || f.Quantity < 0 {
		return models.FoodItem{}, fmt.Errorf("%w: price and quantity must be non-negative", ErrInvalid)
	}
	f.ID = uuid.NewString()
	if err := s.db.Create(&f).Error; err != nil {
		return models.FoodItem{}, err
	}
	return f, nil
}

// RemoveFood deletes an offer.
func (s *Catalog) RemoveFood(id string) error {
	res := s.db.Delete(&models.FoodItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetQuantity replaces an offer's available quantity as a single atomic
// step. Callers never get read-modify-write access to the field.
func (s *Catalog) SetQuantity(id string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity must be non-negative", ErrInvalid)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.db.Model(&models.FoodItem{}).Where("id = ?", id).Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reserve checks and decrements stock for every line item as one atomic
// batch. If any line cannot be satisfied it aborts with no mutation and
// reports the first failing food identifier via InsufficientStockError.
// Batches serialize behind the catalog mutex; the enclosing transaction
// rolls back partial decrements on failure.
//
// A batch is a mapping from food to quantity: lines naming the same food
// are summed before validation, so repeated lines cannot sneak past the
// availability check one at a time.
func (s *Catalog) Reserve(lines []models.OrderLine) error {
	merged, err := mergeLines(lines)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, line := range merged {
			var food models.FoodItem
			if err := tx.First(&food, "id = ?", line.FoodID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("food %s: %w", line.FoodID, ErrNotFound)
				}
				return err
			}
			if food.Quantity < line.Quantity {
				return &InsufficientStockError{FoodID: line.FoodID}
			}
		}
		for _, line := range merged {
			res := tx.Model(&models.FoodItem{}).
				Where("id = ?", line.FoodID).
				Update("quantity", gorm.Expr("quantity - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
		}
		return nil
	})
}

// mergeLines sums quantities per food, preserving first-occurrence order so
// the first failing identifier stays deterministic.
func mergeLines(lines []models.OrderLine) ([]models.OrderLine, error) {
	merged := make([]models.OrderLine, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: reservation quantity must be positive", ErrInvalid)
		}
		if i, ok := index[line.FoodID]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		index[line.FoodID] = len(merged)
		merged = append(merged, models.OrderLine{FoodID: line.FoodID, Quantity: line.Quantity})
	}
	return merged, nil
}

// Release returns previously reserved quantities to the catalog, used when a
// reserved order is cancelled. Items deleted since the reservation are
// skipped; their stock has no home to return to.
func (s *Catalog) Release(lines []models.OrderLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, line := range lines {
			res := tx.Model(&models.FoodItem{}).
				Where("id = ?", line.FoodID).
				Update("quantity", gorm.Expr("quantity + ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
		}
		return nil
	})
}
