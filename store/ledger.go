package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/J3FF-omg/SaveFood/models"
	"github.com/J3FF-omg/SaveFood/statemachine"
)

// Ledger is the append-only order store. Orders enter as pending and only
// move along the status state machine afterwards.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Append assigns a fresh identifier and creation timestamp and stores the
// order as pending. The caller's status field is ignored.
func (s *Ledger) Append(order models.Order) (models.Order, error) {
	if len(order.Lines) == 0 {
		return models.Order{}, fmt.Errorf("%w: order has no line items", ErrInvalid)
	}
	order.ID = uuid.NewString()
	order.Status = models.StatusPending
	order.CreatedAt = time.Now()
	for i := range order.Lines {
		order.Lines[i].ID = 0
		order.Lines[i].OrderID = order.ID
	}
	if err := s.db.Create(&order).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// Get returns one order with its line items.
func (s *Ledger) Get(id string) (models.Order, error) {
	var order models.Order
	err := s.db.Preload("Lines").First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// ByBuyer returns a buyer's orders, newest first.
func (s *Ledger) ByBuyer(buyerID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Lines").
		Where("buyer_id = ?", buyerID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ByRestaurant returns a restaurant's orders, newest first.
func (s *Ledger) ByRestaurant(restaurantID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Lines").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// All returns every order, newest first.
func (s *Ledger) All() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Lines").Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// SetStatus moves an order along the state machine on behalf of an actor.
// Illegal moves fail with ErrInvalidTransition and leave the order
// untouched. The returned order reflects the state before the change so
// callers can see what was transitioned away from.
func (s *Ledger) SetStatus(id string, to models.OrderStatus, actor string) (models.Order, error) {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Lines").First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := statemachine.CanTransition(order.Status, to, actor); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}
		return tx.Model(&models.Order{}).Where("id = ?", id).Update("status", to).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}
