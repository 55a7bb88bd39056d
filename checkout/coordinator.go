// Package checkout orchestrates the one operation touching two stores
// transactionally: turning a buyer's cart into a reserved, recorded order.
package checkout

import (
	"errors"
	"fmt"

	"github.com/J3FF-omg/SaveFood/models"
	"github.com/J3FF-omg/SaveFood/store"
)

var (
	// ErrEmptyCart rejects a checkout with no line items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMixedRestaurants rejects a cart whose items span more than one
	// restaurant; an order references exactly one.
	ErrMixedRestaurants = errors.New("cart spans multiple restaurants")

	// ErrAddressRequired rejects a courier-delivery checkout without a
	// delivery address.
	ErrAddressRequired = errors.New("delivery address is required")
)

// CartLine is one desired (food, quantity) pair in a buyer's cart. The cart
// itself is session state owned by the caller; quantities here are re-validated
// against current stock at checkout regardless of what the caller saw earlier.
type CartLine struct {
	FoodID   string
	Quantity int
}

// Options carries the buyer's fulfilment choices for one checkout.
type Options struct {
	DeliveryType    models.DeliveryType
	DeliveryAddress string
	PaymentMethod   string
	Notes           string
}

// Coordinator validates a cart against the catalog, reserves stock and
// records the order. It is stateless across calls; both stores are injected.
type Coordinator struct {
	catalog *store.Catalog
	ledger  *store.Ledger
}

func New(catalog *store.Catalog, ledger *store.Ledger) *Coordinator {
	return &Coordinator{catalog: catalog, ledger: ledger}
}

// PlaceOrder runs one checkout attempt to completion or aborts it with no
// visible mutation:
//
//  1. validate the cart (non-empty, positive quantities, one restaurant,
//     address present for courier delivery)
//  2. price every line at the catalog's current price and freeze the total
//  3. reserve the whole batch atomically; any shortfall aborts everything
//  4. append the order as pending
//
// A reservation that succeeds is never left dangling: the only step after it
// is the ledger append, and the ledger rejects nothing a validated cart can
// produce.
func (c *Coordinator) PlaceOrder(buyerID string, cart []CartLine, opts Options) (models.Order, error) {
	if len(cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if opts.DeliveryType != models.DeliveryCourier && opts.DeliveryType != models.DeliveryPickup {
		return models.Order{}, fmt.Errorf("%w: unknown delivery type %q", store.ErrInvalid, opts.DeliveryType)
	}
	if opts.DeliveryType == models.DeliveryCourier && opts.DeliveryAddress == "" {
		return models.Order{}, ErrAddressRequired
	}

	var (
		lines        []models.OrderLine
		lineIndex    = make(map[string]int, len(cart))
		total        float64
		restaurantID string
	)
	for _, item := range cart {
		if item.Quantity <= 0 {
			return models.Order{}, fmt.Errorf("%w: quantity for food %s must be positive", store.ErrInvalid, item.FoodID)
		}
		// Repeated cart entries for one food collapse into a single line;
		// an order's line items map food to quantity.
		if i, ok := lineIndex[item.FoodID]; ok {
			lines[i].Quantity += item.Quantity
			total += lines[i].Price * float64(item.Quantity)
			continue
		}
		food, err := c.catalog.Food(item.FoodID)
		if err != nil {
			return models.Order{}, fmt.Errorf("food %s: %w", item.FoodID, err)
		}
		if restaurantID == "" {
			restaurantID = food.RestaurantID
		} else if food.RestaurantID != restaurantID {
			return models.Order{}, ErrMixedRestaurants
		}
		// Current catalog price, not whatever the cart was shown earlier.
		total += food.Price * float64(item.Quantity)
		lineIndex[item.FoodID] = len(lines)
		lines = append(lines, models.OrderLine{
			FoodID:   food.ID,
			Quantity: item.Quantity,
			Price:    food.Price,
		})
	}

	if err := c.catalog.Reserve(lines); err != nil {
		return models.Order{}, err
	}

	order, err := c.ledger.Append(models.Order{
		BuyerID:         buyerID,
		RestaurantID:    restaurantID,
		Lines:           lines,
		TotalPrice:      total,
		DeliveryAddress: opts.DeliveryAddress,
		DeliveryType:    opts.DeliveryType,
		PaymentMethod:   opts.PaymentMethod,
		Notes:           opts.Notes,
	})
	if err != nil {
		// Put the stock back rather than strand the reservation.
		if relErr := c.catalog.Release(lines); relErr != nil {
			return models.Order{}, errors.Join(err, relErr)
		}
		return models.Order{}, err
	}
	return order, nil
}

// UpdateStatus moves an order along the state machine and, when the move
// lands on cancelled, returns the reserved quantities to the catalog. The
// original product never restocked cancellations; that was a defect, fixed
// here in the one place that holds both stores.
func (c *Coordinator) UpdateStatus(orderID string, to models.OrderStatus, actor string) error {
	prev, err := c.ledger.SetStatus(orderID, to, actor)
	if err != nil {
		return err
	}
	if to == models.StatusCancelled {
		return c.catalog.Release(prev.Lines)
	}
	return nil
}
