package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/J3FF-omg/SaveFood/middleware"
	"github.com/J3FF-omg/SaveFood/models"
	"github.com/J3FF-omg/SaveFood/statemachine"
)

// ── Restaurant view ─────────────────────────────────────────────────────────

// GetMyRestaurant fetches the restaurant owned by the logged-in seller
func (h *Handler) GetMyRestaurant(c *gin.Context) {
	restaurant, err := h.Catalog.RestaurantBySeller(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}
	items, err := h.Catalog.FoodByRestaurant(restaurant.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant, "food": items})
}

// ── Offer management ────────────────────────────────────────────────────────

type CreateFoodRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	OriginalPrice float64 `json:"original_price"`
	Quantity      int     `json:"quantity" binding:"min=0"`
	Category      string  `json:"category"`
	Discount      int     `json:"discount"`
	PickupOnly    bool    `json:"pickup_only"`
	ImageURL      string  `json:"image_url"`
	CookingTime   int     `json:"cooking_time_minutes"`
}

// AddFood adds a new offer to the seller's restaurant
func (h *Handler) AddFood(c *gin.Context) {
	restaurant, err := h.Catalog.RestaurantBySeller(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}

	var req CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.Catalog.AddFood(models.FoodItem{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Quantity:      req.Quantity,
		RestaurantID:  restaurant.ID,
		Category:      req.Category,
		Discount:      req.Discount,
		PickupOnly:    req.PickupOnly,
		ImageURL:      req.ImageURL,
		CookingTime:   req.CookingTime,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Food item added", "item": item})
}

// ownFood resolves a food item and verifies the caller's restaurant owns it.
func (h *Handler) ownFood(c *gin.Context, foodID string) (models.FoodItem, bool) {
	restaurant, err := h.Catalog.RestaurantBySeller(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return models.FoodItem{}, false
	}
	item, err := h.Catalog.Food(foodID)
	if err != nil {
		fail(c, err)
		return models.FoodItem{}, false
	}
	if item.RestaurantID != restaurant.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't own this food item"})
		return models.FoodItem{}, false
	}
	return item, true
}

// DeleteFood removes an offer (only by the owner)
func (h *Handler) DeleteFood(c *gin.Context) {
	item, ok := h.ownFood(c, c.Param("id"))
	if !ok {
		return
	}
	if err := h.Catalog.RemoveFood(item.ID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item deleted"})
}

type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// SetFoodQuantity replaces an offer's available quantity (only by the owner)
func (h *Handler) SetFoodQuantity(c *gin.Context) {
	item, ok := h.ownFood(c, c.Param("id"))
	if !ok {
		return
	}
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Catalog.SetQuantity(item.ID, *req.Quantity); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quantity updated", "food_id": item.ID, "quantity": *req.Quantity})
}

// ── Order management ────────────────────────────────────────────────────────

// GetSellerOrders returns all orders for the seller's restaurant
func (h *Handler) GetSellerOrders(c *gin.Context) {
	restaurant, err := h.Catalog.RestaurantBySeller(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}
	orders, err := h.Ledger.ByRestaurant(restaurant.ID)
	if err != nil {
		fail(c, err)
		return
	}

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant":    restaurant.Name,
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus handles the seller's state transitions for their own
// restaurant's orders
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	restaurant, err := h.Catalog.RestaurantBySeller(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}

	order, err := h.Ledger.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if order.RestaurantID != restaurant.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to your restaurant"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Checkout.UpdateStatus(order.ID, req.Status, statemachine.ActorSeller); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": order.Status,
		"current_status":  req.Status,
	})
}
