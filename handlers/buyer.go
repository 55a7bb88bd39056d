package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/J3FF-omg/SaveFood/checkout"
	"github.com/J3FF-omg/SaveFood/middleware"
	"github.com/J3FF-omg/SaveFood/models"
)

type CheckoutRequest struct {
	DeliveryType    models.DeliveryType `json:"delivery_type" binding:"required"`
	DeliveryAddress string              `json:"delivery_address"`
	PaymentMethod   string              `json:"payment_method"`
	Notes           string              `json:"notes"`
	Items           []struct {
		FoodID   string `json:"food_id" binding:"required"`
		Quantity int    `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

// PlaceOrder turns the buyer's cart into an order (buyer only). The cart is
// client-side session state; stock is re-validated and reserved here
// regardless of what the client saw while browsing.
func (h *Handler) PlaceOrder(c *gin.Context) {
	buyerID := middleware.GetUserID(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart := make([]checkout.CartLine, 0, len(req.Items))
	for _, item := range req.Items {
		cart = append(cart, checkout.CartLine{FoodID: item.FoodID, Quantity: item.Quantity})
	}

	order, err := h.Checkout.PlaceOrder(buyerID, cart, checkout.Options{
		DeliveryType:    req.DeliveryType,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
		"total":   order.TotalPrice,
	})
}

// GetMyOrders returns all orders for the logged-in buyer
func (h *Handler) GetMyOrders(c *gin.Context) {
	orders, err := h.Ledger.ByBuyer(middleware.GetUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order (buyer's own only)
func (h *Handler) GetOrderDetail(c *gin.Context) {
	order, err := h.Ledger.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if order.BuyerID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
