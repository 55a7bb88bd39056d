package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/J3FF-omg/SaveFood/models"
	"github.com/J3FF-omg/SaveFood/statemachine"
)

type CreateRestaurantRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Address     string  `json:"address" binding:"required"`
	SellerID    string  `json:"seller_id" binding:"required"`
	Phone       string  `json:"phone"`
	Rating      float64 `json:"rating"`
	ImageURL    string  `json:"image_url"`
}

// AdminCreateRestaurant registers a new restaurant under a seller (admin only)
func (h *Handler) AdminCreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seller, err := h.Identity.Get(req.SellerID)
	if err != nil {
		fail(c, err)
		return
	}
	if seller.Role != models.RoleSeller {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant owner must have the seller role"})
		return
	}

	restaurant, err := h.Catalog.AddRestaurant(models.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		SellerID:    req.SellerID,
		Phone:       req.Phone,
		Rating:      req.Rating,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "restaurant": restaurant})
}

// AdminDeleteRestaurant removes a restaurant and its offers (admin only)
func (h *Handler) AdminDeleteRestaurant(c *gin.Context) {
	if err := h.Catalog.RemoveRestaurant(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted"})
}

// AdminGetAllUsers returns all users (admin only)
func (h *Handler) AdminGetAllUsers(c *gin.Context) {
	users, err := h.Identity.List()
	if err != nil {
		fail(c, err)
		return
	}
	if role := c.Query("role"); role != "" {
		filtered := users[:0]
		for _, u := range users {
			if string(u.Role) == role {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AdminGetAllOrders returns all orders with a per-status summary (admin only)
func (h *Handler) AdminGetAllOrders(c *gin.Context) {
	orders, err := h.Ledger.All()
	if err != nil {
		fail(c, err)
		return
	}

	summary := map[string]int{}
	var totalRevenue float64
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status == models.StatusDelivered {
			totalRevenue += o.TotalPrice
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orders),
		"orders":        orders,
	})
}

// AdminGetStats returns the dashboard counters (admin only)
func (h *Handler) AdminGetStats(c *gin.Context) {
	users, err := h.Identity.List()
	if err != nil {
		fail(c, err)
		return
	}
	restaurants, err := h.Catalog.Restaurants()
	if err != nil {
		fail(c, err)
		return
	}
	orders, err := h.Ledger.All()
	if err != nil {
		fail(c, err)
		return
	}

	var foodCount, portionsSaved int
	for _, r := range restaurants {
		items, err := h.Catalog.FoodByRestaurant(r.ID)
		if err != nil {
			fail(c, err)
			return
		}
		foodCount += len(items)
	}
	for _, o := range orders {
		if o.Status == models.StatusDelivered {
			for _, line := range o.Lines {
				portionsSaved += line.Quantity
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"users":          len(users),
		"restaurants":    len(restaurants),
		"food_items":     foodCount,
		"orders":         len(orders),
		"portions_saved": portionsSaved,
	})
}

// AdminUpdateOrderStatus drives any order's lifecycle as the admin actor.
// The state machine still applies; terminal states stay terminal even for
// admins.
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Checkout.UpdateStatus(c.Param("id"), req.Status, statemachine.ActorAdmin); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Order status updated",
		"order_id": c.Param("id"),
		"status":   req.Status,
	})
}
