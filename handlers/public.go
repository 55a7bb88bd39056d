package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/J3FF-omg/SaveFood/statemachine"
)

// ListRestaurants returns all restaurants (public)
func (h *Handler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.Catalog.Restaurants()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant
func (h *Handler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.Catalog.Restaurant(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetRestaurantFood returns every offer of one restaurant (public)
func (h *Handler) GetRestaurantFood(c *gin.Context) {
	restaurant, err := h.Catalog.Restaurant(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	items, err := h.Catalog.FoodByRestaurant(restaurant.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(items),
		"food":       items,
	})
}

// ListFood is the buyer browse view: in-stock offers, optionally filtered by
// exact category and restaurant name
func (h *Handler) ListFood(c *gin.Context) {
	items, err := h.Catalog.ListFood(c.Query("category"), c.Query("restaurant"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "food": items})
}

// GetStateMachineInfo returns the full order lifecycle for informational purposes
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{"delivered", "cancelled"},
		"description":     "Order lifecycle state machine",
	})
}
