// Package handlers is the HTTP presentation layer. It translates requests
// into engine calls and the engine's error taxonomy into status codes; all
// invariants live below it.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/J3FF-omg/SaveFood/checkout"
	"github.com/J3FF-omg/SaveFood/store"
)

// Handler bundles the injected stores and coordinator behind the HTTP
// surface. There is no package-level state.
type Handler struct {
	Identity  *store.Identity
	Catalog   *store.Catalog
	Ledger    *store.Ledger
	Checkout  *checkout.Coordinator
	JWTSecret []byte
}

// fail maps an engine error onto an HTTP response.
func fail(c *gin.Context, err error) {
	var insufficient *store.InsufficientStockError
	switch {
	case errors.As(err, &insufficient):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Insufficient stock",
			"food_id": insufficient.FoodID,
		})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
	case errors.Is(err, store.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInvalid),
		errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrMixedRestaurants),
		errors.Is(err, checkout.ErrAddressRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
