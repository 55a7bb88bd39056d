package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/J3FF-omg/SaveFood/handlers"
	"github.com/J3FF-omg/SaveFood/middleware"
	"github.com/J3FF-omg/SaveFood/models"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		// Restaurants & offers (no auth needed)
		public.GET("/restaurants", h.ListRestaurants)
		public.GET("/restaurants/:id", h.GetRestaurant)
		public.GET("/restaurants/:id/food", h.GetRestaurantFood)
		public.GET("/food", h.ListFood)

		// State machine info
		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(h.JWTSecret))
	{
		auth.GET("/profile", h.GetProfile)
	}

	// ── Buyer routes ───────────────────────────────────────────────
	buyer := r.Group("/api/buyer")
	buyer.Use(middleware.AuthRequired(h.JWTSecret), middleware.RoleRequired(models.RoleBuyer))
	{
		buyer.POST("/orders", h.PlaceOrder)
		buyer.GET("/orders", h.GetMyOrders)
		buyer.GET("/orders/:id", h.GetOrderDetail)
	}

	// ── Seller routes ──────────────────────────────────────────────
	seller := r.Group("/api/seller")
	seller.Use(middleware.AuthRequired(h.JWTSecret), middleware.RoleRequired(models.RoleSeller))
	{
		seller.GET("/restaurant", h.GetMyRestaurant)

		// Offer management
		seller.POST("/food", h.AddFood)
		seller.DELETE("/food/:id", h.DeleteFood)
		seller.PUT("/food/:id/quantity", h.SetFoodQuantity)

		// Order management
		seller.GET("/orders", h.GetSellerOrders)
		seller.PUT("/orders/:id/status", h.UpdateOrderStatus)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(h.JWTSecret), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/restaurants", h.AdminCreateRestaurant)
		admin.DELETE("/restaurants/:id", h.AdminDeleteRestaurant)
		admin.GET("/users", h.AdminGetAllUsers)
		admin.GET("/orders", h.AdminGetAllOrders)
		admin.GET("/stats", h.AdminGetStats)
		admin.PUT("/orders/:id/status", h.AdminUpdateOrderStatus)
	}
}
