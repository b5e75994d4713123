package handler

import (
	"log"
	"net/http"
	"strconv"

	"eshop_backend/internal/model"
	"eshop_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CartHandler handles cart CRUD requests
type CartHandler struct {
	service service.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(s service.CartService) *CartHandler {
	return &CartHandler{service: s}
}

func (h *CartHandler) Save(c *gin.Context) {
	var cart model.Cart
	if err := c.ShouldBindJSON(&cart); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	saved, err := h.service.Save(c.Request.Context(), &cart)
	if err != nil {
		log.Printf("Error saving cart: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	if saved == nil {
		c.Status(http.StatusNotAcceptable)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) Update(c *gin.Context) {
	var cart model.Cart
	if err := c.ShouldBindJSON(&cart); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), &cart)
	if err != nil {
		log.Printf("Error updating cart: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	if updated == nil {
		c.Status(http.StatusNotAcceptable)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// GetByID answers 200 regardless of presence; an absent cart serializes as
// null, preserving the legacy contract.
func (h *CartHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID"})
		return
	}

	cart, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error getting cart by ID: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) GetAll(c *gin.Context) {
	carts, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		log.Printf("Error getting all carts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve carts"})
		return
	}
	c.JSON(http.StatusOK, carts)
}

// Delete looks the cart up first and deletes only when found. It answers 200
// either way.
func (h *CartHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID"})
		return
	}

	cart, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error finding cart for deletion: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart"})
		return
	}
	if cart != nil {
		if err := h.service.Delete(c.Request.Context(), cart); err != nil {
			log.Printf("Error deleting cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart"})
			return
		}
	}
	c.Status(http.StatusOK)
}

func (h *CartHandler) GetAllByUserAndPeriod(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}
	timeDown, err := strconv.ParseInt(c.Query("timeDown"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timeDown"})
		return
	}
	timeUp, err := strconv.ParseInt(c.Query("timeUp"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timeUp"})
		return
	}

	carts, err := h.service.GetAllByUserAndPeriod(c.Request.Context(), userID, timeDown, timeUp)
	if err != nil {
		log.Printf("Error getting carts by user and period: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve carts"})
		return
	}
	c.JSON(http.StatusOK, carts)
}

// GetByUserAndOpenStatus returns the user's open cart. The query parameter is
// named id in the legacy API although it identifies the user.
func (h *CartHandler) GetByUserAndOpenStatus(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	cart, err := h.service.GetByUserAndOpenStatus(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error getting open cart by user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// UpdateStatus verifies the cart exists before flipping its closed flag.
// A missing cart answers 406 without invoking the status update.
func (h *CartHandler) UpdateStatus(c *gin.Context) {
	cartID, err := strconv.Atoi(c.Query("idParam"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid idParam"})
		return
	}
	closed, err := strconv.Atoi(c.Query("closedParam"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid closedParam"})
		return
	}

	cart, err := h.service.FindByID(c.Request.Context(), cartID)
	if err != nil {
		log.Printf("Error finding cart for status update: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart status"})
		return
	}
	if cart == nil {
		c.Status(http.StatusNotAcceptable)
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), cartID, closed); err != nil {
		log.Printf("Error updating cart status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart status"})
		return
	}
	c.Status(http.StatusOK)
}

// RegisterCartRoutes registers the cart routes. The legacy API declares no
// role requirement on cart endpoints, so no auth middleware is attached.
func (h *CartHandler) RegisterCartRoutes(rg *gin.RouterGroup) {
	cartRoutes := rg.Group("/cart")
	{
		cartRoutes.PUT("", h.Save)
		cartRoutes.POST("", h.Update)
		cartRoutes.GET("/:id", h.GetByID)
		cartRoutes.GET("", h.GetAll)
		cartRoutes.DELETE("/:id", h.Delete)
		cartRoutes.GET("/get_all_by_user_and_period", h.GetAllByUserAndPeriod)
		cartRoutes.GET("/open_status", h.GetByUserAndOpenStatus)
		cartRoutes.POST("/update_status", h.UpdateStatus)
	}
}
