package handler

import (
	"log"
	"net/http"
	"strconv"

	"eshop_backend/internal/middleware"
	"eshop_backend/internal/model"
	"eshop_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user CRUD requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Save persists a new user. Answers 200 with the payload on success and 406
// when the service reports an absent result (e.g. duplicate login).
func (h *UserHandler) Save(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	saved, err := h.service.Save(c.Request.Context(), &user)
	if err != nil {
		log.Printf("Error saving user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}
	if saved == nil {
		c.Status(http.StatusNotAcceptable)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update has the same contract as Save but goes through service.Update.
func (h *UserHandler) Update(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), &user)
	if err != nil {
		log.Printf("Error updating user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	if updated == nil {
		c.Status(http.StatusNotAcceptable)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetByID answers 200 regardless of presence; an absent user serializes as
// null, preserving the legacy contract.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error getting user by ID: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetByLogin(c *gin.Context) {
	login := c.Query("login")
	user, err := h.service.FindByLogin(c.Request.Context(), login)
	if err != nil {
		log.Printf("Error getting user by login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetByLoginAndPassword(c *gin.Context) {
	login := c.Query("login")
	password := c.Query("password")
	user, err := h.service.FindByLoginAndPassword(c.Request.Context(), login, password)
	if err != nil {
		log.Printf("Error getting user by login and password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete looks the user up first and deletes only when found. It answers 200
// either way.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error finding user for deletion: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if user != nil {
		if err := h.service.Delete(c.Request.Context(), user); err != nil {
			log.Printf("Error deleting user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
	}
	c.Status(http.StatusOK)
}

// RegisterUserRoutes registers the user routes behind the auth middleware.
// The required role per route is kept in one table rather than scattered
// per-handler checks.
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	routes := []struct {
		method  string
		path    string
		role    string
		handler gin.HandlerFunc
	}{
		{http.MethodPut, "", model.RoleAdmin, h.Save},
		{http.MethodPost, "", model.RoleAdmin, h.Update},
		{http.MethodGet, "/:id", model.RoleUser, h.GetByID},
		{http.MethodGet, "", model.RoleAdmin, h.GetAll},
		{http.MethodGet, "/by-login", model.RoleAdmin, h.GetByLogin},
		{http.MethodGet, "/by-login-and-password", model.RoleAdmin, h.GetByLoginAndPassword},
		{http.MethodDelete, "/:id", model.RoleAdmin, h.Delete},
	}

	userRoutes := rg.Group("/user")
	userRoutes.Use(authMW)
	for _, r := range routes {
		userRoutes.Handle(r.method, r.path, middleware.RequireRole(r.role), r.handler)
	}
}
