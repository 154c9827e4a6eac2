package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trendora-shop/storefront-backend/internal/adapters/repository"
	"github.com/trendora-shop/storefront-backend/internal/models"
	"github.com/trendora-shop/storefront-backend/utils"
)

type UserHandler struct {
	Repo repository.UserRepository
}

func NewUserHandler(db *mongo.Database) *UserHandler {
	return &UserHandler{Repo: repository.NewUserRepository(db)}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	users, err := h.Repo.ListUsers(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to fetch users"))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Users fetched successfully", gin.H{"users": users}))
}

func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid user ID"))
		return
	}

	var input models.UpdateRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid role provided"))
		return
	}

	// An admin cannot change their own role; someone else has to.
	callerID, _ := c.Get("userId")
	if callerID.(string) == userID.Hex() {
		c.JSON(http.StatusForbidden, utils.ErrorResponse("You cannot change your own role"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	matched, err := h.Repo.UpdateUserRole(ctx, userID, input.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update role"))
		return
	}
	if !matched {
		c.JSON(http.StatusNotFound, utils.ErrorResponse("User not found"))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Role updated successfully", nil))
}
