package handlers

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/trendora-shop/storefront-backend/internal/adapters/repository"
	"github.com/trendora-shop/storefront-backend/internal/models"
	"github.com/trendora-shop/storefront-backend/utils"
)

type AuthHandler struct {
	Repo repository.UserRepository
}

func NewAuthHandler(db *mongo.Database) *AuthHandler {
	return &AuthHandler{Repo: repository.NewUserRepository(db)}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json body"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := h.Repo.GetUserByEmail(ctx, email); err == nil {
		c.JSON(http.StatusConflict, utils.ErrorResponse("Email is already registered"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create user"))
		return
	}

	user := models.User{
		Name:      input.Name,
		Email:     email,
		Password:  string(hashed),
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	user, err = h.Repo.CreateUser(ctx, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create user"))
		return
	}

	token, err := utils.CreateToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to issue token"))
		return
	}

	c.JSON(http.StatusCreated, utils.SuccessResponse("User registered successfully", gin.H{
		"token": token,
		"user":  user,
	}))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json body"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	// The back-office admin account is configured via environment, not
	// stored in the users collection.
	adminEmail := strings.ToLower(os.Getenv("ADMIN_EMAIL"))
	if adminEmail != "" && email == adminEmail && input.Password == os.Getenv("ADMIN_PASSWORD") {
		token, err := utils.CreateToken("admin", email, models.RoleAdmin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to issue token"))
			return
		}
		c.JSON(http.StatusOK, utils.SuccessResponse("Logged in successfully", gin.H{"token": token}))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := h.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse("Invalid email or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse("Invalid email or password"))
		return
	}

	token, err := utils.CreateToken(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to issue token"))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Logged in successfully", gin.H{
		"token": token,
		"user":  user,
	}))
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userIdStr, _ := c.Get("userId")

	userID, err := primitive.ObjectIDFromHex(userIdStr.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid or missing token"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := h.Repo.GetUserById(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, utils.ErrorResponse("User not found"))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Profile fetched successfully", gin.H{"user": user}))
}
