package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trendora-shop/storefront-backend/internal/dashboard"
	"github.com/trendora-shop/storefront-backend/internal/models"
	"github.com/trendora-shop/storefront-backend/utils"
)

type DashboardHandler struct {
	Store *dashboard.Store
}

func NewDashboardHandler(store *dashboard.Store) *DashboardHandler {
	return &DashboardHandler{Store: store}
}

func (h *DashboardHandler) ListCards(c *gin.Context) {
	c.JSON(http.StatusOK, utils.SuccessResponse("Cards fetched successfully", gin.H{"cards": h.Store.List()}))
}

func (h *DashboardHandler) AddCard(c *gin.Context) {
	var card models.Card
	if err := c.ShouldBindJSON(&card); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json body"))
		return
	}

	card, err := h.Store.Add(card)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to save card"))
		return
	}

	c.JSON(http.StatusCreated, utils.SuccessResponse("Card added successfully", gin.H{"card": card}))
}

func (h *DashboardHandler) UpdateCard(c *gin.Context) {
	var card models.Card
	if err := c.ShouldBindJSON(&card); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid json body"))
		return
	}

	card, err := h.Store.Update(c.Param("id"), card)
	if err != nil {
		if errors.Is(err, dashboard.ErrCardNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Card not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to save card"))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Card updated successfully", gin.H{"card": card}))
}

func (h *DashboardHandler) RemoveCard(c *gin.Context) {
	if err := h.Store.Remove(c.Param("id")); err != nil {
		if errors.Is(err, dashboard.ErrCardNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Card not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to remove card"))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse("Card removed successfully", nil))
}
