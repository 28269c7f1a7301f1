package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	ac "github.com/lagunacove/resort-booking-backend/accommodation"
)

type AccommodationService interface {
	GetAccommodations(ctx context.Context) ([]ac.Accommodation, error)
	FindAccommodationByID(ctx context.Context, id string) (ac.Accommodation, error)
	CreateAccommodation(ctx context.Context, a ac.Accommodation) (ac.Accommodation, error)
	ModifyAccommodation(ctx context.Context, a ac.Accommodation) error
	RetireAccommodation(ctx context.Context, id string) error
}

type AccommodationHandler struct {
	service AccommodationService
}

func NewAccommodationHandler(service AccommodationService) *AccommodationHandler {
	return &AccommodationHandler{service: service}
}

func (h *AccommodationHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Modify)
	rg.DELETE("/:id", h.Retire)
}

func (h *AccommodationHandler) List(c *gin.Context) {
	accommodations, err := h.service.GetAccommodations(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve accommodations",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, accommodations)
}

func (h *AccommodationHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	a, err := h.service.FindAccommodationByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, ac.ErrAccommodationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "accommodation not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch accommodation",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, a)
}

func (h *AccommodationHandler) Create(c *gin.Context) {
	var a ac.Accommodation

	if err := c.BindJSON(&a); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	inserted, err := h.service.CreateAccommodation(c.Request.Context(), a)

	if err != nil {
		c.Error(err)
		if errors.Is(err, ac.ErrInvalidType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid accommodation type"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create accommodation"})
		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *AccommodationHandler) Modify(c *gin.Context) {
	var a ac.Accommodation

	if err := c.BindJSON(&a); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	a.ID = c.Param("id")

	err := h.service.ModifyAccommodation(c.Request.Context(), a)

	if err != nil {
		c.Error(err)
		if errors.Is(err, ac.ErrAccommodationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "accommodation not found"})
		} else if errors.Is(err, ac.ErrInvalidType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid accommodation type"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to modify accommodation"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "accommodation modified"})
}

func (h *AccommodationHandler) Retire(c *gin.Context) {
	id := c.Param("id")

	err := h.service.RetireAccommodation(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, ac.ErrAccommodationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "accommodation not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retire accommodation"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "accommodation retired"})
}
