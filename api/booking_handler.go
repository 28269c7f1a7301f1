package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	bk "github.com/lagunacove/resort-booking-backend/booking"
	"github.com/lagunacove/resort-booking-backend/metrics"
)

type BookingService interface {
	IsAvailable(ctx context.Context, accommodationID, checkIn, checkOut string) (bool, error)
	Reserve(ctx context.Context, accommodationID, checkIn, checkOut string, guest bk.GuestDetails) (bk.Booking, error)
	SetStatus(ctx context.Context, id string, status string) (bk.Booking, error)
	FindBookingByID(ctx context.Context, id string) (bk.Booking, error)
	FindActiveBookings(ctx context.Context, accommodationID string) ([]bk.Booking, error)
	FindBookingsPerGuestEmail(ctx context.Context, email string) ([]bk.Booking, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.ListActive)
	rg.GET("/availability", h.CheckAvailability)
	rg.GET("/booking/:id", h.GetByID)
	rg.GET("/guest/:email", h.GetByGuestEmail)
	rg.POST("", h.Create)
	rg.PUT("/:id/confirm", h.Confirm)
	rg.PUT("/:id/cancel", h.Cancel)
	rg.PUT("/:id/reject", h.Reject)
	rg.PUT("/:id/status", h.SetStatus)
}

func (h *BookingHandler) ListActive(c *gin.Context) {
	accommodationID := c.Query("accommodationId")

	if len(accommodationID) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing accommodationId"})
		return
	}

	bookings, err := h.service.FindActiveBookings(c.Request.Context(), accommodationID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve bookings",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	accommodationID := c.Query("accommodationId")

	if len(accommodationID) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing accommodationId"})
		return
	}

	metrics.AvailabilityChecksTotal.Inc()

	available, err := h.service.IsAvailable(c.Request.Context(), accommodationID, c.Query("checkIn"), c.Query("checkOut"))

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrInvalidDateFormat) || errors.Is(err, bk.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	booking, err := h.service.FindBookingByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch booking",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) GetByGuestEmail(c *gin.Context) {
	email := c.Param("email")
	bookings, err := h.service.FindBookingsPerGuestEmail(c.Request.Context(), email)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to get bookings",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

type createBookingRequest struct {
	AccommodationID string          `json:"accommodationId" binding:"required"`
	CheckIn         string          `json:"checkIn" binding:"required"`
	CheckOut        string          `json:"checkOut" binding:"required"`
	Guest           bk.GuestDetails `json:"guest"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	inserted, err := h.service.Reserve(c.Request.Context(), req.AccommodationID, req.CheckIn, req.CheckOut, req.Guest)

	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, bk.ErrDateConflict):
			metrics.ReservationsTotal.WithLabelValues(metrics.OutcomeConflict).Inc()
			c.JSON(http.StatusConflict, gin.H{"error": "dates unavailable"})
		case errors.Is(err, bk.ErrInvalidDateFormat), errors.Is(err, bk.ErrInvalidRange):
			metrics.ReservationsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			metrics.ReservationsTotal.WithLabelValues(metrics.OutcomeError).Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}
		return
	}

	metrics.ReservationsTotal.WithLabelValues(metrics.OutcomeCreated).Inc()

	c.JSON(http.StatusCreated, inserted)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, bk.StatusConfirmed)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, bk.StatusCancelled)
}

func (h *BookingHandler) Reject(c *gin.Context) {
	h.transition(c, bk.StatusRejected)
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *BookingHandler) SetStatus(c *gin.Context) {
	var req setStatusRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	h.transition(c, bk.Status(req.Status))
}

func (h *BookingHandler) transition(c *gin.Context, status bk.Status) {
	id := c.Param("id")

	booking, err := h.service.SetStatus(c.Request.Context(), id, string(status))

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "booking not found",
			})
		} else if errors.Is(err, bk.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "invalid booking status",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "failed to update booking status",
			})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}
