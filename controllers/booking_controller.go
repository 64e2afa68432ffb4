package controllers

import (
	"net/http"
	"strconv"

	"stayhub-backend/middleware"
	"stayhub-backend/models"
	"stayhub-backend/services"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateBookingRequest struct {
	PropertyID uint    `json:"property_id" binding:"required"`
	CheckIn    string  `json:"check_in" binding:"required"`
	CheckOut   string  `json:"check_out" binding:"required"`
	Guests     int     `json:"number_of_guests" binding:"required"`
	TotalPrice float64 `json:"total_price"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type BookingController struct {
	BookingSvc    *services.BookingService
	TransitionSvc *services.TransitionService
}

func NewBookingController(bookingSvc *services.BookingService, transitionSvc *services.TransitionService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, TransitionSvc: transitionSvc}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// CreateBooking handles POST /api/bookings.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := bc.BookingSvc.CreateBooking(c.Request.Context(), services.CreateBookingInput{
		TravelerID: middleware.ActorID(c),
		PropertyID: req.PropertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     req.Guests,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// ListBookings handles GET /api/bookings?status=.
func (bc *BookingController) ListBookings(c *gin.Context) {
	status := models.BookingStatus(c.Query("status"))
	bookings, err := bc.BookingSvc.ListBookings(
		c.Request.Context(),
		middleware.ActorID(c),
		models.ActorRole(middleware.ActorRole(c)),
		status,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetBooking handles GET /api/bookings/:id.
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	booking, err := bc.BookingSvc.GetBooking(c.Request.Context(), middleware.ActorID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// UpdateStatus handles PUT /api/bookings/:id/status. Traveler and owner
// surfaces share this endpoint; the transition service decides who may do
// what.
func (bc *BookingController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	booking, err := bc.TransitionSvc.Transition(
		c.Request.Context(),
		middleware.ActorID(c),
		models.ActorRole(middleware.ActorRole(c)),
		id,
		models.BookingStatus(req.Status),
		req.Reason,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
