package controllers

import (
	"net/http"

	"stayhub-backend/middleware"
	"stayhub-backend/models"
	"stayhub-backend/services"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// OwnerController serves the host dashboard: bookings across the host's
// properties and the aggregated stats. Status changes themselves go through
// the shared bookings endpoint.
type OwnerController struct {
	BookingSvc *services.BookingService
	StatsSvc   *services.StatsService
}

func NewOwnerController(bookingSvc *services.BookingService, statsSvc *services.StatsService) *OwnerController {
	return &OwnerController{BookingSvc: bookingSvc, StatsSvc: statsSvc}
}

// ListBookings handles GET /api/owner/bookings?status=.
func (oc *OwnerController) ListBookings(c *gin.Context) {
	if middleware.ActorRole(c) != string(models.RoleOwner) {
		utils.JSONError(c, http.StatusForbidden, "host account required")
		return
	}
	bookings, err := oc.BookingSvc.ListBookings(
		c.Request.Context(),
		middleware.ActorID(c),
		models.RoleOwner,
		models.BookingStatus(c.Query("status")),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// Stats handles GET /api/owner/stats.
func (oc *OwnerController) Stats(c *gin.Context) {
	if middleware.ActorRole(c) != string(models.RoleOwner) {
		utils.JSONError(c, http.StatusForbidden, "host account required")
		return
	}
	stats, err := oc.StatsSvc.OwnerStats(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}
