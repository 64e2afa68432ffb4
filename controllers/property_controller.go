package controllers

import (
	"net/http"

	"stayhub-backend/middleware"
	"stayhub-backend/models"
	"stayhub-backend/services"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type PropertyRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	PricePerNight float64  `json:"price_per_night"`
	MaxGuests     int      `json:"max_guests" binding:"required"`
	Available     *bool    `json:"available"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

func (req PropertyRequest) toInput() services.PropertyInput {
	return services.PropertyInput{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Available:     req.Available,
		Amenities:     req.Amenities,
		Images:        req.Images,
	}
}

type PropertyController struct {
	PropertySvc *services.PropertyService
}

func NewPropertyController(propertySvc *services.PropertyService) *PropertyController {
	return &PropertyController{PropertySvc: propertySvc}
}

// ListAvailable handles GET /api/properties (public browse).
func (pc *PropertyController) ListAvailable(c *gin.Context) {
	properties, err := pc.PropertySvc.ListAvailableProperties(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, properties)
}

// GetProperty handles GET /api/properties/:id.
func (pc *PropertyController) GetProperty(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	property, err := pc.PropertySvc.GetProperty(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, property)
}

// CreateProperty handles POST /api/properties (host only).
func (pc *PropertyController) CreateProperty(c *gin.Context) {
	if middleware.ActorRole(c) != string(models.RoleOwner) {
		utils.JSONError(c, http.StatusForbidden, "host account required")
		return
	}
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	property, err := pc.PropertySvc.CreateProperty(c.Request.Context(), middleware.ActorID(c), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, property)
}

// UpdateProperty handles PUT /api/properties/:id (owning host only).
func (pc *PropertyController) UpdateProperty(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	property, err := pc.PropertySvc.UpdateProperty(c.Request.Context(), middleware.ActorID(c), id, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, property)
}

// ListMine handles GET /api/owner/properties.
func (pc *PropertyController) ListMine(c *gin.Context) {
	properties, err := pc.PropertySvc.ListOwnerProperties(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, properties)
}
