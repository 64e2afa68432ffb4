package controllers

import (
	"errors"
	"log"
	"net/http"

	"stayhub-backend/models"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP status codes. Deterministic
// outcomes go straight back to the caller; anything unclassified is logged
// and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var transitionErr *models.TransitionError

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &transitionErr):
		utils.JSONError(c, http.StatusBadRequest, transitionErr.Error())
	case errors.Is(err, models.ErrBookingNotFound),
		errors.Is(err, models.ErrPropertyNotFound),
		errors.Is(err, models.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrDatesUnavailable):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrNotAllowed):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
