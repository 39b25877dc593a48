// Package controller holds the HTTP helpers shared by the admin and user
// route handlers.
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/apperr"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusUnprocessableEntity
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindPrecondition:
		return http.StatusBadRequest
	case apperr.KindNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// RespondError maps a service error onto its HTTP status and a stable body.
// Uncategorized errors are logged and reported as a bare 500.
func RespondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(statusForKind(appErr.Kind), dto.ErrorResponse{Error: appErr.Message, Fields: appErr.Fields})
		return
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled service error")
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
}

// BindJSON binds and validates the request body, answering 422 with the list
// of offending fields on failure. Returns false when the request was already
// answered.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, strings.ToLower(fe.Field()))
			}
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "request validation failed", Fields: fields})
			return false
		}
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// ParseUUIDParam parses a UUID path parameter, answering 422 on a malformed
// value. Returns uuid.Nil and false when the request was already answered.
func ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "invalid " + name + " format", Fields: []string{name}})
		return uuid.Nil, false
	}
	return id, true
}
