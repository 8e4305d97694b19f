package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer sentinels onto the error taxonomy:
// validation 400, conflicts 409, not-found / no-therapist 404, the rest 500.
func HandleServiceError(c *gin.Context, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		RespondError(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrTherapyNotAllowed):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrPreferenceExists),
		errors.Is(err, ErrAlreadySubscribed),
		errors.Is(err, ErrPlanAlreadyExists),
		errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrSubscriptionNotFound),
		errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrPreferenceNotFound),
		errors.Is(err, ErrNotificationNotFound),
		errors.Is(err, ErrPaymentNotFound),
		errors.Is(err, ErrNoTherapistAvailable):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrSubscriptionInactive):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrPaymentAlreadyHandled):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
