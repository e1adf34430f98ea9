package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripgenie/pkg/jsonrepair"
	"tripgenie/pkg/llm"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		TraceID: c.GetString("trace_id"),
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Success: false,
		Error:   message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service errors to HTTP responses. Parse failures
// include the stage and excerpt details only outside release mode.
func HandleServiceError(c *gin.Context, err error) {
	var parseErr *jsonrepair.ParseError

	switch {
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrTripNotFound), errors.Is(err, ErrPlaceNotFound),
		errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrMapsUnavailable):
		RespondError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, llm.ErrBackendUnavailable):
		log.Printf("AI backend unavailable: %v", err)
		RespondError(c, http.StatusInternalServerError, "AI service is not configured")
	case errors.Is(err, llm.ErrBackendError):
		log.Printf("AI backend error: %v", err)
		RespondError(c, http.StatusInternalServerError, "AI service request failed")
	case errors.Is(err, jsonrepair.ErrEmptyResponse), errors.Is(err, jsonrepair.ErrNoJSONFound):
		log.Printf("AI response unusable: %v", err)
		RespondError(c, http.StatusInternalServerError, err.Error())
	case errors.As(err, &parseErr):
		log.Printf("AI response parse failure: %v", parseErr)
		if gin.Mode() != gin.ReleaseMode {
			RespondError(c, http.StatusInternalServerError, parseErr.Error())
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to parse AI response")
	case errors.Is(err, ErrInvalidShape):
		log.Printf("AI response shape error: %v", err)
		RespondError(c, http.StatusInternalServerError, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
