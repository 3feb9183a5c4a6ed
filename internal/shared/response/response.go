package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is the JSON error envelope. Success bodies are the plain resource
// shapes (`{id}`, `{items}`, `{message}`) the frontend expects.
type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success responses

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func Items(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func Created(c *gin.Context, id string) {
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Error responses

func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, gin.H{
		"error": Error{
			Code:    code,
			Message: message,
		},
	})
}

// ValidationFailed reports a rejected payload with per-field detail. The
// details value is the field -> reason map produced by the validators.
func ValidationFailed(c *gin.Context, details interface{}) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": Error{
			Code:    "VALIDATION_ERROR",
			Message: "payload failed validation",
			Details: details,
		},
	})
}

func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

// StoreUnavailable signals that the document store is unreachable. Data
// endpoints must use this instead of returning an empty success result.
func StoreUnavailable(c *gin.Context) {
	ErrorResponse(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "document store unavailable")
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}
