package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
)

// genericFailureMessage is what end users see for any remote failure.
// Driver and network detail never leaves the server.
const genericFailureMessage = "Something went wrong. Please try again."

// ErrorResponse sends a standardized error response
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// ServerError logs the underlying failure and sends the generic message
func ServerError(c *gin.Context, action string, err error) {
	log.Printf("%s: %v", action, err)
	ErrorResponse(c, 500, genericFailureMessage)
}
