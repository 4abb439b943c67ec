package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// SendErrorResponse sends a standardized error response
func SendErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ParseLimit reads an integer query parameter with a default and an upper bound
func ParseLimit(c *gin.Context, name string, defaultLimit, maxLimit int) int {
	limit, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
