package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam parses the :id path segment as a positive integer.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
