package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Liveness handles the liveness probe endpoint.
func Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
