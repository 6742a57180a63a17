package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/cashbook_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

func registerHealthRoutes(r gin.IRouter, healthService portssvc.HealthSvc) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/db/health", func(c *gin.Context) {
		if err := healthService.CheckStore(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"db": "ok"})
	})
}
