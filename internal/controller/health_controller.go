package controller

import (
	"net/http"
	"time"

	"lexilearn_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Check reports liveness plus a database ping.
func (c *HealthController) Check(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"time":   time.Now().Format(time.RFC3339),
		})
		return
	}
	util.Success(ctx, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
