package controller

import (
	"time"

	"daily_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Health godoc
// @Summary Service health check
// @Tags health
// @Produce  json
// @Success 200 {object} util.Response{data=object}
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	status := "ok"
	dbStatus := "ok"

	sqlDB, err := c.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		status = "degraded"
		dbStatus = "unreachable"
	}

	payload := gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().Format(time.RFC3339),
	}

	if status != "ok" {
		util.Error(ctx, 503, "service degraded")
		return
	}
	util.Success(ctx, payload)
}
