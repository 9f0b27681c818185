package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/deniz/uniscope/internal/app/models/dto"
	"github.com/deniz/uniscope/internal/app/repositories"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthController reports service and database health
type HealthController struct {
	db             *pgxpool.Pool
	universityRepo *repositories.UniversityRepository
}

// NewHealthController creates a new HealthController
func NewHealthController(db *pgxpool.Pool, universityRepo *repositories.UniversityRepository) *HealthController {
	return &HealthController{
		db:             db,
		universityRepo: universityRepo,
	}
}

// Health checks database connectivity and reports the dataset size
// @Summary Health check
// @Description Pings the database and reports how many universities are stored
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse} "Service is healthy"
// @Failure 503 {object} dto.ErrorResponse "Database unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database unreachable")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
		return
	}

	count, err := c.universityRepo.Count(pingCtx)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database unreachable")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HealthResponse{
		Status:       "ok",
		Database:     "up",
		Universities: count,
	}))
}
