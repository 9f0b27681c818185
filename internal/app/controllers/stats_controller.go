package controllers

import (
	"net/http"

	"github.com/deniz/uniscope/internal/app/models/dto"
	"github.com/deniz/uniscope/internal/app/services"
	"github.com/deniz/uniscope/internal/middleware"
	"github.com/gin-gonic/gin"
)

// StatsController handles dataset statistics endpoints
type StatsController struct {
	statsService services.StatsService
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

// GetCountryStats retrieves per-country aggregates
// @Summary Get country statistics
// @Description Retrieves per-country university counts, metric averages and the best-ranked university of each country
// @Tags stats
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CountryStatsResponse} "Country statistics retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /countries [get]
func (c *StatsController) GetCountryStats(ctx *gin.Context) {
	stats, err := c.statsService.GetCountryStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// GetLanguageStats retrieves the instruction language breakdown
// @Summary Get language statistics
// @Description Retrieves how many universities teach in each language; multi-language records count once per language
// @Tags stats
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.LanguageStatsResponse} "Language statistics retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /languages [get]
func (c *StatsController) GetLanguageStats(ctx *gin.Context) {
	stats, err := c.statsService.GetLanguageStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// GetPlatformStats retrieves collection-wide totals
// @Summary Get platform statistics
// @Description Retrieves dataset totals: universities, ranked universities, countries and survey coverage
// @Tags stats
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.PlatformStats} "Platform statistics retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats [get]
func (c *StatsController) GetPlatformStats(ctx *gin.Context) {
	stats, err := c.statsService.GetPlatformStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// GetRankingRanges retrieves the QS rank spread of the dataset
// @Summary Get ranking ranges
// @Description Retrieves the observed QS rank spread and how many universities fall into the top-50/100/200/500 brackets
// @Tags stats
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.RankingRanges} "Ranking ranges retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats/ranking-ranges [get]
func (c *StatsController) GetRankingRanges(ctx *gin.Context) {
	ranges, err := c.statsService.GetRankingRanges(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(ranges))
}

// GetScoreRanges retrieves the quality metric spreads
// @Summary Get score ranges
// @Description Retrieves min/max/avg for every quality metric across the dataset
// @Tags stats
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.ScoreRanges} "Score ranges retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats/score-ranges [get]
func (c *StatsController) GetScoreRanges(ctx *gin.Context) {
	ranges, err := c.statsService.GetScoreRanges(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(ranges))
}

// GetFacilityStats retrieves the facility availability breakdown
// @Summary Get facility statistics
// @Description Retrieves the Yes/No/Partial/unknown breakdown for accommodation, language classes and accessibility support
// @Tags stats
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.FacilityStats} "Facility statistics retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats/facilities [get]
func (c *StatsController) GetFacilityStats(ctx *gin.Context) {
	stats, err := c.statsService.GetFacilityStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}
