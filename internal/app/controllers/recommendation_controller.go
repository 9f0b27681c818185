package controllers

import (
	"net/http"

	"github.com/deniz/uniscope/internal/app/models/dto"
	"github.com/deniz/uniscope/internal/app/services"
	"github.com/deniz/uniscope/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RecommendationController handles recommendation requests
type RecommendationController struct {
	recommendationService services.RecommendationService
}

// NewRecommendationController creates a new RecommendationController
func NewRecommendationController(recommendationService services.RecommendationService) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

// Recommend ranks universities against a preference profile
// @Summary Recommend universities
// @Description Scores every university against the given importance weights, applies the optional country and ranking constraints and returns the best matches, highest score first
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.RecommendationRequest true "Preference profile"
// @Success 200 {object} dto.APIResponse{data=dto.RecommendationListResponse} "Recommendations computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid preference profile"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /recommendations [post]
func (c *RecommendationController) Recommend(ctx *gin.Context) {
	var req dto.RecommendationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid preference profile")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	recommendations, err := c.recommendationService.Recommend(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(recommendations))
}
