package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/deniz/uniscope/internal/app/models/dto"
	"github.com/deniz/uniscope/internal/app/services"
	"github.com/deniz/uniscope/internal/middleware"
	"github.com/gin-gonic/gin"
)

// UniversityController handles university-related operations
type UniversityController struct {
	universityService services.UniversityService
}

// NewUniversityController creates a new UniversityController
func NewUniversityController(universityService services.UniversityService) *UniversityController {
	return &UniversityController{
		universityService: universityService,
	}
}

// ListUniversities retrieves universities with filtering, sorting and pagination
// @Summary List universities
// @Description Retrieves a paginated list of universities, optionally filtered by a name search and a country, sorted by any whitelisted column
// @Tags universities
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive name fragment"
// @Param country query string false "Exact country filter"
// @Param sortBy query string false "Sort column" Enums(name, city, country, qs_rank, overall_quality, academic_rigor, cultural_diversity, student_life, campus_safety)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number" minimum(1) default(1)
// @Param size query int false "Page size" minimum(1) maximum(100) default(10)
// @Success 200 {object} dto.APIResponse{data=dto.UniversityListResponse} "Universities retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities [get]
func (c *UniversityController) ListUniversities(ctx *gin.Context) {
	var req dto.ListUniversitiesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	universities, err := c.universityService.ListUniversities(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      universities,
		Timestamp: time.Now(),
	})
}

// CreateUniversity handles university creation
// @Summary Create a new university
// @Description Creates a new university record with the provided information
// @Tags universities
// @Accept json
// @Produce json
// @Param request body dto.CreateUniversityRequest true "University information"
// @Success 201 {object} dto.APIResponse{data=dto.UniversityResponse} "University created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "University already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities [post]
func (c *UniversityController) CreateUniversity(ctx *gin.Context) {
	var req dto.CreateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	university, err := c.universityService.CreateUniversity(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      university,
		Timestamp: time.Now(),
	})
}

// GetUniversityByID retrieves a university by ID
// @Summary Get university by ID
// @Description Retrieves a specific university by its ID
// @Tags universities
// @Accept json
// @Produce json
// @Param id path int true "University ID"
// @Success 200 {object} dto.APIResponse{data=dto.UniversityResponse} "University retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid university ID"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{id} [get]
func (c *UniversityController) GetUniversityByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university ID")
		errorDetail = errorDetail.WithDetails("University ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	university, err := c.universityService.GetUniversityByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      university,
		Timestamp: time.Now(),
	})
}

// UpdateUniversity updates an existing university
// @Summary Update a university
// @Description Replaces an existing university record with the provided information
// @Tags universities
// @Accept json
// @Produce json
// @Param id path int true "University ID"
// @Param request body dto.UpdateUniversityRequest true "Updated university information"
// @Success 200 {object} dto.APIResponse{data=dto.UniversityResponse} "University updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 409 {object} dto.ErrorResponse "University already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{id} [put]
func (c *UniversityController) UpdateUniversity(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university ID")
		errorDetail = errorDetail.WithDetails("University ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	university, err := c.universityService.UpdateUniversity(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      university,
		Timestamp: time.Now(),
	})
}

// DeleteUniversity deletes a university
// @Summary Delete a university
// @Description Deletes an existing university by its ID
// @Tags universities
// @Accept json
// @Produce json
// @Param id path int true "University ID"
// @Success 204 "University deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid university ID"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{id} [delete]
func (c *UniversityController) DeleteUniversity(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university ID")
		errorDetail = errorDetail.WithDetails("University ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	err = c.universityService.DeleteUniversity(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Data:      nil,
		Timestamp: time.Now(),
	})
}

// SearchUniversities searches the collection with structured filters
// @Summary Search universities
// @Description Searches universities by a free-text query and structured filters, ordered by QS rank with unranked records last
// @Tags universities
// @Accept json
// @Produce json
// @Param request body dto.SearchUniversitiesRequest true "Search criteria"
// @Success 200 {object} dto.APIResponse{data=dto.UniversityListResponse} "Matching universities retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid search criteria"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/search [post]
func (c *UniversityController) SearchUniversities(ctx *gin.Context) {
	var req dto.SearchUniversitiesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid search criteria")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.universityService.SearchUniversities(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}
