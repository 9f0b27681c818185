package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/deniz/uniscope/internal/app/models"
	"github.com/deniz/uniscope/internal/app/models/dto"
	"github.com/deniz/uniscope/internal/app/ranking"
	"github.com/deniz/uniscope/internal/app/repositories"
	"github.com/deniz/uniscope/internal/pkg/apperrors"
	"github.com/deniz/uniscope/internal/pkg/helpers"
)

// Defaults applied when the search request leaves paging unset.
const (
	defaultSearchPage     = 1
	defaultSearchPageSize = 10
)

// UniversityService defines the interface for university operations
type UniversityService interface {
	ListUniversities(ctx context.Context, req *dto.ListUniversitiesRequest) (*dto.UniversityListResponse, error)
	GetUniversityByID(ctx context.Context, id int64) (*dto.UniversityResponse, error)
	CreateUniversity(ctx context.Context, req *dto.CreateUniversityRequest) (*dto.UniversityResponse, error)
	UpdateUniversity(ctx context.Context, id int64, req *dto.UpdateUniversityRequest) (*dto.UniversityResponse, error)
	DeleteUniversity(ctx context.Context, id int64) error
	SearchUniversities(ctx context.Context, req *dto.SearchUniversitiesRequest) (*dto.UniversityListResponse, error)
}

// universityServiceImpl implements UniversityService
type universityServiceImpl struct {
	universityRepo *repositories.UniversityRepository
}

// NewUniversityService creates a new UniversityService
func NewUniversityService(universityRepo *repositories.UniversityRepository) UniversityService {
	return &universityServiceImpl{
		universityRepo: universityRepo,
	}
}

// validateUniversity validates university data before database operations
func validateUniversity(university *models.University) error {
	if university == nil {
		return fmt.Errorf("%w: university is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(university.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if university.QSRank != nil && *university.QSRank < 1 {
		return fmt.Errorf("%w: qsRank must be positive", apperrors.ErrValidationFailed)
	}

	for field, metric := range map[string]*float64{
		"overallQuality":    university.OverallQuality,
		"academicRigor":     university.AcademicRigor,
		"openness":          university.Openness,
		"culturalDiversity": university.CulturalDiversity,
		"studentLife":       university.StudentLife,
		"campusSafety":      university.CampusSafety,
	} {
		if metric != nil && (*metric < 0 || *metric > 10) {
			return fmt.Errorf("%w: %s must be between 0 and 10", apperrors.ErrValidationFailed, field)
		}
	}

	for field, flag := range map[string]*string{
		"accommodation": university.Accommodation,
		"accessibility": university.Accessibility,
	} {
		if flag != nil && !models.ValidAvailability(*flag) {
			return fmt.Errorf("%w: %s must be one of Yes, No, Partial", apperrors.ErrValidationFailed, field)
		}
	}

	if university.LanguageClasses != nil && !models.ValidYesNo(*university.LanguageClasses) {
		return fmt.Errorf("%w: languageClasses must be Yes or No", apperrors.ErrValidationFailed)
	}

	if university.ResponseCount < 0 {
		return fmt.Errorf("%w: responseCount cannot be negative", apperrors.ErrValidationFailed)
	}

	return nil
}

// ListUniversities retrieves universities with filtering, sorting and pagination
func (s *universityServiceImpl) ListUniversities(ctx context.Context, req *dto.ListUniversitiesRequest) (*dto.UniversityListResponse, error) {
	universities, total, err := s.universityRepo.List(ctx, repositories.ListOptions{
		Search:    req.Search,
		Country:   req.Country,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Page:      req.Page,
		PageSize:  req.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("error listing universities: %w", err)
	}

	return &dto.UniversityListResponse{
		Universities: lo.Map(universities, func(u models.University, _ int) dto.UniversityResponse {
			return dto.FromUniversity(&u)
		}),
		Pagination: helpers.NewPaginationInfo(total, req.Page, req.PageSize),
	}, nil
}

// GetUniversityByID retrieves a university by ID
func (s *universityServiceImpl) GetUniversityByID(ctx context.Context, id int64) (*dto.UniversityResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}

	university, err := s.universityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUniversityNotFound) {
			return nil, apperrors.NewCustomError(err, fmt.Sprintf("University with ID %d not found", id))
		}
		return nil, fmt.Errorf("error retrieving university: %w", err)
	}

	response := dto.FromUniversity(university)
	return &response, nil
}

// CreateUniversity creates a new university
func (s *universityServiceImpl) CreateUniversity(ctx context.Context, req *dto.CreateUniversityRequest) (*dto.UniversityResponse, error) {
	university := universityFromCreateRequest(req)
	if err := validateUniversity(university); err != nil {
		return nil, err
	}

	id, err := s.universityRepo.Create(ctx, university)
	if err != nil {
		if errors.Is(err, repositories.ErrUniversityAlreadyExists) {
			return nil, apperrors.NewCustomError(err, "University with this name and country already exists")
		}
		return nil, fmt.Errorf("error creating university: %w", err)
	}

	// Read the row back so the response carries the generated timestamps
	created, err := s.universityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving created university: %w", err)
	}

	response := dto.FromUniversity(created)
	return &response, nil
}

// UpdateUniversity replaces an existing university record
func (s *universityServiceImpl) UpdateUniversity(ctx context.Context, id int64, req *dto.UpdateUniversityRequest) (*dto.UniversityResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}

	university := universityFromUpdateRequest(req)
	university.ID = id
	if err := validateUniversity(university); err != nil {
		return nil, err
	}

	err := s.universityRepo.Update(ctx, university)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrUniversityNotFound):
			return nil, apperrors.NewCustomError(err, fmt.Sprintf("University with ID %d not found", id))
		case errors.Is(err, repositories.ErrUniversityAlreadyExists):
			return nil, apperrors.NewCustomError(err, "University with this name and country already exists")
		default:
			return nil, fmt.Errorf("error updating university: %w", err)
		}
	}

	updated, err := s.universityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving updated university: %w", err)
	}

	response := dto.FromUniversity(updated)
	return &response, nil
}

// DeleteUniversity deletes a university by ID
func (s *universityServiceImpl) DeleteUniversity(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}

	err := s.universityRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUniversityNotFound) {
			return apperrors.NewCustomError(err, fmt.Sprintf("University with ID %d not found", id))
		}
		return fmt.Errorf("error deleting university: %w", err)
	}
	return nil
}

// SearchUniversities filters a fresh snapshot of the collection. The whole
// dataset is small enough that loading it per request stays cheap, and it
// keeps the matching rules in one place for API and library callers alike.
func (s *universityServiceImpl) SearchUniversities(ctx context.Context, req *dto.SearchUniversitiesRequest) (*dto.UniversityListResponse, error) {
	records, err := s.universityRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading universities: %w", err)
	}

	page := req.Page
	if page == 0 {
		page = defaultSearchPage
	}
	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = defaultSearchPageSize
	}

	query := ""
	if req.Query != nil {
		query = *req.Query
	}

	result, err := ranking.Search(records, query, ranking.Filters{
		Country:              req.Country,
		MinRank:              req.MinRank,
		MaxRank:              req.MaxRank,
		MinAcademicRigor:     req.MinAcademicRigor,
		MinCulturalDiversity: req.MinCulturalDiversity,
		MinStudentLife:       req.MinStudentLife,
		MinCampusSafety:      req.MinCampusSafety,
	}, page, pageSize)
	if err != nil {
		return nil, err
	}

	return &dto.UniversityListResponse{
		Universities: lo.Map(result.Universities, func(u models.University, _ int) dto.UniversityResponse {
			return dto.FromUniversity(&u)
		}),
		Pagination: helpers.NewPaginationInfo(int64(result.TotalCount), page, pageSize),
	}, nil
}

// universityFromCreateRequest maps a create request onto the storage model
func universityFromCreateRequest(req *dto.CreateUniversityRequest) *models.University {
	university := &models.University{
		Name:              strings.TrimSpace(req.Name),
		City:              req.City,
		Country:           req.Country,
		QSRank:            req.QSRank,
		OverallQuality:    req.OverallQuality,
		AcademicRigor:     req.AcademicRigor,
		Openness:          req.Openness,
		CulturalDiversity: req.CulturalDiversity,
		StudentLife:       req.StudentLife,
		CampusSafety:      req.CampusSafety,
		Accommodation:     req.Accommodation,
		Language:          req.Language,
		LanguageClasses:   req.LanguageClasses,
		Accessibility:     req.Accessibility,
	}
	if req.ResponseCount != nil {
		university.ResponseCount = *req.ResponseCount
	}
	return university
}

// universityFromUpdateRequest maps an update request onto the storage model.
// Updates are full replacements, so omitted optional fields clear the column.
func universityFromUpdateRequest(req *dto.UpdateUniversityRequest) *models.University {
	university := &models.University{
		Name:              strings.TrimSpace(req.Name),
		City:              req.City,
		Country:           req.Country,
		QSRank:            req.QSRank,
		OverallQuality:    req.OverallQuality,
		AcademicRigor:     req.AcademicRigor,
		Openness:          req.Openness,
		CulturalDiversity: req.CulturalDiversity,
		StudentLife:       req.StudentLife,
		CampusSafety:      req.CampusSafety,
		Accommodation:     req.Accommodation,
		Language:          req.Language,
		LanguageClasses:   req.LanguageClasses,
		Accessibility:     req.Accessibility,
	}
	if req.ResponseCount != nil {
		university.ResponseCount = *req.ResponseCount
	}
	return university
}
