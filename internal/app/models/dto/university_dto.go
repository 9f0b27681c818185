package dto

import (
	"time"

	"github.com/deniz/uniscope/internal/app/models"
)

// CreateUniversityRequest represents the request to create a university
type CreateUniversityRequest struct {
	Name              string   `json:"name" binding:"required"`
	City              *string  `json:"city" binding:"omitempty,min=1"`
	Country           *string  `json:"country" binding:"omitempty,min=1"`
	QSRank            *int     `json:"qsRank" binding:"omitempty,min=1"`
	OverallQuality    *float64 `json:"overallQuality" binding:"omitempty,min=0,max=10"`
	AcademicRigor     *float64 `json:"academicRigor" binding:"omitempty,min=0,max=10"`
	Openness          *float64 `json:"openness" binding:"omitempty,min=0,max=10"`
	CulturalDiversity *float64 `json:"culturalDiversity" binding:"omitempty,min=0,max=10"`
	StudentLife       *float64 `json:"studentLife" binding:"omitempty,min=0,max=10"`
	CampusSafety      *float64 `json:"campusSafety" binding:"omitempty,min=0,max=10"`
	Accommodation     *string  `json:"accommodation" binding:"omitempty,oneof=Yes No Partial"`
	Language          *string  `json:"language" binding:"omitempty,min=1"`
	LanguageClasses   *string  `json:"languageClasses" binding:"omitempty,oneof=Yes No"`
	Accessibility     *string  `json:"accessibility" binding:"omitempty,oneof=Yes No Partial"`
	ResponseCount     *int     `json:"responseCount" binding:"omitempty,min=0"`
}

// UpdateUniversityRequest represents the request to update a university.
// The update is a full replacement, omitted optional fields are cleared.
type UpdateUniversityRequest struct {
	Name              string   `json:"name" binding:"required"`
	City              *string  `json:"city" binding:"omitempty,min=1"`
	Country           *string  `json:"country" binding:"omitempty,min=1"`
	QSRank            *int     `json:"qsRank" binding:"omitempty,min=1"`
	OverallQuality    *float64 `json:"overallQuality" binding:"omitempty,min=0,max=10"`
	AcademicRigor     *float64 `json:"academicRigor" binding:"omitempty,min=0,max=10"`
	Openness          *float64 `json:"openness" binding:"omitempty,min=0,max=10"`
	CulturalDiversity *float64 `json:"culturalDiversity" binding:"omitempty,min=0,max=10"`
	StudentLife       *float64 `json:"studentLife" binding:"omitempty,min=0,max=10"`
	CampusSafety      *float64 `json:"campusSafety" binding:"omitempty,min=0,max=10"`
	Accommodation     *string  `json:"accommodation" binding:"omitempty,oneof=Yes No Partial"`
	Language          *string  `json:"language" binding:"omitempty,min=1"`
	LanguageClasses   *string  `json:"languageClasses" binding:"omitempty,oneof=Yes No"`
	Accessibility     *string  `json:"accessibility" binding:"omitempty,oneof=Yes No Partial"`
	ResponseCount     *int     `json:"responseCount" binding:"omitempty,min=0"`
}

// ListUniversitiesRequest captures the query parameters of the list endpoint
type ListUniversitiesRequest struct {
	Search    string `form:"search,omitempty"`
	Country   string `form:"country,omitempty"`
	SortBy    string `form:"sortBy,omitempty"`
	SortOrder string `form:"sortOrder,omitempty" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page,default=1" binding:"min=1"`
	PageSize  int    `form:"size,default=10" binding:"min=1,max=100"`
}

// UniversityResponse represents the response for a university
type UniversityResponse struct {
	ID                int64     `json:"id" example:"42"`
	Name              string    `json:"name" example:"University of Helsinki"`
	City              *string   `json:"city,omitempty" example:"Helsinki"`
	Country           *string   `json:"country,omitempty" example:"Finland"`
	QSRank            *int      `json:"qsRank,omitempty" example:"115"`
	OverallQuality    *float64  `json:"overallQuality,omitempty"`
	AcademicRigor     *float64  `json:"academicRigor,omitempty"`
	Openness          *float64  `json:"openness,omitempty"`
	CulturalDiversity *float64  `json:"culturalDiversity,omitempty"`
	StudentLife       *float64  `json:"studentLife,omitempty"`
	CampusSafety      *float64  `json:"campusSafety,omitempty"`
	Accommodation     *string   `json:"accommodation,omitempty"`
	Language          *string   `json:"language,omitempty"`
	LanguageClasses   *string   `json:"languageClasses,omitempty"`
	Accessibility     *string   `json:"accessibility,omitempty"`
	ResponseCount     int       `json:"responseCount"`
	LastUpdated       time.Time `json:"lastUpdated"`
	CreatedAt         time.Time `json:"createdAt"`
}

// UniversityListResponse represents the response for a list of universities with pagination
type UniversityListResponse struct {
	Universities []UniversityResponse `json:"universities"`
	Pagination   PaginationInfo       `json:"pagination"`
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}

// FromUniversity converts a models.University to a UniversityResponse
func FromUniversity(university *models.University) UniversityResponse {
	if university == nil {
		return UniversityResponse{}
	}

	return UniversityResponse{
		ID:                university.ID,
		Name:              university.Name,
		City:              university.City,
		Country:           university.Country,
		QSRank:            university.QSRank,
		OverallQuality:    university.OverallQuality,
		AcademicRigor:     university.AcademicRigor,
		Openness:          university.Openness,
		CulturalDiversity: university.CulturalDiversity,
		StudentLife:       university.StudentLife,
		CampusSafety:      university.CampusSafety,
		Accommodation:     university.Accommodation,
		Language:          university.Language,
		LanguageClasses:   university.LanguageClasses,
		Accessibility:     university.Accessibility,
		ResponseCount:     university.ResponseCount,
		LastUpdated:       university.LastUpdated,
		CreatedAt:         university.CreatedAt,
	}
}
