package dto

// SearchUniversitiesRequest represents the request to search universities.
// The free-text query matches name, city and country case-insensitively,
// every other field is an AND-combined filter.
type SearchUniversitiesRequest struct {
	Query                *string  `json:"query,omitempty" example:"amsterdam"`
	Country              *string  `json:"country,omitempty" example:"Netherlands"`
	MinRank              *int     `json:"minRank,omitempty" binding:"omitempty,min=1"`
	MaxRank              *int     `json:"maxRank,omitempty" binding:"omitempty,min=1"`
	MinAcademicRigor     *float64 `json:"minAcademicRigor,omitempty" binding:"omitempty,min=0,max=10"`
	MinCulturalDiversity *float64 `json:"minCulturalDiversity,omitempty" binding:"omitempty,min=0,max=10"`
	MinStudentLife       *float64 `json:"minStudentLife,omitempty" binding:"omitempty,min=0,max=10"`
	MinCampusSafety      *float64 `json:"minCampusSafety,omitempty" binding:"omitempty,min=0,max=10"`
	Page                 int      `json:"page,omitempty" binding:"omitempty,min=1" example:"1"`
	PageSize             int      `json:"pageSize,omitempty" binding:"omitempty,min=1,max=100" example:"10"`
}
