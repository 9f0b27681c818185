package dto

// RecommendationRequest represents the preference profile used to rank universities.
// The three importance weights are integer sliders from 1 (barely matters) to 5 (critical).
type RecommendationRequest struct {
	AcademicImportance    int      `json:"academicImportance" binding:"required,min=1,max=5" example:"5"`
	DiversityImportance   int      `json:"diversityImportance" binding:"required,min=1,max=5" example:"3"`
	StudentLifeImportance int      `json:"studentLifeImportance" binding:"required,min=1,max=5" example:"2"`
	PreferredCountries    []string `json:"preferredCountries,omitempty"`
	MaxRanking            *int     `json:"maxRanking,omitempty" binding:"omitempty,min=1" example:"200"`
	Limit                 int      `json:"limit,omitempty" binding:"omitempty,min=1" example:"10"`
}

// RecommendationResponse represents a single recommended university with its match score
type RecommendationResponse struct {
	University UniversityResponse `json:"university"`
	MatchScore float64            `json:"matchScore" example:"1.87"`
}

// RecommendationListResponse represents the ranked recommendation list
type RecommendationListResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
	Count           int                      `json:"count"`
}
