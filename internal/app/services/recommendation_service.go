package services

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/deniz/uniscope/internal/app/models/dto"
	"github.com/deniz/uniscope/internal/app/ranking"
	"github.com/deniz/uniscope/internal/app/repositories"
)

// RecommendationService defines the interface for recommendation operations
type RecommendationService interface {
	Recommend(ctx context.Context, req *dto.RecommendationRequest) (*dto.RecommendationListResponse, error)
}

// recommendationServiceImpl implements RecommendationService
type recommendationServiceImpl struct {
	universityRepo *repositories.UniversityRepository
}

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService(universityRepo *repositories.UniversityRepository) RecommendationService {
	return &recommendationServiceImpl{
		universityRepo: universityRepo,
	}
}

// Recommend scores a fresh snapshot of the collection against the given
// preference profile and returns the ranked matches. Every request reads
// the current table state, nothing is cached between calls.
func (s *recommendationServiceImpl) Recommend(ctx context.Context, req *dto.RecommendationRequest) (*dto.RecommendationListResponse, error) {
	records, err := s.universityRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading universities: %w", err)
	}

	scored, err := ranking.Recommend(records, ranking.Preferences{
		AcademicImportance:    req.AcademicImportance,
		DiversityImportance:   req.DiversityImportance,
		StudentLifeImportance: req.StudentLifeImportance,
		PreferredCountries:    req.PreferredCountries,
		MaxRanking:            req.MaxRanking,
	}, req.Limit)
	if err != nil {
		return nil, err
	}

	recommendations := lo.Map(scored, func(match ranking.ScoredUniversity, _ int) dto.RecommendationResponse {
		return dto.RecommendationResponse{
			University: dto.FromUniversity(&match.University),
			MatchScore: match.Score,
		}
	})

	return &dto.RecommendationListResponse{
		Recommendations: recommendations,
		Count:           len(recommendations),
	}, nil
}
