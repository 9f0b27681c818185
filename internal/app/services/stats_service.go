package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/deniz/uniscope/internal/app/models"
	"github.com/deniz/uniscope/internal/app/models/dto"
	"github.com/deniz/uniscope/internal/app/repositories"
	"github.com/deniz/uniscope/internal/pkg/normalize"
)

// StatsService defines the interface for dataset statistics operations
type StatsService interface {
	GetCountryStats(ctx context.Context) (*dto.CountryStatsResponse, error)
	GetLanguageStats(ctx context.Context) (*dto.LanguageStatsResponse, error)
	GetPlatformStats(ctx context.Context) (*models.PlatformStats, error)
	GetRankingRanges(ctx context.Context) (*models.RankingRanges, error)
	GetScoreRanges(ctx context.Context) (*models.ScoreRanges, error)
	GetFacilityStats(ctx context.Context) (*models.FacilityStats, error)
}

// statsServiceImpl implements StatsService
type statsServiceImpl struct {
	universityRepo *repositories.UniversityRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(universityRepo *repositories.UniversityRepository) StatsService {
	return &statsServiceImpl{
		universityRepo: universityRepo,
	}
}

// GetCountryStats returns per-country aggregates, largest country first
func (s *statsServiceImpl) GetCountryStats(ctx context.Context) (*dto.CountryStatsResponse, error) {
	countries, err := s.universityRepo.CountryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting country stats: %w", err)
	}

	return &dto.CountryStatsResponse{
		Countries: countries,
		Count:     len(countries),
	}, nil
}

// GetLanguageStats tallies instruction languages across the dataset. A
// university teaching in several languages counts once per language.
func (s *statsServiceImpl) GetLanguageStats(ctx context.Context) (*dto.LanguageStatsResponse, error) {
	raw, err := s.universityRepo.Languages(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting languages: %w", err)
	}

	tally := lo.CountValues(lo.FlatMap(raw, func(value string, _ int) []string {
		return normalize.SplitLanguages(value)
	}))

	languages := lo.MapToSlice(tally, func(language string, count int) dto.LanguageStat {
		return dto.LanguageStat{Language: language, Count: count}
	})
	sort.Slice(languages, func(i, j int) bool {
		if languages[i].Count != languages[j].Count {
			return languages[i].Count > languages[j].Count
		}
		return languages[i].Language < languages[j].Language
	})

	return &dto.LanguageStatsResponse{
		Languages: languages,
		Count:     len(languages),
	}, nil
}

// GetPlatformStats returns collection-wide totals
func (s *statsServiceImpl) GetPlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	stats, err := s.universityRepo.PlatformStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting platform stats: %w", err)
	}
	return stats, nil
}

// GetRankingRanges returns the QS rank spread and bracket distribution
func (s *statsServiceImpl) GetRankingRanges(ctx context.Context) (*models.RankingRanges, error) {
	ranges, err := s.universityRepo.RankingRanges(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting ranking ranges: %w", err)
	}
	return ranges, nil
}

// GetScoreRanges returns min/max/avg per quality metric
func (s *statsServiceImpl) GetScoreRanges(ctx context.Context) (*models.ScoreRanges, error) {
	ranges, err := s.universityRepo.ScoreRanges(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting score ranges: %w", err)
	}
	return ranges, nil
}

// GetFacilityStats returns the availability breakdown per facility flag
func (s *statsServiceImpl) GetFacilityStats(ctx context.Context) (*models.FacilityStats, error) {
	stats, err := s.universityRepo.FacilityStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting facility stats: %w", err)
	}
	return stats, nil
}
