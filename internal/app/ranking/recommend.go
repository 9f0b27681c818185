// Package ranking implements the in-memory scoring and filtering core.
// Every function works on a snapshot slice, treats it as read-only and
// keeps no reference to it after returning, so callers may pass data
// straight out of the repository layer.
package ranking

import (
	"fmt"
	"math"
	"sort"

	"github.com/deniz/uniscope/internal/app/models"
	"github.com/deniz/uniscope/internal/pkg/apperrors"
)

const (
	// MinWeight and MaxWeight bound the importance sliders.
	MinWeight = 1
	MaxWeight = 5

	// DefaultRecommendLimit caps the result when the caller passes limit <= 0.
	DefaultRecommendLimit = 100
)

// ErrInvalidInput marks preference or paging arguments outside their
// documented ranges. Alias kept so the package is usable standalone.
var ErrInvalidInput = apperrors.ErrInvalidInput

// Preferences represents a student's weighting of what matters in a
// university, plus optional hard constraints applied before scoring.
type Preferences struct {
	AcademicImportance    int
	DiversityImportance   int
	StudentLifeImportance int
	PreferredCountries    []string
	MaxRanking            *int
}

// ScoredUniversity pairs a university with its computed match score.
type ScoredUniversity struct {
	University models.University
	Score      float64
}

// Recommend filters records by the hard constraints in prefs, scores the
// survivors and returns the best limit entries, highest score first.
//
// Scoring policy: each importance weight is divided by MaxWeight, multiplied
// with its metric (academic rigor, cultural diversity, student life) and the
// three products are averaged, so results stay on the same 0-10 scale as the
// stored metrics. A nil metric reads as 0 but does not drop the record.
// Scores are rounded half away from zero to two decimals.
//
// Ties are broken by QS rank ascending with unranked records last, then by
// ID ascending, so identical inputs always produce identical output.
func Recommend(records []models.University, prefs Preferences, limit int) ([]ScoredUniversity, error) {
	if err := validatePreferences(prefs); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	preferred := make(map[string]struct{}, len(prefs.PreferredCountries))
	for _, country := range prefs.PreferredCountries {
		preferred[country] = struct{}{}
	}

	scored := make([]ScoredUniversity, 0, len(records))
	for _, record := range records {
		if len(preferred) > 0 {
			if record.Country == nil {
				continue
			}
			if _, ok := preferred[*record.Country]; !ok {
				continue
			}
		}
		if prefs.MaxRanking != nil {
			if record.QSRank == nil || *record.QSRank > *prefs.MaxRanking {
				continue
			}
		}
		scored = append(scored, ScoredUniversity{
			University: record,
			Score:      matchScore(record, prefs),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if c := compareRanks(scored[i].University.QSRank, scored[j].University.QSRank); c != 0 {
			return c < 0
		}
		return scored[i].University.ID < scored[j].University.ID
	})

	if len(scored) > limit {
		scored = scored[:limit:limit]
	}
	return scored, nil
}

// validatePreferences checks preference values before any filtering
func validatePreferences(prefs Preferences) error {
	if prefs.AcademicImportance < MinWeight || prefs.AcademicImportance > MaxWeight {
		return fmt.Errorf("%w: academic importance must be between %d and %d", ErrInvalidInput, MinWeight, MaxWeight)
	}
	if prefs.DiversityImportance < MinWeight || prefs.DiversityImportance > MaxWeight {
		return fmt.Errorf("%w: diversity importance must be between %d and %d", ErrInvalidInput, MinWeight, MaxWeight)
	}
	if prefs.StudentLifeImportance < MinWeight || prefs.StudentLifeImportance > MaxWeight {
		return fmt.Errorf("%w: student life importance must be between %d and %d", ErrInvalidInput, MinWeight, MaxWeight)
	}
	if prefs.MaxRanking != nil && *prefs.MaxRanking < 1 {
		return fmt.Errorf("%w: max ranking must be positive", ErrInvalidInput)
	}
	return nil
}

// matchScore computes the weighted average described on Recommend
func matchScore(record models.University, prefs Preferences) float64 {
	academic := float64(prefs.AcademicImportance) / MaxWeight * metricValue(record.AcademicRigor)
	diversity := float64(prefs.DiversityImportance) / MaxWeight * metricValue(record.CulturalDiversity)
	studentLife := float64(prefs.StudentLifeImportance) / MaxWeight * metricValue(record.StudentLife)
	return round2((academic + diversity + studentLife) / 3)
}

// metricValue reads a survey metric, treating missing data as 0
func metricValue(metric *float64) float64 {
	if metric == nil {
		return 0
	}
	return *metric
}

// round2 rounds half away from zero to two decimals
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// compareRanks orders ranked records before unranked ones, better rank first
func compareRanks(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}
