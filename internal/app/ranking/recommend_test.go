package ranking_test

import (
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/deniz/uniscope/internal/app/models"
	"github.com/deniz/uniscope/internal/app/ranking"
	"github.com/deniz/uniscope/internal/pkg/apperrors"
)

// scenarioRecords returns the three-record fixture used across the
// recommendation tests: a ranked French academic powerhouse, a ranked
// German all-rounder and an unranked French record.
func scenarioRecords() []models.University {
	return []models.University{
		{
			ID:                1,
			Name:              "Alpha University",
			Country:           lo.ToPtr("FR"),
			QSRank:            lo.ToPtr(10),
			AcademicRigor:     lo.ToPtr(5.0),
			CulturalDiversity: lo.ToPtr(2.0),
			StudentLife:       lo.ToPtr(3.0),
		},
		{
			ID:                2,
			Name:              "Beta University",
			Country:           lo.ToPtr("DE"),
			QSRank:            lo.ToPtr(50),
			AcademicRigor:     lo.ToPtr(3.0),
			CulturalDiversity: lo.ToPtr(5.0),
			StudentLife:       lo.ToPtr(3.0),
		},
		{
			ID:                3,
			Name:              "Gamma University",
			Country:           lo.ToPtr("FR"),
			AcademicRigor:     lo.ToPtr(4.0),
			CulturalDiversity: lo.ToPtr(4.0),
			StudentLife:       lo.ToPtr(4.0),
		},
	}
}

func academicHeavyPrefs() ranking.Preferences {
	return ranking.Preferences{
		AcademicImportance:    5,
		DiversityImportance:   1,
		StudentLifeImportance: 1,
	}
}

func TestRecommendRanksAcademicHeavyProfile(t *testing.T) {
	rq := require.New(t)

	result, err := ranking.Recommend(scenarioRecords(), academicHeavyPrefs(), 0)
	rq.NoError(err)
	rq.Len(result, 3)

	// (5/5*5 + 1/5*2 + 1/5*3) / 3 = 2.0 puts Alpha clearly first
	rq.Equal(int64(1), result[0].University.ID)
	rq.InDelta(2.0, result[0].Score, 1e-9)

	rq.Equal(int64(3), result[1].University.ID)
	rq.InDelta(1.87, result[1].Score, 1e-9)

	rq.Equal(int64(2), result[2].University.ID)
	rq.InDelta(1.53, result[2].Score, 1e-9)
}

func TestRecommendPreferredCountriesAreCaseSensitive(t *testing.T) {
	rq := require.New(t)

	prefs := academicHeavyPrefs()
	prefs.PreferredCountries = []string{"FR"}

	result, err := ranking.Recommend(scenarioRecords(), prefs, 0)
	rq.NoError(err)
	rq.Len(result, 2)
	for _, entry := range result {
		rq.Equal("FR", *entry.University.Country)
	}

	prefs.PreferredCountries = []string{"fr"}
	result, err = ranking.Recommend(scenarioRecords(), prefs, 0)
	rq.NoError(err)
	rq.Empty(result)
}

func TestRecommendMaxRankingExcludesUnranked(t *testing.T) {
	rq := require.New(t)

	prefs := academicHeavyPrefs()
	prefs.MaxRanking = lo.ToPtr(50)

	// Gamma has no rank and must be dropped even though 50 would admit it
	result, err := ranking.Recommend(scenarioRecords(), prefs, 0)
	rq.NoError(err)
	rq.Len(result, 2)
	rq.Equal(int64(1), result[0].University.ID)
	rq.Equal(int64(2), result[1].University.ID)

	prefs.MaxRanking = lo.ToPtr(20)
	result, err = ranking.Recommend(scenarioRecords(), prefs, 0)
	rq.NoError(err)
	rq.Len(result, 1)
	rq.Equal(int64(1), result[0].University.ID)
}

func TestRecommendLimit(t *testing.T) {
	rq := require.New(t)

	result, err := ranking.Recommend(scenarioRecords(), academicHeavyPrefs(), 2)
	rq.NoError(err)
	rq.Len(result, 2)
	rq.Equal(int64(1), result[0].University.ID)

	// limit <= 0 falls back to the package default
	large := make([]models.University, 0, ranking.DefaultRecommendLimit+50)
	for i := 1; i <= ranking.DefaultRecommendLimit+50; i++ {
		large = append(large, models.University{
			ID:            int64(i),
			Name:          fmt.Sprintf("University %d", i),
			AcademicRigor: lo.ToPtr(5.0),
		})
	}
	result, err = ranking.Recommend(large, academicHeavyPrefs(), 0)
	rq.NoError(err)
	rq.Len(result, ranking.DefaultRecommendLimit)
}

func TestRecommendValidation(t *testing.T) {
	testCases := []struct {
		name  string
		prefs ranking.Preferences
	}{
		{
			name:  "academic importance below range",
			prefs: ranking.Preferences{AcademicImportance: 0, DiversityImportance: 3, StudentLifeImportance: 3},
		},
		{
			name:  "diversity importance above range",
			prefs: ranking.Preferences{AcademicImportance: 3, DiversityImportance: 6, StudentLifeImportance: 3},
		},
		{
			name:  "student life importance negative",
			prefs: ranking.Preferences{AcademicImportance: 3, DiversityImportance: 3, StudentLifeImportance: -1},
		},
		{
			name: "max ranking not positive",
			prefs: ranking.Preferences{
				AcademicImportance:    3,
				DiversityImportance:   3,
				StudentLifeImportance: 3,
				MaxRanking:            lo.ToPtr(0),
			},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			result, err := ranking.Recommend(scenarioRecords(), tc.prefs, 0)
			rq.Nil(result)
			rq.ErrorIs(err, ranking.ErrInvalidInput)
			rq.ErrorIs(err, apperrors.ErrInvalidInput)
		})
	}
}

func TestRecommendMissingMetricScoresZeroWithoutDropping(t *testing.T) {
	rq := require.New(t)

	records := []models.University{
		{ID: 1, Name: "Surveyed", AcademicRigor: lo.ToPtr(5.0)},
		{ID: 2, Name: "Unsurveyed"},
	}
	prefs := ranking.Preferences{
		AcademicImportance:    5,
		DiversityImportance:   5,
		StudentLifeImportance: 5,
	}

	result, err := ranking.Recommend(records, prefs, 0)
	rq.NoError(err)
	rq.Len(result, 2)
	rq.Equal(int64(1), result[0].University.ID)
	rq.InDelta(1.67, result[0].Score, 1e-9)
	rq.Equal(int64(2), result[1].University.ID)
	rq.Zero(result[1].Score)
}

func TestRecommendTieBreakOrder(t *testing.T) {
	rq := require.New(t)

	// Identical metrics give identical scores, ordering must fall back to
	// rank ascending with unranked last, then ID ascending.
	records := []models.University{
		{ID: 1, Name: "No Rank", AcademicRigor: lo.ToPtr(6.0)},
		{ID: 3, Name: "Rank Seven B", QSRank: lo.ToPtr(7), AcademicRigor: lo.ToPtr(6.0)},
		{ID: 2, Name: "Rank Seven A", QSRank: lo.ToPtr(7), AcademicRigor: lo.ToPtr(6.0)},
		{ID: 4, Name: "Rank Three", QSRank: lo.ToPtr(3), AcademicRigor: lo.ToPtr(6.0)},
	}
	prefs := ranking.Preferences{
		AcademicImportance:    4,
		DiversityImportance:   1,
		StudentLifeImportance: 1,
	}

	result, err := ranking.Recommend(records, prefs, 0)
	rq.NoError(err)
	rq.Len(result, 4)
	rq.Equal(int64(4), result[0].University.ID)
	rq.Equal(int64(2), result[1].University.ID)
	rq.Equal(int64(3), result[2].University.ID)
	rq.Equal(int64(1), result[3].University.ID)
}

func TestRecommendEmptyInput(t *testing.T) {
	rq := require.New(t)

	result, err := ranking.Recommend(nil, academicHeavyPrefs(), 0)
	rq.NoError(err)
	rq.NotNil(result)
	rq.Empty(result)

	result, err = ranking.Recommend([]models.University{}, academicHeavyPrefs(), 0)
	rq.NoError(err)
	rq.NotNil(result)
	rq.Empty(result)
}

func TestRecommendIsDeterministicAndPure(t *testing.T) {
	rq := require.New(t)

	records := scenarioRecords()
	snapshot := scenarioRecords()

	first, err := ranking.Recommend(records, academicHeavyPrefs(), 0)
	rq.NoError(err)
	second, err := ranking.Recommend(records, academicHeavyPrefs(), 0)
	rq.NoError(err)

	rq.Equal(first, second)
	rq.Equal(snapshot, records)
}
