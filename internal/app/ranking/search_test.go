package ranking_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/deniz/uniscope/internal/app/models"
	"github.com/deniz/uniscope/internal/app/ranking"
)

func searchRecords() []models.University {
	return []models.University{
		{
			ID:            1,
			Name:          "University of X",
			City:          lo.ToPtr("Xtown"),
			Country:       lo.ToPtr("FR"),
			QSRank:        lo.ToPtr(10),
			AcademicRigor: lo.ToPtr(5.0),
		},
		{
			ID:      2,
			Name:    "College of Y",
			City:    lo.ToPtr("Yville"),
			Country: lo.ToPtr("DE"),
			QSRank:  lo.ToPtr(50),
		},
		{
			ID:            3,
			Name:          "University of Z",
			Country:       lo.ToPtr("FR"),
			AcademicRigor: lo.ToPtr(3.0),
		},
	}
}

func TestSearchQueryMatchesNameCityCountry(t *testing.T) {
	rq := require.New(t)

	result, err := ranking.Search(searchRecords(), "univ", ranking.Filters{}, 1, 10)
	rq.NoError(err)
	rq.Equal(2, result.TotalCount)
	rq.Equal(int64(1), result.Universities[0].ID)
	rq.Equal(int64(3), result.Universities[1].ID)

	// city and country match too, case-insensitively
	result, err = ranking.Search(searchRecords(), "YVILLE", ranking.Filters{}, 1, 10)
	rq.NoError(err)
	rq.Equal(1, result.TotalCount)
	rq.Equal(int64(2), result.Universities[0].ID)

	result, err = ranking.Search(searchRecords(), "de", ranking.Filters{}, 1, 10)
	rq.NoError(err)
	rq.Equal(1, result.TotalCount)
	rq.Equal(int64(2), result.Universities[0].ID)
}

func TestSearchBlankQueryMatchesEverything(t *testing.T) {
	rq := require.New(t)

	for _, query := range []string{"", "   "} {
		result, err := ranking.Search(searchRecords(), query, ranking.Filters{}, 1, 10)
		rq.NoError(err)
		rq.Equal(3, result.TotalCount)
	}
}

func TestSearchRankBoundsExcludeUnranked(t *testing.T) {
	rq := require.New(t)

	filters := ranking.Filters{MinRank: lo.ToPtr(1), MaxRank: lo.ToPtr(20)}
	result, err := ranking.Search(searchRecords(), "", filters, 1, 10)
	rq.NoError(err)
	rq.Equal(1, result.TotalCount)
	rq.Equal(int64(1), result.Universities[0].ID)

	// a single bound still excludes the unranked record
	result, err = ranking.Search(searchRecords(), "", ranking.Filters{MinRank: lo.ToPtr(1)}, 1, 10)
	rq.NoError(err)
	rq.Equal(2, result.TotalCount)
	for _, university := range result.Universities {
		rq.NotNil(university.QSRank)
	}
}

func TestSearchCountryAndThresholdFilters(t *testing.T) {
	rq := require.New(t)

	result, err := ranking.Search(searchRecords(), "", ranking.Filters{Country: lo.ToPtr("FR")}, 1, 10)
	rq.NoError(err)
	rq.Equal(2, result.TotalCount)

	// case-sensitive equality, unlike the free-text query
	result, err = ranking.Search(searchRecords(), "", ranking.Filters{Country: lo.ToPtr("fr")}, 1, 10)
	rq.NoError(err)
	rq.Equal(0, result.TotalCount)

	// a positive threshold reads missing metrics as 0 and excludes them
	filters := ranking.Filters{MinAcademicRigor: lo.ToPtr(4.0)}
	result, err = ranking.Search(searchRecords(), "", filters, 1, 10)
	rq.NoError(err)
	rq.Equal(1, result.TotalCount)
	rq.Equal(int64(1), result.Universities[0].ID)

	// a zero threshold keeps them
	filters = ranking.Filters{MinCampusSafety: lo.ToPtr(0.0)}
	result, err = ranking.Search(searchRecords(), "", filters, 1, 10)
	rq.NoError(err)
	rq.Equal(3, result.TotalCount)
}

func TestSearchPaginationPartitionsEligibleSet(t *testing.T) {
	rq := require.New(t)

	records := searchRecords()
	seen := make(map[int64]int)
	for page := 1; page <= 3; page++ {
		result, err := ranking.Search(records, "", ranking.Filters{}, page, 1)
		rq.NoError(err)
		rq.Equal(3, result.TotalCount)
		rq.Len(result.Universities, 1)
		seen[result.Universities[0].ID]++
	}

	// every record appears exactly once across the pages
	rq.Len(seen, 3)
	for id, count := range seen {
		rq.Equalf(1, count, "university %d returned more than once", id)
	}

	// past the last page: empty slice, total intact
	result, err := ranking.Search(records, "", ranking.Filters{}, 4, 1)
	rq.NoError(err)
	rq.Equal(3, result.TotalCount)
	rq.NotNil(result.Universities)
	rq.Empty(result.Universities)

	// a partial final page is clamped, not padded
	result, err = ranking.Search(records, "", ranking.Filters{}, 2, 2)
	rq.NoError(err)
	rq.Equal(3, result.TotalCount)
	rq.Len(result.Universities, 1)
}

func TestSearchOrderingRankedFirstThenID(t *testing.T) {
	rq := require.New(t)

	result, err := ranking.Search(searchRecords(), "", ranking.Filters{}, 1, 10)
	rq.NoError(err)
	rq.Len(result.Universities, 3)
	rq.Equal(int64(1), result.Universities[0].ID)
	rq.Equal(int64(2), result.Universities[1].ID)
	rq.Equal(int64(3), result.Universities[2].ID)
}

func TestSearchValidation(t *testing.T) {
	testCases := []struct {
		name     string
		page     int
		pageSize int
	}{
		{name: "page zero", page: 0, pageSize: 10},
		{name: "page negative", page: -2, pageSize: 10},
		{name: "page size zero", page: 1, pageSize: 0},
		{name: "page size negative", page: 1, pageSize: -5},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			_, err := ranking.Search(searchRecords(), "", ranking.Filters{}, tc.page, tc.pageSize)
			rq.ErrorIs(err, ranking.ErrInvalidInput)
		})
	}
}

func TestSearchIsDeterministicAndPure(t *testing.T) {
	rq := require.New(t)

	records := searchRecords()
	snapshot := searchRecords()

	first, err := ranking.Search(records, "university", ranking.Filters{}, 1, 10)
	rq.NoError(err)
	second, err := ranking.Search(records, "university", ranking.Filters{}, 1, 10)
	rq.NoError(err)

	rq.Equal(first, second)
	rq.Equal(snapshot, records)
}

func TestSearchEmptyInput(t *testing.T) {
	rq := require.New(t)

	result, err := ranking.Search(nil, "anything", ranking.Filters{}, 1, 10)
	rq.NoError(err)
	rq.Zero(result.TotalCount)
	rq.Empty(result.Universities)
}
