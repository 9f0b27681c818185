package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/deniz/uniscope/internal/app/models"
)

// Filters narrows a search result set. Nil fields are ignored. Rank bounds
// only ever match ranked universities; the metric thresholds read a nil
// metric as 0, so any positive threshold excludes records without survey
// data for that metric.
type Filters struct {
	Country              *string
	MinRank              *int
	MaxRank              *int
	MinAcademicRigor     *float64
	MinCulturalDiversity *float64
	MinStudentLife       *float64
	MinCampusSafety      *float64
}

// SearchResult carries one page of matches plus the size of the full
// eligible set, so callers can build pagination metadata.
type SearchResult struct {
	Universities []models.University
	TotalCount   int
}

// Search selects the records matching query and filters, orders them by QS
// rank ascending (unranked last, ties by ID) and returns the requested page.
//
// A non-blank query is matched case-insensitively as a substring of name,
// city and country, OR-combined; filters are AND-combined on top. A page
// beyond the eligible set yields an empty page with the correct TotalCount.
func Search(records []models.University, query string, filters Filters, page, pageSize int) (SearchResult, error) {
	if page < 1 {
		return SearchResult{}, fmt.Errorf("%w: page must be at least 1", ErrInvalidInput)
	}
	if pageSize <= 0 {
		return SearchResult{}, fmt.Errorf("%w: page size must be positive", ErrInvalidInput)
	}

	query = strings.ToLower(strings.TrimSpace(query))

	eligible := make([]models.University, 0, len(records))
	for _, record := range records {
		if query != "" && !matchesQuery(record, query) {
			continue
		}
		if !matchesFilters(record, filters) {
			continue
		}
		eligible = append(eligible, record)
	}

	sort.Slice(eligible, func(i, j int) bool {
		if c := compareRanks(eligible[i].QSRank, eligible[j].QSRank); c != 0 {
			return c < 0
		}
		return eligible[i].ID < eligible[j].ID
	})

	total := len(eligible)
	start := (page - 1) * pageSize
	if start >= total {
		return SearchResult{Universities: []models.University{}, TotalCount: total}, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	pageSlice := make([]models.University, end-start)
	copy(pageSlice, eligible[start:end])
	return SearchResult{Universities: pageSlice, TotalCount: total}, nil
}

// matchesQuery reports whether the lowercased query is a substring of the
// record's name, city or country. Nil fields never match.
func matchesQuery(record models.University, query string) bool {
	if strings.Contains(strings.ToLower(record.Name), query) {
		return true
	}
	if record.City != nil && strings.Contains(strings.ToLower(*record.City), query) {
		return true
	}
	if record.Country != nil && strings.Contains(strings.ToLower(*record.Country), query) {
		return true
	}
	return false
}

// matchesFilters applies every present filter, all of them must hold
func matchesFilters(record models.University, filters Filters) bool {
	if filters.Country != nil {
		if record.Country == nil || *record.Country != *filters.Country {
			return false
		}
	}
	if filters.MinRank != nil || filters.MaxRank != nil {
		if record.QSRank == nil {
			return false
		}
		if filters.MinRank != nil && *record.QSRank < *filters.MinRank {
			return false
		}
		if filters.MaxRank != nil && *record.QSRank > *filters.MaxRank {
			return false
		}
	}
	if filters.MinAcademicRigor != nil && metricValue(record.AcademicRigor) < *filters.MinAcademicRigor {
		return false
	}
	if filters.MinCulturalDiversity != nil && metricValue(record.CulturalDiversity) < *filters.MinCulturalDiversity {
		return false
	}
	if filters.MinStudentLife != nil && metricValue(record.StudentLife) < *filters.MinStudentLife {
		return false
	}
	if filters.MinCampusSafety != nil && metricValue(record.CampusSafety) < *filters.MinCampusSafety {
		return false
	}
	return true
}
