package normalize_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/deniz/uniscope/internal/app/models"
	"github.com/deniz/uniscope/internal/pkg/normalize"
)

func TestRank(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want *int
	}{
		{name: "plain number", raw: "12", want: lo.ToPtr(12)},
		{name: "tied rank", raw: "=12", want: lo.ToPtr(12)},
		{name: "hash prefix", raw: "#7", want: lo.ToPtr(7)},
		{name: "open bracket", raw: "501+", want: lo.ToPtr(501)},
		{name: "range takes lower bound", raw: "601-650", want: lo.ToPtr(601)},
		{name: "not ranked", raw: "Not ranked", want: nil},
		{name: "unranked", raw: "Unranked", want: nil},
		{name: "not applicable", raw: "N/A", want: nil},
		{name: "empty", raw: "", want: nil},
		{name: "whitespace only", raw: "   ", want: nil},
		{name: "no digits", raw: "--", want: nil},
		{name: "zero is invalid", raw: "0", want: nil},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, normalize.Rank(tc.raw))
		})
	}
}

func TestScore(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want *float64
	}{
		{name: "plain decimal", raw: "7.5", want: lo.ToPtr(7.5)},
		{name: "integer", raw: "8", want: lo.ToPtr(8.0)},
		{name: "percent converts to ten scale", raw: "85%", want: lo.ToPtr(8.5)},
		{name: "percent above hundred clamps", raw: "120%", want: lo.ToPtr(10.0)},
		{name: "above range clamps", raw: "12.3", want: lo.ToPtr(10.0)},
		{name: "surrounding text", raw: "score: 6.4", want: lo.ToPtr(6.4)},
		{name: "empty", raw: "", want: nil},
		{name: "no number", raw: "excellent", want: nil},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			got := normalize.Score(tc.raw)
			if tc.want == nil {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.InDelta(t, *tc.want, *got, 1e-9)
		})
	}
}

func TestCountry(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "alias map", raw: "USA", want: "United States"},
		{name: "dotted variant", raw: "u.s.a.", want: "United States"},
		{name: "uk variant", raw: "U.K.", want: "United Kingdom"},
		{name: "home nation folds", raw: "Scotland", want: "United Kingdom"},
		{name: "renamed country", raw: "Czech Republic", want: "Czechia"},
		{name: "whitespace collapsed", raw: "  new   zealand ", want: "New Zealand"},
		{name: "already canonical", raw: "Finland", want: "Finland"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, normalize.Country(tc.raw))
		})
	}
}

func TestName(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "lowercase words stay lowercase", raw: "university of the arts", want: "University of the Arts"},
		{name: "abbreviations expand", raw: "Delft Univ. of Tech", want: "Delft University of Technology"},
		{name: "leading the dropped", raw: "The University of Melbourne", want: "University of Melbourne"},
		{name: "trailing parenthetical dropped", raw: "Sorbonne University (Paris)", want: "Sorbonne University"},
		{name: "trailing country code dropped", raw: "ETH Zurich - CH", want: "Eth Zurich"},
		{name: "whitespace collapsed", raw: "  KU   Leuven ", want: "Ku Leuven"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, normalize.Name(tc.raw))
		})
	}
}

func TestCity(t *testing.T) {
	rq := require.New(t)

	rq.Equal("Cambridge", normalize.City("Cambridge (Massachusetts)"))
	rq.Equal("Boston", normalize.City("Boston, MA"))
	rq.Equal("Den Haag", normalize.City("  den   haag "))
	rq.Equal("", normalize.City("   "))
}

func TestAvailability(t *testing.T) {
	rq := require.New(t)

	rq.Equal(lo.ToPtr(models.AvailabilityYes), normalize.Availability(" Yes "))
	rq.Equal(lo.ToPtr(models.AvailabilityYes), normalize.Availability("available"))
	rq.Equal(lo.ToPtr(models.AvailabilityNo), normalize.Availability("NO"))
	rq.Equal(lo.ToPtr(models.AvailabilityNo), normalize.Availability("not available"))
	rq.Equal(lo.ToPtr(models.AvailabilityPartial), normalize.Availability("limited"))
	rq.Nil(normalize.Availability(""))
	rq.Nil(normalize.Availability("ask the office"))
}

func TestYesNo(t *testing.T) {
	rq := require.New(t)

	rq.Equal(lo.ToPtr(models.AvailabilityYes), normalize.YesNo("yes"))
	rq.Equal(lo.ToPtr(models.AvailabilityNo), normalize.YesNo(" No "))
	rq.Nil(normalize.YesNo("partial"))
	rq.Nil(normalize.YesNo("limited"))
	rq.Nil(normalize.YesNo(""))
}

func TestSplitLanguages(t *testing.T) {
	rq := require.New(t)

	rq.Equal([]string{"English"}, normalize.SplitLanguages("English"))
	rq.Equal([]string{"English", "German"}, normalize.SplitLanguages("English, German"))
	rq.Equal([]string{"Dutch", "English", "French"}, normalize.SplitLanguages("Dutch; English / French"))
	rq.Nil(normalize.SplitLanguages("  "))
	rq.Nil(normalize.SplitLanguages(""))
}
