// Package normalize cleans raw dataset values (ranking feeds, survey
// exports) into the canonical shapes stored in the database. All functions
// are total: bad input yields nil or an empty string, never an error.
package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/deniz/uniscope/internal/app/models"
)

var (
	whitespaceRe   = regexp.MustCompile(`\s+`)
	digitsRe       = regexp.MustCompile(`\d+`)
	decimalRe      = regexp.MustCompile(`\d+(\.\d+)?`)
	parentheticRe  = regexp.MustCompile(`\s*\([^)]*\)$`)
	trailingCodeRe = regexp.MustCompile(`\s*[-,]\s*[A-Z]{2,}$`)
	leadingTheRe   = regexp.MustCompile(`^The\s+`)
)

// abbreviationRules expands the shorthand ranking feeds use in
// institution names. Order matters, longer forms first.
var abbreviationRules = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\bUniv\b\.?`), "University"},
	{regexp.MustCompile(`(?i)\bInst\b\.?`), "Institute"},
	{regexp.MustCompile(`(?i)\bTech\b\.?`), "Technology"},
	{regexp.MustCompile(`(?i)\bColl\b\.?`), "College"},
	{regexp.MustCompile(`(?i)\bInt'?l\b\.?`), "International"},
	{regexp.MustCompile(`(?i)\bNat'?l\b\.?`), "National"},
	{regexp.MustCompile(`\bSt\b\.`), "Saint"},
}

// countryNames maps the aliases seen in rankings and survey data to one
// canonical name per country, so filters and stats group correctly.
var countryNames = map[string]string{
	"US":                       "United States",
	"USA":                      "United States",
	"United States of America": "United States",
	"UK":                       "United Kingdom",
	"Great Britain":            "United Kingdom",
	"England":                  "United Kingdom",
	"Scotland":                 "United Kingdom",
	"Wales":                    "United Kingdom",
	"Northern Ireland":         "United Kingdom",
	"Russia":                   "Russian Federation",
	"South Korea":              "Republic of Korea",
	"Vietnam":                  "Viet Nam",
	"Czech Republic":           "Czechia",
	"Macedonia":                "North Macedonia",
}

var (
	usVariantRe = regexp.MustCompile(`(?i)^u\.?s\.?a?\.?$`)
	ukVariantRe = regexp.MustCompile(`(?i)^u\.?k\.?$`)
)

// notRankedMarkers flag rank cells that mean "no rank at all"
var notRankedMarkers = []string{"not", "unranked", "n/a", "na"}

// lowercaseWords stay lowercase inside a title-cased name
var lowercaseWords = map[string]struct{}{
	"of": {}, "the": {}, "and": {}, "in": {}, "at": {},
	"by": {}, "for": {}, "to": {}, "with": {}, "from": {}, "on": {},
}

// Rank parses the rank formats ranking feeds publish: "12", "=12", "#7",
// "501+", "601-650" (lower bound wins), "Not ranked". Returns nil when the
// cell carries no usable positive rank.
func Rank(raw string) *int {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	lowered := strings.ToLower(value)
	for _, marker := range notRankedMarkers {
		if strings.Contains(lowered, marker) {
			return nil
		}
	}

	value = strings.TrimLeft(value, "=#+")
	if idx := strings.IndexAny(value, "-+"); idx >= 0 {
		value = value[:idx]
	}

	digits := digitsRe.FindString(value)
	if digits == "" {
		return nil
	}
	rank, err := strconv.Atoi(digits)
	if err != nil || rank <= 0 {
		return nil
	}
	return &rank
}

// Score parses a survey metric. Percent values are converted onto the 0-10
// scale, everything is clamped into [0,10]. Returns nil for unparseable cells.
func Score(raw string) *float64 {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	if strings.Contains(value, "%") {
		value = strings.ReplaceAll(value, "%", "")
		percent, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil
		}
		score := clampScore(percent / 10)
		return &score
	}

	decimal := decimalRe.FindString(value)
	if decimal == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(decimal, 64)
	if err != nil {
		return nil
	}
	score := clampScore(parsed)
	return &score
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// Country standardizes a country cell to one canonical name
func Country(raw string) string {
	country := whitespaceRe.ReplaceAllString(strings.TrimSpace(raw), " ")
	if country == "" {
		return ""
	}

	if canonical, ok := countryNames[country]; ok {
		return canonical
	}
	if usVariantRe.MatchString(country) {
		return "United States"
	}
	if ukVariantRe.MatchString(country) {
		return "United Kingdom"
	}
	return titleCase(country)
}

// City strips trailing state and country decorations from a city cell
func City(raw string) string {
	city := parentheticRe.ReplaceAllString(strings.TrimSpace(raw), "")
	city = trailingCodeRe.ReplaceAllString(city, "")
	city = whitespaceRe.ReplaceAllString(strings.TrimSpace(city), " ")
	if city == "" {
		return ""
	}
	return titleCase(city)
}

// Name standardizes an institution name: whitespace collapsed, common
// abbreviations expanded, trailing country codes and parentheticals
// removed, leading "The" dropped, then title-cased with short words kept
// lowercase ("University of the Arts").
func Name(raw string) string {
	name := whitespaceRe.ReplaceAllString(strings.TrimSpace(raw), " ")
	if name == "" {
		return ""
	}

	for _, rule := range abbreviationRules {
		name = rule.re.ReplaceAllString(name, rule.replacement)
	}
	name = parentheticRe.ReplaceAllString(name, "")
	name = trailingCodeRe.ReplaceAllString(name, "")
	name = leadingTheRe.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return titleCase(name)
}

// Availability coerces a free-text survey answer into the tri-state
// facility flags. Unknown answers map to nil rather than a guess.
func Availability(raw string) *string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "true", "1", "available":
		value := models.AvailabilityYes
		return &value
	case "no", "n", "false", "0", "none", "not available":
		value := models.AvailabilityNo
		return &value
	case "partial", "partially", "limited", "some":
		value := models.AvailabilityPartial
		return &value
	default:
		return nil
	}
}

// YesNo coerces a survey answer whose domain is strictly Yes/No. Partial
// answers carry no information for such a flag and map to nil like any
// other unknown value.
func YesNo(raw string) *string {
	value := Availability(raw)
	if value == nil || *value == models.AvailabilityPartial {
		return nil
	}
	return value
}

// SplitLanguages splits a languages-of-instruction cell on the separators
// the survey uses. Entries keep their original casing.
func SplitLanguages(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '/'
	})

	languages := make([]string, 0, len(parts))
	for _, part := range parts {
		if language := strings.TrimSpace(part); language != "" {
			languages = append(languages, language)
		}
	}
	if len(languages) == 0 {
		return nil
	}
	return languages
}

// titleCase capitalizes each word, keeping prepositions and articles
// lowercase everywhere but the first position
func titleCase(value string) string {
	words := strings.Split(value, " ")
	for i, word := range words {
		lower := strings.ToLower(word)
		if i > 0 {
			if _, ok := lowercaseWords[lower]; ok {
				words[i] = lower
				continue
			}
		}
		words[i] = capitalize(lower)
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
