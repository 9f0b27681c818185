// Package ingest loads survey dataset exports into the database. The
// importer consumes the CSV hand-off produced by the survey pipeline,
// normalizes every cell and upserts by (name, country) so repeated imports
// converge instead of duplicating rows.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/deniz/uniscope/internal/app/models"
	"github.com/deniz/uniscope/internal/pkg/helpers"
	"github.com/deniz/uniscope/internal/pkg/logger"
	"github.com/deniz/uniscope/internal/pkg/normalize"
)

// Store is the slice of the repository the importer needs. Upsert reports
// true when a new row was inserted.
type Store interface {
	Upsert(ctx context.Context, university *models.University) (bool, error)
}

// Stats counts what happened to each row of an import run.
type Stats struct {
	TotalProcessed int
	Created        int
	Updated        int
	Skipped        int
	Errors         int
}

// Importer reads CSV dataset exports and writes them through a Store.
type Importer struct {
	store Store
}

// NewImporter creates an importer backed by the given store.
func NewImporter(store Store) *Importer {
	return &Importer{store: store}
}

// headerAliases maps the raw survey-export headings onto the canonical
// column names. Exports produced by the data pipeline already use the
// canonical names and pass through untouched.
var headerAliases = map[string]string{
	"name of university":                  "name",
	"overall quality of education":        "overall_quality",
	"academic rigor":                      "academic_rigor",
	"openness*":                           "openness",
	"cultural diversity":                  "cultural_diversity",
	"overall student life":                "student_life",
	"sense of campus safety/security":     "campus_safety",
	"university provided accommodation":   "accommodation",
	"language of instruction":             "language",
	"local language classes for students": "language_classes",
	"accessibility/disability support services available": "accessibility",
}

// ImportFile opens the CSV at path and imports it.
func (i *Importer) ImportFile(ctx context.Context, path string) (*Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer file.Close()

	return i.Import(ctx, file)
}

// Import reads CSV data and upserts one university per row. Rows without a
// usable name are skipped; rows that fail to persist are counted as errors
// and the import keeps going.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*Stats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	columns := mapHeader(header)
	if _, ok := columns["name"]; !ok {
		return nil, fmt.Errorf("dataset header has no name column")
	}

	stats := &Stats{}
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.TotalProcessed++
			stats.Errors++
			logger.Warn().Err(err).Int("row", stats.TotalProcessed).Msg("Unreadable dataset row")
			continue
		}

		stats.TotalProcessed++

		university, ok := parseRow(columns, row)
		if !ok {
			stats.Skipped++
			continue
		}

		created, err := i.store.Upsert(ctx, university)
		if err != nil {
			stats.Errors++
			logger.Error().Err(err).
				Str("name", university.Name).
				Str("country", helpers.StringValue(university.Country)).
				Msg("Failed to persist dataset row")
			continue
		}
		if created {
			stats.Created++
		} else {
			stats.Updated++
		}
	}

	logger.Info().
		Int("processed", stats.TotalProcessed).
		Int("created", stats.Created).
		Int("updated", stats.Updated).
		Int("skipped", stats.Skipped).
		Int("errors", stats.Errors).
		Msg("Dataset import finished")

	return stats, nil
}

// mapHeader resolves each header cell to a canonical column name and its
// position. Unknown columns are ignored.
func mapHeader(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for idx, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if alias, ok := headerAliases[name]; ok {
			name = alias
		} else {
			name = strings.ReplaceAll(name, " ", "_")
		}
		if name == "" {
			continue
		}
		if _, exists := columns[name]; !exists {
			columns[name] = idx
		}
	}
	return columns
}

// parseRow normalizes one CSV row into a University. Returns false when the
// row carries no usable institution name.
func parseRow(columns map[string]int, row []string) (*models.University, bool) {
	cell := func(column string) string {
		idx, ok := columns[column]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	name := normalize.Name(cell("name"))
	if name == "" {
		return nil, false
	}

	university := &models.University{
		Name:              name,
		City:              helpers.NullableString(normalize.City(cell("city"))),
		Country:           helpers.NullableString(normalize.Country(cell("country"))),
		QSRank:            normalize.Rank(cell("qs_rank")),
		OverallQuality:    normalize.Score(cell("overall_quality")),
		AcademicRigor:     normalize.Score(cell("academic_rigor")),
		Openness:          normalize.Score(cell("openness")),
		CulturalDiversity: normalize.Score(cell("cultural_diversity")),
		StudentLife:       normalize.Score(cell("student_life")),
		CampusSafety:      normalize.Score(cell("campus_safety")),
		Accommodation:     normalize.Availability(cell("accommodation")),
		LanguageClasses:   normalize.YesNo(cell("language_classes")),
		Accessibility:     normalize.Availability(cell("accessibility")),
		Language:          helpers.NullableString(strings.Join(normalize.SplitLanguages(cell("language")), ", ")),
		ResponseCount:     parseResponseCount(cell("response_count")),
	}
	return university, true
}

// parseResponseCount reads the survey response tally, defaulting to 0 for
// blank or malformed cells.
func parseResponseCount(raw string) int {
	count, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || count < 0 {
		return 0
	}
	return count
}
