package ingest_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deniz/uniscope/internal/app/models"
	"github.com/deniz/uniscope/internal/ingest"
)

// fakeStore records upserts in memory, treating (name, country) as the
// identity the way the repository does.
type fakeStore struct {
	upserts []*models.University
	seen    map[string]bool
	failOn  string
}

func newFakeStore() *fakeStore {
	return &fakeStore{seen: map[string]bool{}}
}

func (f *fakeStore) Upsert(_ context.Context, university *models.University) (bool, error) {
	if f.failOn != "" && university.Name == f.failOn {
		return false, errors.New("connection reset")
	}

	key := university.Name + "|"
	if university.Country != nil {
		key += *university.Country
	}

	created := !f.seen[key]
	f.seen[key] = true
	f.upserts = append(f.upserts, university)
	return created, nil
}

func (f *fakeStore) byName(name string) *models.University {
	for _, u := range f.upserts {
		if u.Name == name {
			return u
		}
	}
	return nil
}

func TestImportNormalizesAndCounts(t *testing.T) {
	rq := require.New(t)

	csvData := strings.Join([]string{
		"name,city,country,qs_rank,overall_quality,academic_rigor,openness,accommodation,language,response_count",
		"  delft tech univ ,Delft,Netherlands,=54,8.2,85%,7,y,\"Dutch; English\",23",
		"delft tech univ,Delft,Netherlands,=54,8.4,8.6,7.1,yes,Dutch,25",
		"university of vienna,Vienna,Austria,Not ranked,7.5,7.0,8.0,partial,German,11",
	}, "\n")

	store := newFakeStore()
	stats, err := ingest.NewImporter(store).Import(context.Background(), strings.NewReader(csvData))
	rq.NoError(err)

	rq.Equal(3, stats.TotalProcessed)
	rq.Equal(2, stats.Created)
	rq.Equal(1, stats.Updated)
	rq.Equal(0, stats.Skipped)
	rq.Equal(0, stats.Errors)

	delft := store.byName("Delft Technology University")
	rq.NotNil(delft, "abbreviations should be expanded and the name title-cased")
	rq.NotNil(delft.QSRank)
	rq.Equal(54, *delft.QSRank)
	rq.NotNil(delft.AcademicRigor)
	rq.InDelta(8.5, *delft.AcademicRigor, 0.0001) // 85% on the 0-10 scale
	rq.NotNil(delft.Accommodation)
	rq.Equal(models.AvailabilityYes, *delft.Accommodation)
	rq.NotNil(delft.Language)
	rq.Equal("Dutch, English", *delft.Language)
	rq.Equal(23, delft.ResponseCount)

	vienna := store.byName("University of Vienna")
	rq.NotNil(vienna)
	rq.Nil(vienna.QSRank, "Not ranked must stay NULL")
	rq.NotNil(vienna.Accommodation)
	rq.Equal(models.AvailabilityPartial, *vienna.Accommodation)
}

func TestImportMapsSurveyExportHeaders(t *testing.T) {
	rq := require.New(t)

	csvData := strings.Join([]string{
		"Name of University,City,Country,Overall Quality of Education,Academic Rigor,Openness*,Cultural Diversity,Overall Student Life,Sense of Campus Safety/Security,University Provided Accommodation,Language of Instruction,Local Language Classes for Students,Accessibility/Disability Support Services Available",
		"Uppsala University,Uppsala,Sweden,8.1,7.9,8.4,8.0,8.6,9.0,Yes,Swedish,Yes,Partial",
	}, "\n")

	store := newFakeStore()
	stats, err := ingest.NewImporter(store).Import(context.Background(), strings.NewReader(csvData))
	rq.NoError(err)
	rq.Equal(1, stats.Created)

	uppsala := store.byName("Uppsala University")
	rq.NotNil(uppsala)
	rq.NotNil(uppsala.OverallQuality)
	rq.InDelta(8.1, *uppsala.OverallQuality, 0.0001)
	rq.NotNil(uppsala.Openness)
	rq.InDelta(8.4, *uppsala.Openness, 0.0001)
	rq.NotNil(uppsala.CampusSafety)
	rq.InDelta(9.0, *uppsala.CampusSafety, 0.0001)
	rq.NotNil(uppsala.LanguageClasses)
	rq.Equal(models.AvailabilityYes, *uppsala.LanguageClasses)
	rq.NotNil(uppsala.Accessibility)
	rq.Equal(models.AvailabilityPartial, *uppsala.Accessibility)
}

func TestImportSkipsRowsWithoutName(t *testing.T) {
	rq := require.New(t)

	csvData := strings.Join([]string{
		"name,country",
		",Germany",
		"   ,France",
		"Aalto University,Finland",
	}, "\n")

	store := newFakeStore()
	stats, err := ingest.NewImporter(store).Import(context.Background(), strings.NewReader(csvData))
	rq.NoError(err)

	rq.Equal(3, stats.TotalProcessed)
	rq.Equal(2, stats.Skipped)
	rq.Equal(1, stats.Created)
	rq.Len(store.upserts, 1)
}

func TestImportCountsStoreFailuresAndContinues(t *testing.T) {
	rq := require.New(t)

	csvData := strings.Join([]string{
		"name,country",
		"Lund University,Sweden",
		"Ghent University,Belgium",
	}, "\n")

	store := newFakeStore()
	store.failOn = "Lund University"

	stats, err := ingest.NewImporter(store).Import(context.Background(), strings.NewReader(csvData))
	rq.NoError(err)

	rq.Equal(1, stats.Errors)
	rq.Equal(1, stats.Created)
	rq.NotNil(store.byName("Ghent University"))
}

func TestImportToleratesRaggedRows(t *testing.T) {
	rq := require.New(t)

	csvData := strings.Join([]string{
		"name,city,country",
		"Trinity College", // missing trailing cells
		"University of Oslo,Oslo,Norway",
	}, "\n")

	store := newFakeStore()
	stats, err := ingest.NewImporter(store).Import(context.Background(), strings.NewReader(csvData))
	rq.NoError(err)

	rq.Equal(2, stats.Created)
	trinity := store.byName("Trinity College")
	rq.NotNil(trinity)
	rq.Nil(trinity.City)
	rq.Nil(trinity.Country)
}

func TestImportRejectsHeaderWithoutName(t *testing.T) {
	rq := require.New(t)

	_, err := ingest.NewImporter(newFakeStore()).Import(context.Background(), strings.NewReader("city,country\nDelft,Netherlands\n"))
	rq.Error(err)
	rq.Contains(err.Error(), "name column")
}

func TestImportStopsOnCanceledContext(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	csvData := "name\nAarhus University\n"
	_, err := ingest.NewImporter(newFakeStore()).Import(ctx, strings.NewReader(csvData))
	rq.ErrorIs(err, context.Canceled)
}
