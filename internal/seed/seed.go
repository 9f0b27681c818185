package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	appModels "github.com/deniz/uniscope/internal/app/models"
	appRepos "github.com/deniz/uniscope/internal/app/repositories"
)

// CreateDefaultData inserts a small set of sample universities on first boot
// so the API is explorable before any dataset import has run. It is a no-op
// when the universities table already holds data.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	universityRepo := appRepos.NewUniversityRepository(dbPool)

	count, err := universityRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting universities for seeding")
		return err
	}
	if count > 0 {
		lgr.Debug().Int64("count", count).Msg("Universities already present, skipping seed data")
		return nil
	}

	lgr.Info().Msg("Empty universities table, inserting sample data...")

	var finalErr error // To collect potential errors without stopping the process
	for _, university := range sampleUniversities() {
		if _, err := universityRepo.Create(ctx, &university); err != nil {
			lgr.Error().Err(err).Str("name", university.Name).Msg("Error seeding sample university")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Sample data seeding finished")
	return finalErr
}

// sampleUniversities returns a handful of records spanning ranked and
// unranked entries, multiple countries and partial survey coverage, so
// search, recommendation and stats endpoints all have something to show.
func sampleUniversities() []appModels.University {
	return []appModels.University{
		{
			Name:              "Technical University of Munich",
			City:              lo.ToPtr("Munich"),
			Country:           lo.ToPtr("Germany"),
			QSRank:            lo.ToPtr(28),
			OverallQuality:    lo.ToPtr(8.4),
			AcademicRigor:     lo.ToPtr(8.9),
			Openness:          lo.ToPtr(7.8),
			CulturalDiversity: lo.ToPtr(8.1),
			StudentLife:       lo.ToPtr(7.9),
			CampusSafety:      lo.ToPtr(8.6),
			Accommodation:     lo.ToPtr(appModels.AvailabilityPartial),
			Language:          lo.ToPtr("German"),
			LanguageClasses:   lo.ToPtr(appModels.AvailabilityYes),
			Accessibility:     lo.ToPtr(appModels.AvailabilityYes),
			ResponseCount:     42,
		},
		{
			Name:              "University of Amsterdam",
			City:              lo.ToPtr("Amsterdam"),
			Country:           lo.ToPtr("Netherlands"),
			QSRank:            lo.ToPtr(53),
			OverallQuality:    lo.ToPtr(8.1),
			AcademicRigor:     lo.ToPtr(7.7),
			Openness:          lo.ToPtr(9.0),
			CulturalDiversity: lo.ToPtr(8.8),
			StudentLife:       lo.ToPtr(8.5),
			CampusSafety:      lo.ToPtr(8.2),
			Accommodation:     lo.ToPtr(appModels.AvailabilityNo),
			Language:          lo.ToPtr("English"),
			LanguageClasses:   lo.ToPtr(appModels.AvailabilityYes),
			Accessibility:     lo.ToPtr(appModels.AvailabilityPartial),
			ResponseCount:     35,
		},
		{
			Name:              "Charles University",
			City:              lo.ToPtr("Prague"),
			Country:           lo.ToPtr("Czech Republic"),
			QSRank:            lo.ToPtr(246),
			OverallQuality:    lo.ToPtr(7.3),
			AcademicRigor:     lo.ToPtr(7.5),
			CulturalDiversity: lo.ToPtr(7.0),
			StudentLife:       lo.ToPtr(8.2),
			Accommodation:     lo.ToPtr(appModels.AvailabilityYes),
			Language:          lo.ToPtr("Czech"),
			LanguageClasses:   lo.ToPtr(appModels.AvailabilityYes),
			ResponseCount:     18,
		},
		{
			Name:          "Kyoto Institute of Design",
			City:          lo.ToPtr("Kyoto"),
			Country:       lo.ToPtr("Japan"),
			StudentLife:   lo.ToPtr(8.8),
			CampusSafety:  lo.ToPtr(9.4),
			Language:      lo.ToPtr("Japanese"),
			Accommodation: lo.ToPtr(appModels.AvailabilityYes),
			ResponseCount: 7,
		},
	}
}
