package repositories

import (
	"context"
	"fmt"

	"github.com/deniz/uniscope/internal/app/models"
	"github.com/deniz/uniscope/internal/pkg/logger"
)

// surveyed restricts averages to rows carrying all three survey metrics,
// so a record scored on one axis does not skew the others.
const surveyed = "academic_rigor IS NOT NULL AND cultural_diversity IS NOT NULL AND student_life IS NOT NULL"

// CountryStats aggregates universities per country: counts, metric
// averages and the best-ranked university. Countryless records are left
// out entirely.
func (r *UniversityRepository) CountryStats(ctx context.Context) ([]models.CountryStat, error) {
	sql, args, err := r.sb.Select(
		"country",
		"COUNT(*) AS university_count",
		"ROUND(AVG(overall_quality)::numeric, 2)::float8",
		"ROUND(AVG(academic_rigor)::numeric, 2)::float8",
		"ROUND(AVG(cultural_diversity)::numeric, 2)::float8",
		"ROUND(AVG(student_life)::numeric, 2)::float8",
		"(SELECT t.name FROM universities t WHERE t.country = u.country AND t.qs_rank IS NOT NULL ORDER BY t.qs_rank ASC, t.id ASC LIMIT 1)",
		"MIN(qs_rank)",
	).
		From("universities u").
		Where("country IS NOT NULL").
		GroupBy("country").
		OrderBy("university_count DESC", "country ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building country stats SQL")
		return nil, fmt.Errorf("failed to build country stats query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing country stats query")
		return nil, fmt.Errorf("error querying country stats: %w", err)
	}
	defer rows.Close()

	var stats []models.CountryStat
	for rows.Next() {
		var stat models.CountryStat
		err := rows.Scan(
			&stat.Country,
			&stat.UniversityCount,
			&stat.AvgOverallQuality,
			&stat.AvgAcademicRigor,
			&stat.AvgCulturalDiversity,
			&stat.AvgStudentLife,
			&stat.TopUniversity,
			&stat.TopUniversityRank,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning country stats row: %w", err)
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating country stats rows")
		return nil, fmt.Errorf("error iterating country stats rows: %w", err)
	}

	return stats, nil
}

// Languages returns the raw instruction-language strings of every
// university that has one. Splitting multi-language values and tallying
// is left to the service layer.
func (r *UniversityRepository) Languages(ctx context.Context) ([]string, error) {
	sql, args, err := r.sb.Select("language").
		From("universities").
		Where("language IS NOT NULL").
		Where("language <> ''").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building languages SQL")
		return nil, fmt.Errorf("failed to build languages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing languages query")
		return nil, fmt.Errorf("error querying languages: %w", err)
	}
	defer rows.Close()

	var languages []string
	for rows.Next() {
		var language string
		if err := rows.Scan(&language); err != nil {
			return nil, fmt.Errorf("error scanning language row: %w", err)
		}
		languages = append(languages, language)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating language rows")
		return nil, fmt.Errorf("error iterating language rows: %w", err)
	}

	return languages, nil
}

// PlatformStats returns collection-wide totals in a single query.
func (r *UniversityRepository) PlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	sql, args, err := r.sb.Select(
		"COUNT(*)",
		"COUNT(qs_rank)",
		"COUNT(DISTINCT country)",
		"COUNT(*) FILTER (WHERE response_count > 0)",
		"ROUND(AVG(academic_rigor) FILTER (WHERE "+surveyed+")::numeric, 2)::float8",
		"ROUND(AVG(cultural_diversity) FILTER (WHERE "+surveyed+")::numeric, 2)::float8",
		"ROUND(AVG(student_life) FILTER (WHERE "+surveyed+")::numeric, 2)::float8",
	).
		From("universities").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building platform stats SQL")
		return nil, fmt.Errorf("failed to build platform stats query: %w", err)
	}

	stats := &models.PlatformStats{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&stats.TotalUniversities,
		&stats.RankedUniversities,
		&stats.Countries,
		&stats.WithFeedback,
		&stats.AvgAcademicRigor,
		&stats.AvgCulturalDiversity,
		&stats.AvgStudentLife,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning platform stats row")
		return nil, fmt.Errorf("error getting platform stats: %w", err)
	}

	return stats, nil
}

// RankingRanges returns the QS rank spread and the cumulative top-N
// bracket counts.
func (r *UniversityRepository) RankingRanges(ctx context.Context) (*models.RankingRanges, error) {
	sql, args, err := r.sb.Select(
		"MIN(qs_rank)",
		"MAX(qs_rank)",
		"COUNT(qs_rank)",
		"COUNT(*) FILTER (WHERE qs_rank IS NULL)",
		"COUNT(*) FILTER (WHERE qs_rank <= 50)",
		"COUNT(*) FILTER (WHERE qs_rank <= 100)",
		"COUNT(*) FILTER (WHERE qs_rank <= 200)",
		"COUNT(*) FILTER (WHERE qs_rank <= 500)",
	).
		From("universities").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building ranking ranges SQL")
		return nil, fmt.Errorf("failed to build ranking ranges query: %w", err)
	}

	ranges := &models.RankingRanges{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&ranges.MinRank,
		&ranges.MaxRank,
		&ranges.TotalRanked,
		&ranges.Unranked,
		&ranges.Distribution.Top50,
		&ranges.Distribution.Top100,
		&ranges.Distribution.Top200,
		&ranges.Distribution.Top500,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning ranking ranges row")
		return nil, fmt.Errorf("error getting ranking ranges: %w", err)
	}

	return ranges, nil
}

// ScoreRanges returns min/max/avg for every quality metric.
func (r *UniversityRepository) ScoreRanges(ctx context.Context) (*models.ScoreRanges, error) {
	columns := make([]string, 0, 18)
	for _, metric := range []string{
		"overall_quality", "academic_rigor", "openness",
		"cultural_diversity", "student_life", "campus_safety",
	} {
		columns = append(columns,
			"MIN("+metric+")",
			"MAX("+metric+")",
			"ROUND(AVG("+metric+")::numeric, 2)::float8",
		)
	}

	sql, args, err := r.sb.Select(columns...).
		From("universities").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building score ranges SQL")
		return nil, fmt.Errorf("failed to build score ranges query: %w", err)
	}

	ranges := &models.ScoreRanges{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&ranges.OverallQuality.Min, &ranges.OverallQuality.Max, &ranges.OverallQuality.Avg,
		&ranges.AcademicRigor.Min, &ranges.AcademicRigor.Max, &ranges.AcademicRigor.Avg,
		&ranges.Openness.Min, &ranges.Openness.Max, &ranges.Openness.Avg,
		&ranges.CulturalDiversity.Min, &ranges.CulturalDiversity.Max, &ranges.CulturalDiversity.Avg,
		&ranges.StudentLife.Min, &ranges.StudentLife.Max, &ranges.StudentLife.Avg,
		&ranges.CampusSafety.Min, &ranges.CampusSafety.Max, &ranges.CampusSafety.Avg,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning score ranges row")
		return nil, fmt.Errorf("error getting score ranges: %w", err)
	}

	return ranges, nil
}

// FacilityStats tallies the Yes/No/Partial/absent breakdown of each
// facility flag.
func (r *UniversityRepository) FacilityStats(ctx context.Context) (*models.FacilityStats, error) {
	columns := make([]string, 0, 12)
	for _, facility := range []string{"accommodation", "language_classes", "accessibility"} {
		columns = append(columns,
			"COUNT(*) FILTER (WHERE "+facility+" = 'Yes')",
			"COUNT(*) FILTER (WHERE "+facility+" = 'No')",
			"COUNT(*) FILTER (WHERE "+facility+" = 'Partial')",
			"COUNT(*) FILTER (WHERE "+facility+" IS NULL)",
		)
	}

	sql, args, err := r.sb.Select(columns...).
		From("universities").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building facility stats SQL")
		return nil, fmt.Errorf("failed to build facility stats query: %w", err)
	}

	stats := &models.FacilityStats{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&stats.Accommodation.Yes, &stats.Accommodation.No, &stats.Accommodation.Partial, &stats.Accommodation.Unknown,
		&stats.LanguageClasses.Yes, &stats.LanguageClasses.No, &stats.LanguageClasses.Partial, &stats.LanguageClasses.Unknown,
		&stats.Accessibility.Yes, &stats.Accessibility.No, &stats.Accessibility.Partial, &stats.Accessibility.Unknown,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning facility stats row")
		return nil, fmt.Errorf("error getting facility stats: %w", err)
	}

	return stats, nil
}
