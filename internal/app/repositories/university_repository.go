package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/deniz/uniscope/internal/app/models"
	"github.com/deniz/uniscope/internal/pkg/apperrors"
	"github.com/deniz/uniscope/internal/pkg/helpers"
	"github.com/deniz/uniscope/internal/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// University error types
var (
	// ErrUniversityNotFound is returned when a university is not found.
	ErrUniversityNotFound = apperrors.ErrUniversityNotFound // Use shared sentinel
	// ErrUniversityAlreadyExists is returned when a university with the same name and country exists.
	ErrUniversityAlreadyExists = apperrors.ErrUniversityAlreadyExists // Use shared sentinel
)

// universityColumns is the shared select list. Scan order must match
// scanUniversity.
var universityColumns = []string{
	"id", "name", "city", "country", "qs_rank",
	"overall_quality", "academic_rigor", "openness", "cultural_diversity",
	"student_life", "campus_safety",
	"accommodation", "language", "language_classes", "accessibility",
	"response_count", "last_updated", "created_at",
}

// listSortColumns whitelists sortBy values before they reach ORDER BY.
var listSortColumns = map[string]bool{
	"name":               true,
	"city":               true,
	"country":            true,
	"qs_rank":            true,
	"overall_quality":    true,
	"academic_rigor":     true,
	"cultural_diversity": true,
	"student_life":       true,
	"campus_safety":      true,
}

// ListOptions narrows and orders the List query. Zero values mean no
// filter; an unknown SortBy falls back to the default rank order.
type ListOptions struct {
	Search    string
	Country   string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// orderBy builds the ORDER BY clauses for the options. Nullable columns
// sort NULLS LAST so unranked or unscored records trail, and id keeps the
// order deterministic across equal values.
func (opts ListOptions) orderBy() []string {
	column := "qs_rank"
	if listSortColumns[opts.SortBy] {
		column = opts.SortBy
	}
	direction := "ASC"
	if strings.EqualFold(opts.SortOrder, "desc") {
		direction = "DESC"
	}
	return []string{
		fmt.Sprintf("%s %s NULLS LAST", column, direction),
		"id ASC",
	}
}

// UniversityRepository handles university database operations
type UniversityRepository struct {
	db *pgxpool.Pool
	// Use squirrel instance with placeholder format
	sb squirrel.StatementBuilderType
}

// NewUniversityRepository creates a new UniversityRepository
func NewUniversityRepository(db *pgxpool.Pool) *UniversityRepository {
	return &UniversityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // 23505 is unique_violation
}

// scanUniversity scans one row in universityColumns order.
func scanUniversity(row pgx.Row) (*models.University, error) {
	university := &models.University{}
	err := row.Scan(
		&university.ID, &university.Name, &university.City, &university.Country, &university.QSRank,
		&university.OverallQuality, &university.AcademicRigor, &university.Openness, &university.CulturalDiversity,
		&university.StudentLife, &university.CampusSafety,
		&university.Accommodation, &university.Language, &university.LanguageClasses, &university.Accessibility,
		&university.ResponseCount, &university.LastUpdated, &university.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return university, nil
}

// Create creates a new university
func (r *UniversityRepository) Create(ctx context.Context, university *models.University) (int64, error) {
	sql, args, err := r.sb.Insert("universities").
		Columns(
			"name", "city", "country", "qs_rank",
			"overall_quality", "academic_rigor", "openness", "cultural_diversity",
			"student_life", "campus_safety",
			"accommodation", "language", "language_classes", "accessibility",
			"response_count",
		).
		Values(
			university.Name, university.City, university.Country, university.QSRank,
			university.OverallQuality, university.AcademicRigor, university.Openness, university.CulturalDiversity,
			university.StudentLife, university.CampusSafety,
			university.Accommodation, university.Language, university.LanguageClasses, university.Accessibility,
			university.ResponseCount,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create university SQL")
		return 0, fmt.Errorf("failed to build create university query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, ErrUniversityAlreadyExists
		}
		logger.Error().Err(err).Str("name", university.Name).Msg("Error executing create university query")
		return 0, fmt.Errorf("error creating university: %w", err)
	}

	return id, nil
}

// GetByID retrieves a university by ID
func (r *UniversityRepository) GetByID(ctx context.Context, id int64) (*models.University, error) {
	sql, args, err := r.sb.Select(universityColumns...).
		From("universities").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get university by ID SQL")
		return nil, fmt.Errorf("failed to build get university query: %w", err)
	}

	university, err := scanUniversity(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUniversityNotFound
		}
		logger.Error().Err(err).Int64("universityID", id).Msg("Error scanning university row")
		return nil, fmt.Errorf("error getting university by ID: %w", err)
	}

	return university, nil
}

// Update updates an existing university
func (r *UniversityRepository) Update(ctx context.Context, university *models.University) error {
	sql, args, err := r.sb.Update("universities").
		SetMap(map[string]interface{}{
			"name":               university.Name,
			"city":               university.City,
			"country":            university.Country,
			"qs_rank":            university.QSRank,
			"overall_quality":    university.OverallQuality,
			"academic_rigor":     university.AcademicRigor,
			"openness":           university.Openness,
			"cultural_diversity": university.CulturalDiversity,
			"student_life":       university.StudentLife,
			"campus_safety":      university.CampusSafety,
			"accommodation":      university.Accommodation,
			"language":           university.Language,
			"language_classes":   university.LanguageClasses,
			"accessibility":      university.Accessibility,
			"response_count":     university.ResponseCount,
			"last_updated":       squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": university.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update university SQL")
		return fmt.Errorf("failed to build update university query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			// Attempted to update to a name/country pair that already exists
			return ErrUniversityAlreadyExists
		}
		logger.Error().Err(err).Int64("universityID", university.ID).Msg("Error executing update university query")
		return fmt.Errorf("error updating university: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		// ID did not exist
		return ErrUniversityNotFound
	}

	return nil
}

// Delete deletes a university by ID
func (r *UniversityRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("universities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete university SQL")
		return fmt.Errorf("failed to build delete university query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("universityID", id).Msg("Error executing delete university query")
		return fmt.Errorf("error deleting university: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrUniversityNotFound
	}

	return nil
}

// List retrieves universities with filtering, sorting and pagination
func (r *UniversityRepository) List(ctx context.Context, opts ListOptions) ([]models.University, int64, error) {
	query := r.sb.Select(universityColumns...).
		From("universities")

	// Add filters
	if opts.Search != "" {
		query = query.Where("name ILIKE ?", "%"+opts.Search+"%")
	}
	if opts.Country != "" {
		query = query.Where(squirrel.Eq{"country": opts.Country})
	}

	query = query.OrderBy(opts.orderBy()...)

	// Add pagination
	offset, limit := helpers.CalculateOffsetLimit(opts.Page, opts.PageSize)
	query = query.Limit(uint64(limit)).Offset(offset)

	// Get total count in the same round trip
	countQuery := query.Column("COUNT(*) OVER()")
	sql, args, err := countQuery.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list universities SQL")
		return nil, 0, fmt.Errorf("failed to build list universities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list universities query")
		return nil, 0, fmt.Errorf("error querying universities: %w", err)
	}
	defer rows.Close()

	var universities []models.University
	var total int64

	for rows.Next() {
		var u models.University
		err := rows.Scan(
			&u.ID, &u.Name, &u.City, &u.Country, &u.QSRank,
			&u.OverallQuality, &u.AcademicRigor, &u.Openness, &u.CulturalDiversity,
			&u.StudentLife, &u.CampusSafety,
			&u.Accommodation, &u.Language, &u.LanguageClasses, &u.Accessibility,
			&u.ResponseCount, &u.LastUpdated, &u.CreatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning university row: %w", err)
		}
		universities = append(universities, u)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating university rows")
		return nil, 0, fmt.Errorf("error iterating university rows: %w", err)
	}

	return universities, total, nil
}

// ListAll retrieves every university ordered by id. The search and
// recommendation services take this as their per-request snapshot.
func (r *UniversityRepository) ListAll(ctx context.Context) ([]models.University, error) {
	sql, args, err := r.sb.Select(universityColumns...).
		From("universities").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list all universities SQL")
		return nil, fmt.Errorf("failed to build list all universities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list all universities query")
		return nil, fmt.Errorf("error querying universities: %w", err)
	}
	defer rows.Close()

	var universities []models.University
	for rows.Next() {
		university, err := scanUniversity(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning university row: %w", err)
		}
		universities = append(universities, *university)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating university rows")
		return nil, fmt.Errorf("error iterating university rows: %w", err)
	}

	return universities, nil
}

// Upsert creates the university or, when one with the same name and
// country already exists, updates it in place. Returns true when a new
// row was inserted. The country comparison uses IS NOT DISTINCT FROM so
// records without a country still deduplicate by name.
func (r *UniversityRepository) Upsert(ctx context.Context, university *models.University) (bool, error) {
	lookupSql, lookupArgs, err := r.sb.Select("id").
		From("universities").
		Where("name = ?", university.Name).
		Where("country IS NOT DISTINCT FROM ?", university.Country).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert lookup SQL")
		return false, fmt.Errorf("failed to build upsert lookup query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, lookupSql, lookupArgs...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		newID, err := r.Create(ctx, university)
		if err != nil {
			return false, err
		}
		university.ID = newID
		return true, nil
	}
	if err != nil {
		logger.Error().Err(err).Str("name", university.Name).Msg("Error looking up university for upsert")
		return false, fmt.Errorf("error looking up university for upsert: %w", err)
	}

	university.ID = id
	if err := r.Update(ctx, university); err != nil {
		return false, err
	}
	return false, nil
}

// Count returns the number of stored universities
func (r *UniversityRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("universities").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build count universities query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting universities")
		return 0, fmt.Errorf("error counting universities: %w", err)
	}

	return count, nil
}
