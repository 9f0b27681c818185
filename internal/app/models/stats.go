package models

// CountryStat aggregates the universities of a single country. Averages are
// nil when no university in the country has the metric; the top university
// is the best-ranked one and is nil when none are ranked.
type CountryStat struct {
	Country              string   `json:"country"`
	UniversityCount      int      `json:"universityCount"`
	AvgOverallQuality    *float64 `json:"avgOverallQuality,omitempty"`
	AvgAcademicRigor     *float64 `json:"avgAcademicRigor,omitempty"`
	AvgCulturalDiversity *float64 `json:"avgCulturalDiversity,omitempty"`
	AvgStudentLife       *float64 `json:"avgStudentLife,omitempty"`
	TopUniversity        *string  `json:"topUniversity,omitempty"`
	TopUniversityRank    *int     `json:"topUniversityRank,omitempty"`
}

// PlatformStats holds collection-wide totals. The averages cover only
// universities that carry all three survey metrics.
type PlatformStats struct {
	TotalUniversities    int      `json:"totalUniversities"`
	RankedUniversities   int      `json:"rankedUniversities"`
	Countries            int      `json:"countries"`
	WithFeedback         int      `json:"withFeedback"`
	AvgAcademicRigor     *float64 `json:"avgAcademicRigor,omitempty"`
	AvgCulturalDiversity *float64 `json:"avgCulturalDiversity,omitempty"`
	AvgStudentLife       *float64 `json:"avgStudentLife,omitempty"`
}

// RankDistribution counts ranked universities per bracket. Brackets are
// cumulative from the top (a rank-40 university counts in all four).
type RankDistribution struct {
	Top50  int `json:"top50"`
	Top100 int `json:"top100"`
	Top200 int `json:"top200"`
	Top500 int `json:"top500"`
}

// RankingRanges describes the observed QS rank spread of the dataset
type RankingRanges struct {
	MinRank      *int             `json:"minRank,omitempty"`
	MaxRank      *int             `json:"maxRank,omitempty"`
	TotalRanked  int              `json:"totalRanked"`
	Unranked     int              `json:"unranked"`
	Distribution RankDistribution `json:"distribution"`
}

// MetricRange holds the observed spread of one quality metric
type MetricRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
	Avg *float64 `json:"avg,omitempty"`
}

// ScoreRanges holds the spread of every quality metric
type ScoreRanges struct {
	OverallQuality    MetricRange `json:"overallQuality"`
	AcademicRigor     MetricRange `json:"academicRigor"`
	Openness          MetricRange `json:"openness"`
	CulturalDiversity MetricRange `json:"culturalDiversity"`
	StudentLife       MetricRange `json:"studentLife"`
	CampusSafety      MetricRange `json:"campusSafety"`
}

// FacilityBreakdown tallies one facility flag across all universities.
// Unknown counts records where the flag is absent.
type FacilityBreakdown struct {
	Yes     int `json:"yes"`
	No      int `json:"no"`
	Partial int `json:"partial"`
	Unknown int `json:"unknown"`
}

// FacilityStats tallies every facility flag
type FacilityStats struct {
	Accommodation   FacilityBreakdown `json:"accommodation"`
	LanguageClasses FacilityBreakdown `json:"languageClasses"`
	Accessibility   FacilityBreakdown `json:"accessibility"`
}
