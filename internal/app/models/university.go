package models

import "time"

// University represents one university record with its survey-derived
// quality metrics. Optional fields are pointers so that an absent value
// stays distinguishable from a zero: a nil QSRank means "unranked", a nil
// metric means "no survey data", never 0.
type University struct {
	ID                int64     `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	City              *string   `json:"city,omitempty" db:"city"`
	Country           *string   `json:"country,omitempty" db:"country"`
	QSRank            *int      `json:"qsRank,omitempty" db:"qs_rank"`
	OverallQuality    *float64  `json:"overallQuality,omitempty" db:"overall_quality"`
	AcademicRigor     *float64  `json:"academicRigor,omitempty" db:"academic_rigor"`
	Openness          *float64  `json:"openness,omitempty" db:"openness"`
	CulturalDiversity *float64  `json:"culturalDiversity,omitempty" db:"cultural_diversity"`
	StudentLife       *float64  `json:"studentLife,omitempty" db:"student_life"`
	CampusSafety      *float64  `json:"campusSafety,omitempty" db:"campus_safety"`
	Accommodation     *string   `json:"accommodation,omitempty" db:"accommodation"`
	Language          *string   `json:"language,omitempty" db:"language"`
	LanguageClasses   *string   `json:"languageClasses,omitempty" db:"language_classes"`
	Accessibility     *string   `json:"accessibility,omitempty" db:"accessibility"`
	ResponseCount     int       `json:"responseCount" db:"response_count"`
	LastUpdated       time.Time `json:"lastUpdated" db:"last_updated"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
}
