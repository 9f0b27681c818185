package dto

import "github.com/deniz/uniscope/internal/app/models"

// CountryStatsResponse represents per-country aggregates over the dataset
type CountryStatsResponse struct {
	Countries []models.CountryStat `json:"countries"`
	Count     int                  `json:"count"`
}

// LanguageStat represents how many universities teach in a given language
type LanguageStat struct {
	Language string `json:"language" example:"English"`
	Count    int    `json:"count" example:"57"`
}

// LanguageStatsResponse represents the language breakdown of the dataset
type LanguageStatsResponse struct {
	Languages []LanguageStat `json:"languages"`
	Count     int            `json:"count"`
}

// HealthResponse reports service and database liveness
type HealthResponse struct {
	Status       string `json:"status" example:"ok"`
	Database     string `json:"database" example:"up"`
	Universities int64  `json:"universities" example:"120"`
}
