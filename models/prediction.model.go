package models

import (
	"gorm.io/gorm"
)

// Categorical vocabularies accepted by the predictor. These mirror the
// categories the regression model was trained on and never change without a
// matching artifact release.
var (
	Genders            = []string{"female", "male"}
	RaceEthnicities    = []string{"group A", "group B", "group C", "group D", "group E"}
	ParentalEducations = []string{
		"bachelor's degree", "some college", "master's degree",
		"associate's degree", "high school", "some high school",
	}
	LunchTypes    = []string{"standard", "free/reduced"}
	TestPrepTypes = []string{"none", "completed"}
)

// Prediction is one submitted prediction: the raw form inputs plus the
// derived subject scores. The score columns are nullable because rows written
// under earlier schema versions predate them; absence means "not yet
// backfilled", never zero.
type Prediction struct {
	gorm.Model
	Username string `gorm:"index;not null" json:"username"`

	Gender            string `gorm:"not null" json:"gender"`
	RaceEthnicity     string `gorm:"not null" json:"raceEthnicity"`
	ParentalEducation string `gorm:"not null" json:"parentalEducation"`
	Lunch             string `gorm:"not null" json:"lunch"`
	TestPrep          string `gorm:"not null" json:"testPrep"`
	ReadingScore      int    `gorm:"not null" json:"readingScore"`
	WritingScore      int    `gorm:"not null" json:"writingScore"`

	Math           *float64 `gorm:"default:NULL" json:"math"`
	Science        *float64 `gorm:"default:NULL" json:"science"`
	Computer       *float64 `gorm:"default:NULL" json:"computer"`
	English        *float64 `gorm:"default:NULL" json:"english"`
	OverallAverage *float64 `gorm:"default:NULL" json:"overallAverage"`

	// Approximate marks rows whose scores were backfilled at read time from
	// the reading/writing inputs alone. Never persisted.
	Approximate bool `gorm:"-" json:"approximate"`
}

func (Prediction) TableName() string { return "predictions" }

// HasScores reports whether every derived score column is present.
func (p Prediction) HasScores() bool {
	return p.Math != nil && p.Science != nil && p.Computer != nil &&
		p.English != nil && p.OverallAverage != nil
}

// Dimension returns the value of a categorical grouping dimension, or ""
// if the name is not a groupable column.
func (p Prediction) Dimension(name string) string {
	switch name {
	case "gender":
		return p.Gender
	case "race_ethnicity":
		return p.RaceEthnicity
	case "parental_education":
		return p.ParentalEducation
	case "lunch":
		return p.Lunch
	case "test_prep":
		return p.TestPrep
	}
	return ""
}
