// Package scoring is the prediction pipeline: it assembles the raw form
// inputs into the model's feature schema, runs the regression artifacts, and
// derives the secondary subject scores.
package scoring

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"scoremate/ml"
	"scoremate/models"

	"github.com/go-playground/validator/v10"
)

// Input is the raw submission. The validate tags carry the fixed categorical
// vocabularies and the [0,100] score range; anything outside them is rejected
// before the predictor is reached.
type Input struct {
	Gender            string `json:"gender" validate:"required,oneof=female male"`
	RaceEthnicity     string `json:"raceEthnicity" validate:"required,oneof='group A' 'group B' 'group C' 'group D' 'group E'"`
	ParentalEducation string `json:"parentalEducation" validate:"required,edulevel"`
	Lunch             string `json:"lunch" validate:"required,oneof=standard free/reduced"`
	TestPrep          string `json:"testPrep" validate:"required,oneof=none completed"`
	ReadingScore      int    `json:"readingScore" validate:"min=0,max=100"`
	WritingScore      int    `json:"writingScore" validate:"min=0,max=100"`
}

// ValidationError rejects an input before it reaches the predictor. Fields
// maps each offending field to a message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid input: %s", strings.Join(names, ", "))
}

var validate = newValidator()

// newValidator registers the edulevel tag; "bachelor's degree" and friends
// carry apostrophes that oneof's quoting cannot express.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("edulevel", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, level := range models.ParentalEducations {
			if value == level {
				return true
			}
		}
		return false
	})
	return v
}

// ValidateInput checks an input against the categorical vocabularies and
// score ranges. Returns a *ValidationError listing every offending field.
func ValidateInput(in Input) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Gender":
			fields["gender"] = "Gender must be one of: female, male."
		case "RaceEthnicity":
			fields["raceEthnicity"] = "Race/ethnicity must be one of groups A-E."
		case "ParentalEducation":
			fields["parentalEducation"] = "Unrecognized parental education level."
		case "Lunch":
			fields["lunch"] = "Lunch must be standard or free/reduced."
		case "TestPrep":
			fields["testPrep"] = "Test preparation must be none or completed."
		case "ReadingScore":
			fields["readingScore"] = "Reading score must be between 0 and 100."
		case "WritingScore":
			fields["writingScore"] = "Writing score must be between 0 and 100."
		default:
			fields[fe.Field()] = "Invalid value."
		}
	}
	return &ValidationError{Fields: fields}
}

// AssembleFeatures validates an input and produces the exact feature record
// the model expects: the raw columns plus total_score, average and the
// zero-valued placeholder column the model was trained with. Pure function.
func AssembleFeatures(in Input) (ml.FeatureRecord, error) {
	if err := ValidateInput(in); err != nil {
		return ml.FeatureRecord{}, err
	}

	total := float64(in.ReadingScore + in.WritingScore)
	return ml.FeatureRecord{
		Gender:            in.Gender,
		RaceEthnicity:     in.RaceEthnicity,
		ParentalEducation: in.ParentalEducation,
		Lunch:             in.Lunch,
		TestPrep:          in.TestPrep,
		ReadingScore:      float64(in.ReadingScore),
		WritingScore:      float64(in.WritingScore),
		TotalScore:        total,
		Average:           total / 2,
		Placeholder:       0,
	}, nil
}
