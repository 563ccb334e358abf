package scoring

import (
	"scoremate/ml"
	"scoremate/utils"
)

// ScoreSet is the full derived output of one prediction.
type ScoreSet struct {
	Math           float64 `json:"math"`
	Science        float64 `json:"science"`
	Computer       float64 `json:"computer"`
	English        float64 `json:"english"`
	OverallAverage float64 `json:"overallAverage"`

	// Approximate is set when the scores came from the read-time backfill
	// formula instead of the regression model.
	Approximate bool `json:"approximate"`
}

// Derive computes the secondary subject scores from an already clamped and
// rounded math score plus the raw reading/writing inputs.
//
// Only math is clamped to [0,100]. The secondary formulas add fixed offsets
// to raw inputs and can mathematically exceed 100 for high scorers; they are
// intentionally left unclamped to match how the scores were defined.
func Derive(math float64, reading, writing int) ScoreSet {
	r := float64(reading)
	w := float64(writing)

	science := utils.Round2((math+r)/2 + 2)
	computer := utils.Round2((math+w)/2 + 2)
	english := utils.Round2((r+w)/2 + 1)
	overall := utils.Round2((math + science + computer + english) / 4)

	return ScoreSet{
		Math:           math,
		Science:        science,
		Computer:       computer,
		English:        english,
		OverallAverage: overall,
	}
}

// PredictScores runs the full pipeline for a raw input: assemble the feature
// record, invoke the model artifacts, clamp the raw prediction into [0,100],
// and derive the remaining subjects. Pure apart from the model calls, which
// are deterministic for a loaded artifact pair.
func PredictScores(bundle ml.Bundle, in Input) (ScoreSet, error) {
	rec, err := AssembleFeatures(in)
	if err != nil {
		return ScoreSet{}, err
	}

	vec, err := bundle.Preprocessor.Transform(rec)
	if err != nil {
		return ScoreSet{}, err
	}
	raw, err := bundle.Regressor.Predict(vec)
	if err != nil {
		return ScoreSet{}, err
	}

	math := utils.Round2(utils.Clamp(raw, 0, 100))
	return Derive(math, in.ReadingScore, in.WritingScore), nil
}
