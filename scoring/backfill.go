package scoring

import (
	"scoremate/models"
	"scoremate/utils"
)

// ApproximateSet estimates a score set from the reading/writing inputs alone.
// Legacy rows predate storing enough context to re-run the real model, so
// math is approximated as half the input average; the secondary formulas are
// the same ones the live predictor uses. Lower fidelity than a modeled score,
// hence Approximate.
func ApproximateSet(reading, writing int) ScoreSet {
	math := utils.Round2(float64(reading+writing) / 2 * 0.5)
	set := Derive(math, reading, writing)
	set.Approximate = true
	return set
}

// Backfill fills the derived score columns of any record missing them, in
// memory only. It returns the number of records it touched. Durable storage
// is never written: the same rows are recomputed fresh on every read, which
// also makes the operation idempotent.
func Backfill(records []models.Prediction) int {
	filled := 0
	for i := range records {
		if records[i].HasScores() {
			continue
		}
		set := ApproximateSet(records[i].ReadingScore, records[i].WritingScore)
		records[i].Math = &set.Math
		records[i].Science = &set.Science
		records[i].Computer = &set.Computer
		records[i].English = &set.English
		records[i].OverallAverage = &set.OverallAverage
		records[i].Approximate = true
		filled++
	}
	return filled
}
