// Package reporting computes the read-side views over a user's prediction
// history: dashboard aggregates, chart series, and the chatbot answers.
// All functions expect records that have already been backfilled, so every
// derived score column is present.
package reporting

import (
	"fmt"

	"scoremate/models"
	"scoremate/utils"
)

// Subjects lists the reportable score columns in display order.
var Subjects = []string{"math", "science", "computer", "english", "overall"}

// Dimensions lists the categorical columns histories can be grouped by.
var Dimensions = []string{"gender", "race_ethnicity", "parental_education", "lunch", "test_prep"}

// Summary is the aggregate view of one user's history. Count 0 means "no
// data": Means and Maxes are nil and no statistics were computed.
type Summary struct {
	Count            int                `json:"count"`
	ApproximateCount int                `json:"approximateCount"`
	Means            map[string]float64 `json:"means,omitempty"`
	Maxes            map[string]float64 `json:"maxes,omitempty"`
}

func subjectValue(p models.Prediction, subject string) float64 {
	switch subject {
	case "math":
		return *p.Math
	case "science":
		return *p.Science
	case "computer":
		return *p.Computer
	case "english":
		return *p.English
	case "overall":
		return *p.OverallAverage
	}
	return 0
}

// Summarize computes count, per-subject mean and per-subject maximum.
// An empty record set short-circuits to a zero-count summary so no statistic
// is ever taken over zero rows.
func Summarize(records []models.Prediction) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	s := Summary{
		Count: len(records),
		Means: make(map[string]float64, len(Subjects)),
		Maxes: make(map[string]float64, len(Subjects)),
	}
	for _, rec := range records {
		if rec.Approximate {
			s.ApproximateCount++
		}
	}

	for _, subject := range Subjects {
		sum := 0.0
		max := subjectValue(records[0], subject)
		for _, rec := range records {
			v := subjectValue(rec, subject)
			sum += v
			if v > max {
				max = v
			}
		}
		s.Means[subject] = utils.Round2(sum / float64(len(records)))
		s.Maxes[subject] = max
	}
	return s
}

// Series returns each subject's scores in insertion order, ready to feed a
// trend chart.
func Series(records []models.Prediction) map[string][]float64 {
	series := make(map[string][]float64, len(Subjects))
	for _, subject := range Subjects {
		points := make([]float64, 0, len(records))
		for _, rec := range records {
			points = append(points, subjectValue(rec, subject))
		}
		series[subject] = points
	}
	return series
}

// GroupAverage buckets records by a categorical dimension and averages the
// overall score per bucket.
func GroupAverage(records []models.Prediction, by string) (map[string]float64, error) {
	valid := false
	for _, d := range Dimensions {
		if d == by {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("unknown dimension %q", by)
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, rec := range records {
		key := rec.Dimension(by)
		sums[key] += *rec.OverallAverage
		counts[key]++
	}

	averages := make(map[string]float64, len(sums))
	for key, sum := range sums {
		averages[key] = utils.Round2(sum / float64(counts[key]))
	}
	return averages, nil
}

// BestSubject returns the subject with the highest mean score. Overall is a
// composite, not a subject, so it is excluded.
func BestSubject(s Summary) (string, float64) {
	best := ""
	bestMean := 0.0
	for _, subject := range Subjects {
		if subject == "overall" {
			continue
		}
		if mean, ok := s.Means[subject]; ok && (best == "" || mean > bestMean) {
			best = subject
			bestMean = mean
		}
	}
	return best, bestMean
}
