package reporting

import (
	"testing"

	"scoremate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(math, science, computer, english, overall float64, approx bool) models.Prediction {
	return models.Prediction{
		Gender:            "female",
		RaceEthnicity:     "group B",
		ParentalEducation: "bachelor's degree",
		Lunch:             "standard",
		TestPrep:          "none",
		ReadingScore:      70,
		WritingScore:      68,
		Math:              &math,
		Science:           &science,
		Computer:          &computer,
		English:           &english,
		OverallAverage:    &overall,
		Approximate:       approx,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	assert.Zero(t, s.Count)
	assert.Nil(t, s.Means)
	assert.Nil(t, s.Maxes)
}

func TestSummarize(t *testing.T) {
	records := []models.Prediction{
		record(80, 70, 60, 90, 75, false),
		record(60, 90, 80, 70, 75, true),
	}

	s := Summarize(records)

	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 1, s.ApproximateCount)
	assert.Equal(t, 70.0, s.Means["math"])
	assert.Equal(t, 80.0, s.Means["science"])
	assert.Equal(t, 80.0, s.Maxes["math"])
	assert.Equal(t, 90.0, s.Maxes["science"])
	assert.Equal(t, 75.0, s.Means["overall"])
}

func TestSeriesKeepsInsertionOrder(t *testing.T) {
	records := []models.Prediction{
		record(10, 20, 30, 40, 25, false),
		record(50, 60, 70, 80, 65, false),
	}

	series := Series(records)

	assert.Equal(t, []float64{10, 50}, series["math"])
	assert.Equal(t, []float64{40, 80}, series["english"])
	assert.Equal(t, []float64{25, 65}, series["overall"])
}

func TestGroupAverage(t *testing.T) {
	a := record(0, 0, 0, 0, 80, false)
	a.ParentalEducation = "high school"
	b := record(0, 0, 0, 0, 60, false)
	b.ParentalEducation = "high school"
	c := record(0, 0, 0, 0, 90, false)
	c.ParentalEducation = "master's degree"

	groups, err := GroupAverage([]models.Prediction{a, b, c}, "parental_education")
	require.NoError(t, err)

	assert.Equal(t, 70.0, groups["high school"])
	assert.Equal(t, 90.0, groups["master's degree"])
}

func TestGroupAverageUnknownDimension(t *testing.T) {
	_, err := GroupAverage(nil, "favorite_color")
	require.Error(t, err)
}

func TestBestSubject(t *testing.T) {
	s := Summarize([]models.Prediction{
		record(70, 85, 80, 75, 77.5, false),
	})

	subject, mean := BestSubject(s)
	assert.Equal(t, "science", subject)
	assert.Equal(t, 85.0, mean)
}

func TestAnswerSubjectQuestions(t *testing.T) {
	s := Summarize([]models.Prediction{
		record(70, 85, 80, 75, 77.5, false),
	})

	assert.Contains(t, Answer("What is my math score?", s), "math")
	assert.Contains(t, Answer("how did SCIENCE go", s), "science")
	assert.Contains(t, Answer("my computer prediction", s), "computer")
	assert.Contains(t, Answer("english?", s), "english")
}

func TestAnswerBestAndAverage(t *testing.T) {
	s := Summarize([]models.Prediction{
		record(70, 85, 80, 75, 77.5, false),
	})

	assert.Contains(t, Answer("which subject am I best at?", s), "science")
	assert.Contains(t, Answer("what's my average?", s), "77.50")
}

func TestAnswerFallback(t *testing.T) {
	s := Summarize([]models.Prediction{
		record(70, 85, 80, 75, 77.5, false),
	})

	assert.Equal(t, HelpMessage, Answer("tell me a joke", s))
}

func TestAnswerNoData(t *testing.T) {
	assert.Equal(t, NoDataMessage, Answer("math", Summary{}))
}
