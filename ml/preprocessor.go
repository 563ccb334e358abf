package ml

import (
	"fmt"
)

// CategoricalColumn is one one-hot encoded column: its name in the training
// frame and the category order the encoder was fitted with.
type CategoricalColumn struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

// NumericBlock is the scaled numeric tail of the feature vector.
type NumericBlock struct {
	Fields []string  `json:"fields"`
	Means  []float64 `json:"means"`
	Scales []float64 `json:"scales"`
}

// Preprocessor mirrors the fitted column transformer: one-hot encoding for
// the categorical columns followed by standard scaling of the numeric ones.
type Preprocessor struct {
	Version     string              `json:"version"`
	Categorical []CategoricalColumn `json:"categorical"`
	Numeric     NumericBlock        `json:"numeric"`
}

// VectorWidth is the length of the vector Transform emits.
func (p *Preprocessor) VectorWidth() int {
	width := len(p.Numeric.Fields)
	for _, col := range p.Categorical {
		width += len(col.Categories)
	}
	return width
}

// Transform encodes a feature record into the numeric vector the regressor
// consumes. A category outside the fitted vocabulary or an unknown numeric
// field is a ErrModelInvocation: the encoder has no column for it.
func (p *Preprocessor) Transform(rec FeatureRecord) ([]float64, error) {
	vec := make([]float64, 0, p.VectorWidth())

	for _, col := range p.Categorical {
		value, err := rec.categoricalValue(col.Name)
		if err != nil {
			return nil, err
		}
		hot := -1
		for i, cat := range col.Categories {
			if cat == value {
				hot = i
				break
			}
		}
		if hot < 0 {
			return nil, fmt.Errorf("%w: unknown category %q for column %s", ErrModelInvocation, value, col.Name)
		}
		for i := range col.Categories {
			if i == hot {
				vec = append(vec, 1)
			} else {
				vec = append(vec, 0)
			}
		}
	}

	for i, field := range p.Numeric.Fields {
		value, err := rec.numericValue(field)
		if err != nil {
			return nil, err
		}
		scale := p.Numeric.Scales[i]
		if scale == 0 {
			scale = 1
		}
		vec = append(vec, (value-p.Numeric.Means[i])/scale)
	}

	return vec, nil
}

func (rec FeatureRecord) categoricalValue(column string) (string, error) {
	switch column {
	case "gender":
		return rec.Gender, nil
	case "race_ethnicity":
		return rec.RaceEthnicity, nil
	case "parental_level_of_education":
		return rec.ParentalEducation, nil
	case "lunch":
		return rec.Lunch, nil
	case "test_preparation_course":
		return rec.TestPrep, nil
	}
	return "", fmt.Errorf("%w: no categorical column %q in feature record", ErrModelInvocation, column)
}

func (rec FeatureRecord) numericValue(field string) (float64, error) {
	switch field {
	case "reading_score":
		return rec.ReadingScore, nil
	case "writing_score":
		return rec.WritingScore, nil
	case "total_score":
		return rec.TotalScore, nil
	case "average":
		return rec.Average, nil
	case "placeholder":
		return rec.Placeholder, nil
	}
	return 0, fmt.Errorf("%w: no numeric field %q in feature record", ErrModelInvocation, field)
}
