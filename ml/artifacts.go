// Package ml loads the trained regression artifacts and exposes the
// transform/predict contract the scoring pipeline is built against. The
// artifacts are opaque to the rest of the application: a preprocessor that
// turns a feature record into a numeric vector, and a regressor that turns
// that vector into a single raw score. Both are loaded once at startup and
// treated as read-only afterwards, so concurrent requests share them freely.
package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrModelInvocation wraps any failure inside the transform or predict call.
// Input validation upstream should make these unreachable in practice.
var ErrModelInvocation = errors.New("model invocation failed")

// FeatureRecord is the fixed input schema of the preprocessor. TotalScore,
// Average and Placeholder are engineered fields the assembler fills in;
// Placeholder is always 0 and exists only because the model was trained with
// that column present.
type FeatureRecord struct {
	Gender            string
	RaceEthnicity     string
	ParentalEducation string
	Lunch             string
	TestPrep          string
	ReadingScore      float64
	WritingScore      float64
	TotalScore        float64
	Average           float64
	Placeholder       float64
}

// Bundle pairs a preprocessor with the regressor it was fitted alongside.
type Bundle struct {
	Preprocessor *Preprocessor
	Regressor    *Regressor
	Version      string
}

// Model holds the process-wide artifact bundle, set once by LoadArtifacts.
var Model Bundle

// LoadArtifacts reads preprocessor.json and model.json from dir and installs
// them as the process-wide bundle. Any failure here is a startup-fatal
// condition for the caller: no prediction request can be served without both
// artifacts.
func LoadArtifacts(dir string) error {
	pre := &Preprocessor{}
	if err := readArtifact(filepath.Join(dir, "preprocessor.json"), pre); err != nil {
		return fmt.Errorf("load preprocessor: %w", err)
	}
	reg := &Regressor{}
	if err := readArtifact(filepath.Join(dir, "model.json"), reg); err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	// Artifacts are versioned together; a mismatched pair means a partial
	// deployment and must not serve predictions.
	if pre.Version != reg.Version {
		return fmt.Errorf("artifact version mismatch: preprocessor %q vs model %q", pre.Version, reg.Version)
	}
	if len(reg.Coefficients) != pre.VectorWidth() {
		return fmt.Errorf("artifact shape mismatch: model expects %d features, preprocessor emits %d",
			len(reg.Coefficients), pre.VectorWidth())
	}

	Model = Bundle{Preprocessor: pre, Regressor: reg, Version: reg.Version}
	return nil
}

func readArtifact(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
