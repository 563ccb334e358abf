package predictionController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"scoremate/config"
	"scoremate/database"
	"scoremate/middleware"
	"scoremate/ml"
	"scoremate/models"
	"scoremate/routers/predictionRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubModel installs an artifact bundle whose raw prediction is always the
// given intercept.
func stubModel(intercept float64) {
	pre := &ml.Preprocessor{
		Version: "test",
		Categorical: []ml.CategoricalColumn{
			{Name: "gender", Categories: models.Genders},
			{Name: "race_ethnicity", Categories: models.RaceEthnicities},
			{Name: "parental_level_of_education", Categories: models.ParentalEducations},
			{Name: "lunch", Categories: models.LunchTypes},
			{Name: "test_preparation_course", Categories: models.TestPrepTypes},
		},
		Numeric: ml.NumericBlock{
			Fields: []string{"reading_score", "writing_score", "total_score", "average", "placeholder"},
			Means:  make([]float64, 5),
			Scales: []float64{1, 1, 1, 1, 1},
		},
	}
	reg := &ml.Regressor{
		Version:      "test",
		Intercept:    intercept,
		Coefficients: make([]float64, pre.VectorWidth()),
	}
	ml.Model = ml.Bundle{Preprocessor: pre, Regressor: reg, Version: "test"}
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:   "test-secret",
		TokenTTL: 1,
	}
	stubModel(60)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	predictionRoutes.SetupPredictionRoutes(app)
	return app
}

func tokenFor(t *testing.T, username string) string {
	t.Helper()
	token, err := middleware.GenerateJWT(1, username)
	require.NoError(t, err)
	return token
}

func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope
}

func validBody() fiber.Map {
	return fiber.Map{
		"gender":            "female",
		"raceEthnicity":     "group B",
		"parentalEducation": "bachelor's degree",
		"lunch":             "standard",
		"testPrep":          "none",
		"readingScore":      70,
		"writingScore":      68,
	}
}

func TestPredictPersistsRecord(t *testing.T) {
	app := setupApp(t)

	resp := request(t, app, http.MethodPost, "/predict/", tokenFor(t, "amy"), validBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var rec models.Prediction
	require.NoError(t, database.Database.Db.Where("username = ?", "amy").First(&rec).Error)
	require.True(t, rec.HasScores())

	// intercept 60: science=(60+70)/2+2, computer=(60+68)/2+2, english=(70+68)/2+1
	assert.Equal(t, 60.0, *rec.Math)
	assert.Equal(t, 67.0, *rec.Science)
	assert.Equal(t, 66.0, *rec.Computer)
	assert.Equal(t, 70.0, *rec.English)
	assert.Equal(t, 65.75, *rec.OverallAverage)
}

func TestPredictRejectsBadInput(t *testing.T) {
	app := setupApp(t)

	body := validBody()
	body["lunch"] = "premium"
	resp := request(t, app, http.MethodPost, "/predict/", tokenFor(t, "amy"), body)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Prediction{}).Count(&count)
	assert.Zero(t, count)
}

func TestPredictRequiresToken(t *testing.T) {
	app := setupApp(t)

	resp := request(t, app, http.MethodPost, "/predict/", "", validBody())
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestHistoryScopedToUser(t *testing.T) {
	app := setupApp(t)

	require.Equal(t, fiber.StatusCreated,
		request(t, app, http.MethodPost, "/predict/", tokenFor(t, "amy"), validBody()).StatusCode)
	require.Equal(t, fiber.StatusCreated,
		request(t, app, http.MethodPost, "/predict/", tokenFor(t, "bob"), validBody()).StatusCode)

	resp := request(t, app, http.MethodGet, "/predict/history", tokenFor(t, "amy"), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeEnvelope(t, resp)["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["total"])
	predictions := data["predictions"].([]interface{})
	require.Len(t, predictions, 1)
	assert.Equal(t, "amy", predictions[0].(map[string]interface{})["username"])
}

func TestHistoryBackfillsLegacyRows(t *testing.T) {
	app := setupApp(t)

	legacy := models.Prediction{
		Username:          "amy",
		Gender:            "female",
		RaceEthnicity:     "group B",
		ParentalEducation: "high school",
		Lunch:             "standard",
		TestPrep:          "none",
		ReadingScore:      80,
		WritingScore:      90,
	}
	require.NoError(t, database.Database.Db.Create(&legacy).Error)

	resp := request(t, app, http.MethodGet, "/predict/history", tokenFor(t, "amy"), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeEnvelope(t, resp)["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["backfilled"])

	rec := data["predictions"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, true, rec["approximate"])
	assert.Equal(t, 42.5, rec["math"])
	assert.Equal(t, 65.0, rec["overallAverage"])

	// Read-time only: the stored row still has no derived scores.
	var stored models.Prediction
	require.NoError(t, database.Database.Db.First(&stored, legacy.ID).Error)
	assert.False(t, stored.HasScores())
}
