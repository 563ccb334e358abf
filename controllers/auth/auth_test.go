package authController_test

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
	"scoremate/models"
	"scoremate/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:   "test-secret",
		TokenTTL: 1,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

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

func TestSignup(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"username": "amy",
		"password": "hunter22hunter22",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, database.Database.Db.Where("username = ?", "amy").First(&user).Error)
	assert.Equal(t, "hunter22hunter22", user.Password)
}

func TestSignupDuplicateUsername(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"username": "amy",
		"password": "hunter22hunter22",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Second registration is rejected and the stored credential is untouched.
	resp = postJSON(t, app, "/auth/signup", fiber.Map{
		"username": "amy",
		"password": "different-password",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var user models.User
	require.NoError(t, database.Database.Db.Where("username = ?", "amy").First(&user).Error)
	assert.Equal(t, "hunter22hunter22", user.Password)
}

func TestSignupValidation(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/auth/signup", fiber.Map{
		"username": "a",
		"password": "short",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	app := setupApp(t)
	postJSON(t, app, "/auth/signup", fiber.Map{
		"username": "amy",
		"password": "hunter22hunter22",
	})

	resp := postJSON(t, app, "/auth/login", fiber.Map{
		"username": "amy",
		"password": "hunter22hunter22",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)
	postJSON(t, app, "/auth/signup", fiber.Map{
		"username": "amy",
		"password": "hunter22hunter22",
	})

	resp := postJSON(t, app, "/auth/login", fiber.Map{
		"username": "amy",
		"password": "hunter22hunter23",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginUnknownUser(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/auth/login", fiber.Map{
		"username": "ghost",
		"password": "hunter22hunter22",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProfileRequiresToken(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProfile(t *testing.T) {
	app := setupApp(t)
	postJSON(t, app, "/auth/signup", fiber.Map{
		"username": "amy",
		"password": "hunter22hunter22",
	})
	resp := postJSON(t, app, "/auth/login", fiber.Map{
		"username": "amy",
		"password": "hunter22hunter22",
	})
	token := decodeEnvelope(t, resp)["data"].(map[string]interface{})["token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	profileResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, profileResp.StatusCode)

	user := decodeEnvelope(t, profileResp)["data"].(map[string]interface{})
	assert.Equal(t, "amy", user["username"])
	assert.Empty(t, user["password"])
}
