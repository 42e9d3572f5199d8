package authController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/ProfessorBrownBear/QuizVibe/config"
	authController "github.com/ProfessorBrownBear/QuizVibe/controllers/auth"
	"github.com/ProfessorBrownBear/QuizVibe/database"
	"github.com/ProfessorBrownBear/QuizVibe/middleware"
	"github.com/ProfessorBrownBear/QuizVibe/models"
	authRoutes "github.com/ProfessorBrownBear/QuizVibe/routers/authRoutes"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	config.LoadConfig()
	os.Exit(m.Run())
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	users := database.NewUserStore(db, bcrypt.MinCost)

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, authController.New(users))
	app.Get("/whoami", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": c.Locals("userId")})
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRegisterThenLogin(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/register", fiber.Map{"username": "alice", "password": "pw123"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "User registered", bodyString(t, resp))

	resp = postJSON(t, app, "/login", fiber.Map{"username": "alice", "password": "pw123"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.NotEmpty(t, result.Token)

	// The issued token must verify on protected routes
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/register", fiber.Map{"username": "alice", "password": "pw123"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/register", fiber.Map{"username": "alice", "password": "other"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Username already registered", bodyString(t, resp))
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/register", fiber.Map{"username": "alice", "password": "pw123"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/login", fiber.Map{"username": "alice", "password": "wrong"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := bodyString(t, resp)
	assert.Equal(t, "Invalid credentials", body)
	assert.NotContains(t, body, "token")
}

func TestLoginUnknownUser(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/login", fiber.Map{"username": "nobody", "password": "pw123"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", bodyString(t, resp))
}

func TestRegisterRequiresUsernameAndPassword(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/register", fiber.Map{"username": "alice"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, "/register", fiber.Map{"password": "pw123"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
