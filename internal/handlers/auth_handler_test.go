package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"fluxo/internal/config"
	apperrors "fluxo/internal/errors"
	"fluxo/internal/middleware"
	"fluxo/internal/models"
	"fluxo/internal/services"
	"fluxo/internal/validator"
)

const testUserID = "0190a6c4-0000-7000-8000-000000000001"

// --- mock services ---

type mockUserService struct {
	createUserFn            func(email, password, name string) (*models.User, error)
	getUserByEmailFn        func(email string) (*models.User, error)
	getUserByIDFn           func(id string) (*models.User, error)
	verifyPasswordFn        func(user *models.User, password string) bool
	attemptLoginFn          func(email, password string) (*models.User, error)
	storeRefreshTokenHashFn func(userID, tokenHash string) error
	getRefreshTokenHashFn   func(userID string) (string, error)
}

func (m *mockUserService) CreateUser(email, password, name string) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(email, password, name)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(email)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{Base: models.Base{ID: id}}, nil
}

func (m *mockUserService) VerifyPassword(user *models.User, password string) bool {
	if m.verifyPasswordFn != nil {
		return m.verifyPasswordFn(user, password)
	}
	return true
}

func (m *mockUserService) AttemptLogin(email, password string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) StoreRefreshTokenHash(userID, tokenHash string) error {
	if m.storeRefreshTokenHashFn != nil {
		return m.storeRefreshTokenHashFn(userID, tokenHash)
	}
	return nil
}

func (m *mockUserService) GetRefreshTokenHash(userID string) (string, error) {
	if m.getRefreshTokenHashFn != nil {
		return m.getRefreshTokenHashFn(userID)
	}
	return "", nil
}

var _ services.UserServicer = (*mockUserService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
	config.Set(&config.Config{JWTSecret: "test-secret", JWTExpirationDur: 15 * time.Minute})
}

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.POST("/auth/refresh", handler.Refresh)
	r.POST("/auth/logout", injectUserID(testUserID), handler.Logout)
	r.GET("/me", injectUserID(testUserID), handler.GetMe)
	return r
}

func injectUserID(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uid)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- tests ---

func TestAuthHandler_Register(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		userSvc := &mockUserService{
			createUserFn: func(email, _, name string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: testUserID}, Email: email, Name: name}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc))

		rec := doRequest(r, "POST", "/auth/register",
			`{"email":"test@example.com","password":"password123","name":"Ana"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["access_token"] == nil || result["access_token"] == "" {
			t.Error("expected non-empty access_token")
		}
		if result["refresh_token"] == nil || result["refresh_token"] == "" {
			t.Error("expected non-empty refresh_token")
		}
		user := result["user"].(map[string]interface{})
		if user["name"] != "Ana" {
			t.Errorf("expected name Ana, got %v", user["name"])
		}
	})

	t.Run("returns 400 on missing email", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}))

		rec := doRequest(r, "POST", "/auth/register", `{"password":"password123"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on short password", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}))

		rec := doRequest(r, "POST", "/auth/register", `{"email":"test@example.com","password":"short"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on duplicate email", func(t *testing.T) {
		userSvc := &mockUserService{
			createUserFn: func(_, _, _ string) (*models.User, error) {
				return nil, apperrors.ErrDuplicateEmail
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc))

		rec := doRequest(r, "POST", "/auth/register", `{"email":"dup@example.com","password":"password123"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_EMAIL")
	})

	t.Run("stores refresh token hash", func(t *testing.T) {
		var storedHash string
		userSvc := &mockUserService{
			createUserFn: func(email, _, _ string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: testUserID}, Email: email}, nil
			},
			storeRefreshTokenHashFn: func(_, hash string) error {
				storedHash = hash
				return nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc))

		rec := doRequest(r, "POST", "/auth/register", `{"email":"test@example.com","password":"password123"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if len(storedHash) != 64 {
			t.Errorf("expected SHA-256 hex digest (64 chars), got %d chars", len(storedHash))
		}
	})

	t.Run("returns 500 when token storage fails", func(t *testing.T) {
		userSvc := &mockUserService{
			createUserFn: func(email, _, _ string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: testUserID}, Email: email}, nil
			},
			storeRefreshTokenHashFn: func(_, _ string) error {
				return fmt.Errorf("db connection lost")
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc))

		rec := doRequest(r, "POST", "/auth/register", `{"email":"test@example.com","password":"password123"}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		userSvc := &mockUserService{
			attemptLoginFn: func(email, _ string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: testUserID}, Email: email}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc))

		rec := doRequest(r, "POST", "/auth/login", `{"email":"test@example.com","password":"password123"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if parseJSON(t, rec)["access_token"] == "" {
			t.Error("expected non-empty access_token")
		}
	})

	t.Run("returns 401 on invalid credentials", func(t *testing.T) {
		userSvc := &mockUserService{
			attemptLoginFn: func(_, _ string) (*models.User, error) {
				return nil, apperrors.ErrInvalidCredentials
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc))

		rec := doRequest(r, "POST", "/auth/login", `{"email":"test@example.com","password":"wrong"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
	})

	t.Run("returns 423 when locked", func(t *testing.T) {
		userSvc := &mockUserService{
			attemptLoginFn: func(_, _ string) (*models.User, error) {
				return nil, apperrors.ErrAccountLocked
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc))

		rec := doRequest(r, "POST", "/auth/login", `{"email":"test@example.com","password":"password123"}`)

		if rec.Code != http.StatusLocked {
			t.Fatalf("expected 423, got %d", rec.Code)
		}
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	user := &models.User{Base: models.Base{ID: testUserID}, Email: "ana@example.com"}
	refresh, err := middleware.GenerateRefreshToken(user)
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}

	t.Run("rotates a valid token", func(t *testing.T) {
		stored := middleware.HashToken(refresh)
		userSvc := &mockUserService{
			getRefreshTokenHashFn: func(_ string) (string, error) { return stored, nil },
			storeRefreshTokenHashFn: func(_, hash string) error {
				stored = hash
				return nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc))

		rec := doRequest(r, "POST", "/auth/refresh", fmt.Sprintf(`{"refresh_token":%q}`, refresh))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if parseJSON(t, rec)["refresh_token"] == "" {
			t.Error("expected a new refresh token")
		}
	})

	t.Run("rejects a revoked token", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}))

		rec := doRequest(r, "POST", "/auth/refresh", fmt.Sprintf(`{"refresh_token":%q}`, refresh))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects an access token", func(t *testing.T) {
		access, _ := middleware.GenerateAccessToken(user)
		r := setupAuthRouter(NewAuthHandler(&mockUserService{}))

		rec := doRequest(r, "POST", "/auth/refresh", fmt.Sprintf(`{"refresh_token":%q}`, access))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	var revokedFor string
	userSvc := &mockUserService{
		storeRefreshTokenHashFn: func(userID, hash string) error {
			if hash == "" {
				revokedFor = userID
			}
			return nil
		},
	}
	r := setupAuthRouter(NewAuthHandler(userSvc))

	rec := doRequest(r, "POST", "/auth/logout", "")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if revokedFor != testUserID {
		t.Errorf("expected refresh token revoked for %s, got %q", testUserID, revokedFor)
	}
}

func TestAuthHandler_GetMe(t *testing.T) {
	t.Run("returns the user", func(t *testing.T) {
		userSvc := &mockUserService{
			getUserByIDFn: func(id string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: id}, Email: "ana@example.com"}, nil
			},
		}
		r := setupAuthRouter(NewAuthHandler(userSvc))

		rec := doRequest(r, "GET", "/me", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		user := parseJSON(t, rec)["user"].(map[string]interface{})
		if user["id"] != testUserID {
			t.Errorf("expected id %s, got %v", testUserID, user["id"])
		}
	})

	t.Run("returns 401 without user", func(t *testing.T) {
		r := gin.New()
		r.GET("/me", NewAuthHandler(&mockUserService{}).GetMe)

		rec := doRequest(r, "GET", "/me", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
