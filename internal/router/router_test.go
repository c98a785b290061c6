package router_test

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
	"fluxo/internal/ledger"
	"fluxo/internal/logger"
	"fluxo/internal/router"
	"fluxo/internal/testutil"
	"fluxo/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
	config.Set(&config.Config{
		JWTSecret:        "test-secret",
		JWTExpirationDur: 15 * time.Minute,
	})
}

// testApp holds the full application stack backed by an isolated in-memory SQLite.
type testApp struct {
	Router *gin.Engine
}

func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	groups := 0
	engine := router.New(db, router.Options{
		Quiet: true,
		Now:   func() time.Time { return now },
		Ledger: []ledger.Option{
			ledger.WithGroupIDs(func() string {
				groups++
				return fmt.Sprintf("group-%d", groups)
			}),
		},
	})
	return &testApp{Router: engine}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

// registerUser registers a new user and returns the access token, refresh token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"name":"Test"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]any)
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(string)
}

const rentEntry = `{
	"flow_type": "expense",
	"description": "Rent",
	"amount": "1.500,00",
	"date": "2024-01-05",
	"category": "Housing",
	"installment": false,
	"spend_type": "Fixed",
	"term": "with_end_date",
	"end_date": "2024-03-05"
}`

func TestHealth(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthFlow_RegisterLoginMeRefreshLogout(t *testing.T) {
	app := setupApp(t)

	access, refresh, userID := app.registerUser(t, "Flow@Test.com", "password123")
	if access == "" || refresh == "" || userID == "" {
		t.Fatal("expected tokens and a user id from registration")
	}

	rec := app.request("POST", "/api/v1/auth/login", `{"email":"flow@test.com","password":"password123"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	login := parseJSON(t, rec)
	loginRefresh := login["refresh_token"].(string)

	rec = app.request("GET", "/api/v1/me", "", login["access_token"].(string))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	user := parseJSON(t, rec)["user"].(map[string]any)
	if user["email"] != "flow@test.com" {
		t.Errorf("expected normalized email, got %v", user["email"])
	}

	rec = app.request("POST", "/api/v1/auth/refresh", fmt.Sprintf(`{"refresh_token":%q}`, loginRefresh), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh failed: %d %s", rec.Code, rec.Body.String())
	}
	refreshed := parseJSON(t, rec)
	newAccess := refreshed["access_token"].(string)
	newRefresh := refreshed["refresh_token"].(string)

	rec = app.request("POST", "/api/v1/auth/logout", "", newAccess)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/auth/refresh", fmt.Sprintf(`{"refresh_token":%q}`, newRefresh), "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthFlow_WrongPassword(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "wrong@test.com", "password123")

	rec := app.request("POST", "/api/v1/auth/login", `{"email":"wrong@test.com","password":"nope-nope"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "INVALID_CREDENTIALS" {
		t.Errorf("expected INVALID_CREDENTIALS, got %s", code)
	}
}

func TestProfileRoutes_RequireAuth(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/profiles/default/transactions", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestEntryFlow_CreateListSummary(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "entries@test.com", "password123")

	rec := app.request("POST", "/api/v1/profiles/default/transactions", rentEntry, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", rec.Code, rec.Body.String())
	}
	created := parseJSON(t, rec)
	if got := len(created["transactions"].([]any)); got != 3 {
		t.Fatalf("expected 3 monthly records, got %d", got)
	}
	notification := created["notification"].(map[string]any)
	if notification["level"] != "success" {
		t.Errorf("expected success notification, got %v", notification)
	}

	rec = app.request("GET", "/api/v1/profiles/default/transactions?month=2024-02", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
	}
	list := parseJSON(t, rec)
	data := list["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("expected 1 record in February, got %d", len(data))
	}
	record := data[0].(map[string]any)
	if record["amount"] != "-1500" {
		t.Errorf("expected amount -1500, got %v", record["amount"])
	}
	if record["paid"] != false {
		t.Errorf("expected later occurrences to be pending, got %v", record["paid"])
	}

	rec = app.request("GET", "/api/v1/profiles/default/reports/summary?month=2024-02", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)
	stats := summary["stats"].(map[string]any)
	if stats["pending_expense"] != "1500" {
		t.Errorf("expected February pending expense 1500, got %v", stats["pending_expense"])
	}
	if stats["carried_balance"] != "-1500" {
		t.Errorf("expected January rent carried over, got %v", stats["carried_balance"])
	}
	if summary["count"] != float64(1) {
		t.Errorf("expected count 1, got %v", summary["count"])
	}
}

func TestEntryFlow_ValidationError(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "invalid@test.com", "password123")

	rec := app.request("POST", "/api/v1/profiles/default/transactions",
		`{"flow_type":"expense","amount":"","date":"2024-01-05","category":"Food"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, rec); code != "INVALID_AMOUNT" {
		t.Errorf("expected INVALID_AMOUNT, got %s", code)
	}
}

func TestProfileIsolation(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "profiles@test.com", "password123")
	other, _, _ := app.registerUser(t, "other@test.com", "password123")

	rec := app.request("POST", "/api/v1/profiles/work/transactions", rentEntry, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", rec.Code, rec.Body.String())
	}

	for name, tc := range map[string]struct{ path, token string }{
		"other profile of the same user": {"/api/v1/profiles/default/transactions", token},
		"same profile of another user":   {"/api/v1/profiles/work/transactions", other},
	} {
		t.Run(name, func(t *testing.T) {
			rec := app.request("GET", tc.path, "", tc.token)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if got := parseJSON(t, rec)["total_items"]; got != float64(0) {
				t.Errorf("expected no records, got %v", got)
			}
		})
	}
}

func TestInvalidProfileID(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "badprofile@test.com", "password123")

	rec := app.request("GET", "/api/v1/profiles/bad.profile/transactions", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "INVALID_PROFILE" {
		t.Errorf("expected INVALID_PROFILE, got %s", code)
	}
}

func TestClearData_RequiresConfirmation(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "clear@test.com", "password123")

	app.request("POST", "/api/v1/profiles/default/transactions", rentEntry, token)

	rec := app.request("DELETE", "/api/v1/profiles/default/data", "", token)
	if rec.Code != http.StatusPreconditionRequired {
		t.Fatalf("expected 428, got %d: %s", rec.Code, rec.Body.String())
	}
	if code := errorCode(t, rec); code != "CONFIRMATION_REQUIRED" {
		t.Errorf("expected CONFIRMATION_REQUIRED, got %s", code)
	}

	rec = app.request("GET", "/api/v1/profiles/default/transactions", "", token)
	if got := parseJSON(t, rec)["total_items"]; got != float64(3) {
		t.Fatalf("expected records to survive an unconfirmed clear, got %v", got)
	}

	rec = app.request("DELETE", "/api/v1/profiles/default/data?confirm=true", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/profiles/default/transactions", "", token)
	if got := parseJSON(t, rec)["total_items"]; got != float64(0) {
		t.Errorf("expected no records after clear, got %v", got)
	}

	rec = app.request("GET", "/api/v1/profiles/default/activity", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("activity failed: %d %s", rec.Code, rec.Body.String())
	}
	if got := parseJSON(t, rec)["total_items"].(float64); got < 3 {
		t.Errorf("expected create, failed clear and clear in the activity log, got %v entries", got)
	}
}

func TestReports_DefaultToCurrentMonth(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "reports@test.com", "password123")

	app.request("POST", "/api/v1/profiles/default/transactions", rentEntry, token)

	rec := app.request("GET", "/api/v1/profiles/default/reports/summary", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)
	if summary["month"] != "2024-03" {
		t.Errorf("expected the current month 2024-03, got %v", summary["month"])
	}
	annual := summary["annual"].(map[string]any)
	if annual["expense"] != "4500" {
		t.Errorf("expected 2024 expense 4500, got %v", annual["expense"])
	}

	rec = app.request("GET", "/api/v1/profiles/default/reports/projection", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("projection failed: %d %s", rec.Code, rec.Body.String())
	}
	rows := parseJSON(t, rec)["projection"].([]any)
	if len(rows) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(rows))
	}
	first := rows[0].(map[string]any)
	if first["month"] != "2024-03" || first["fixed"] != "1500" {
		t.Errorf("expected March with fixed 1500 first, got %v", first)
	}
	if last := rows[11].(map[string]any); last["month"] != "2025-02" || last["fixed"] != "0" {
		t.Errorf("expected February 2025 with nothing scheduled last, got %v", last)
	}
}

func TestNames_AreAddressableOnDelete(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "names@test.com", "password123")
	base := "/api/v1/profiles/default"

	t.Run("category", func(t *testing.T) {
		rec := app.request("POST", base+"/categories", `{"flow_type":"expense","name":"Food/Drinks"}`, token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for a name with a slash, got %d: %s", rec.Code, rec.Body.String())
		}
		if code := errorCode(t, rec); code != "INVALID_INPUT" {
			t.Errorf("expected INVALID_INPUT, got %s", code)
		}

		rec = app.request("POST", base+"/categories", `{"flow_type":"expense","name":"Eating Out"}`, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create failed: %d %s", rec.Code, rec.Body.String())
		}
		rec = app.request("DELETE", base+"/categories/expense/Eating%20Out?confirm=true", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
		}

		rec = app.request("GET", base+"/categories", "", token)
		expense := parseJSON(t, rec)["categories"].(map[string]any)["expense"].([]any)
		for _, name := range expense {
			if name == "Eating Out" || name == "Food/Drinks" {
				t.Errorf("unexpected category %v after delete", name)
			}
		}
	})

	t.Run("bank", func(t *testing.T) {
		rec := app.request("POST", base+"/payment-methods", `{"name":"Itaú/Nubank"}`, token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for a name with a slash, got %d: %s", rec.Code, rec.Body.String())
		}

		rec = app.request("POST", base+"/payment-methods", `{"name":"Banco do Brasil"}`, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create failed: %d %s", rec.Code, rec.Body.String())
		}
		rec = app.request("DELETE", base+"/payment-methods/Banco%20do%20Brasil?confirm=true", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
		}

		rec = app.request("GET", base+"/payment-methods", "", token)
		methods := parseJSON(t, rec)["payment_methods"].(map[string]any)
		if credit := methods["credit"].([]any); len(credit) != 0 {
			t.Errorf("expected no cards left, got %v", credit)
		}
	})
}
