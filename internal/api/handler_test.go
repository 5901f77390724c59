package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"maintenance-dashboard-backend/config"
	"maintenance-dashboard-backend/internal/backend"
	"maintenance-dashboard-backend/internal/calendar"
	"maintenance-dashboard-backend/internal/model"
	"maintenance-dashboard-backend/internal/tenant"
)

type memKV struct {
	data map[string]string
}

func (m *memKV) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memKV) Remove(key string) error {
	delete(m.data, key)
	return nil
}

func setupRouter(t *testing.T) *gin.Engine {
	return setupRouterWithBackend(t, "http://127.0.0.1:0")
}

func setupRouterWithBackend(t *testing.T, backendURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.PushSubscription{}))

	tenants := tenant.NewStore(&memKV{data: make(map[string]string)})
	client := backend.NewClient(&config.BackendConfig{BaseURL: backendURL, TimeoutSeconds: 1})
	webpushOptions := &webpush.Options{VAPIDPublicKey: "test-public-key"}

	return NewRouter(&config.ServerConfig{RateLimitPerSec: 1000}, tenants, calendar.NewAggregator(), client, db, webpushOptions)
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListEnterprisesSeedsDemoData(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "GET", "/api/enterprises", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []model.Enterprise
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Entreprise Exemple 1", list[0].Name)
}

func TestSwitchEnterprise(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "POST", "/api/enterprises", map[string]any{"name": "Entreprise B", "city": "Lyon"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Enterprise
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(router, "PUT", "/api/enterprises/current", map[string]any{"id": created.ID})
	require.Equal(t, http.StatusOK, w.Code)
	var current model.Enterprise
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
	assert.Equal(t, created.ID, current.ID)

	// Unknown id is a 404 and leaves the selection alone.
	w = doJSON(router, "PUT", "/api/enterprises/current", map[string]any{"id": 999999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, "GET", "/api/enterprises/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
	assert.Equal(t, created.ID, current.ID)
}

func TestMachineCRUD(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "POST", "/api/machines", model.Machine{Name: "Tour CNC", Location: "Atelier B"})
	require.Equal(t, http.StatusCreated, w.Code)
	var m model.Machine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.NotZero(t, m.ID)

	m.Location = "Atelier C"
	w = doJSON(router, "PUT", fmt.Sprintf("/api/machines/%d", m.ID), m)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "DELETE", fmt.Sprintf("/api/machines/%d", m.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, "DELETE", fmt.Sprintf("/api/machines/%d", m.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, "DELETE", "/api/machines/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketStatusEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "POST", "/api/tickets", model.Ticket{Title: "Écran HS", Priority: model.PriorityLow})
	require.Equal(t, http.StatusCreated, w.Code)
	var tk model.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tk))
	assert.Equal(t, "open", tk.Status)

	// Skipping straight to resolved violates the lifecycle.
	w = doJSON(router, "PATCH", fmt.Sprintf("/api/tickets/%d/status", tk.ID), map[string]string{"status": "resolved"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(router, "PATCH", fmt.Sprintf("/api/tickets/%d/status", tk.ID), map[string]string{"status": "in_progress"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, "POST", fmt.Sprintf("/api/tickets/%d/comments", tk.ID), map[string]string{"author": "Marie Martin", "text": "Pièce commandée"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCalendarDayEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "GET", "/api/calendar/day?date=2025-12-25", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Date   string           `json:"date"`
		Week   int              `json:"week"`
		Events []calendar.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-12-25", resp.Date)
	assert.Equal(t, 52, resp.Week)

	found := false
	for _, e := range resp.Events {
		if e.Type == "holiday" && e.Title == "Noël" {
			found = true
		}
	}
	assert.True(t, found)

	w = doJSON(router, "GET", "/api/calendar/day?date=25/12/2025", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendarMonthEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "GET", "/api/calendar/month?year=2025&month=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Cells []calendar.DayCell `json:"cells"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Cells, 42)

	w = doJSON(router, "GET", "/api/calendar/month?year=2025&month=13", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsDegradesWhenBackendUnreachable(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "GET", "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Stats    backend.Stats `json:"stats"`
		Degraded bool          `json:"degraded"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Degraded)
	assert.Equal(t, backend.Stats{}, resp.Stats)
}

func TestRemoteUserProxies(t *testing.T) {
	var requests []string
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/api/users/list":
			json.NewEncoder(w).Encode([]backend.RemoteUser{{ID: "u1", Name: "Patrice"}})
		case "/api/users/check-role":
			json.NewEncoder(w).Encode(backend.RoleCheck{Role: "admin"})
		case "/api/users/u1":
			if r.Method == http.MethodGet {
				json.NewEncoder(w).Encode(backend.RemoteUser{ID: "u1", Name: "Patrice"})
			}
		}
	}))
	defer remote.Close()

	router := setupRouterWithBackend(t, remote.URL)

	w := doJSON(router, "GET", "/api/remote-users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []backend.RemoteUser
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "Patrice", users[0].Name)

	w = doJSON(router, "GET", "/api/remote-users/check-role", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/remote-users/u1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "POST", "/api/remote-users", backend.RemoteUser{Name: "Marc"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "PUT", "/api/remote-users/u1", backend.RemoteUser{Role: "admin"})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, "DELETE", "/api/remote-users/u1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, []string{
		"GET /api/users/list",
		"GET /api/users/check-role",
		"GET /api/users/u1",
		"POST /api/users/create",
		"POST /api/users/u1",
		"DELETE /api/users/u1",
	}, requests)
}

func TestRemoteAlertCreateAndUpdateProxies(t *testing.T) {
	var requests []string
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
		if r.URL.Path == "/alertes/7/a1" {
			var alert backend.Alert
			require.NoError(t, json.NewDecoder(r.Body).Decode(&alert))
			// Path parameters override the body's ids.
			assert.Equal(t, "7", alert.EntrepriseID)
			assert.Equal(t, "a1", alert.AlerteID)
		}
	}))
	defer remote.Close()

	router := setupRouterWithBackend(t, remote.URL)

	w := doJSON(router, "POST", "/api/alerts", backend.Alert{EntrepriseID: "7", MachineNom: "Presse"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "PUT", "/api/alerts/7/a1", backend.Alert{EntrepriseID: "autre", MachineNom: "Presse"})
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, []string{"POST /alertes", "POST /alertes/7/a1"}, requests)
}

func TestRemoteUserProxyReturnsBadGateway(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "GET", "/api/remote-users", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestPutSubscription(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "PUT", "/api/subscriptions", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, "PUT", "/api/subscriptions", map[string]string{
		"endpoint": "https://example.com/push",
		"p256dh":   "key",
		"auth":     "auth",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "GET", "/api/subscriptions?endpoint=https://example.com/push", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "DELETE", "/api/subscriptions", map[string]string{"endpoint": "https://example.com/push"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, "GET", "/api/subscriptions?endpoint=https://example.com/push", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetVAPIDPublicKey(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(router, "GET", "/api/vapid_public_key", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"public_key":"test-public-key"}`, w.Body.String())
}
