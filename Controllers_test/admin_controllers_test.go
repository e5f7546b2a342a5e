package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/amandier/restaurant-backend/models"
	"github.com/amandier/restaurant-backend/router"
	"github.com/amandier/restaurant-backend/utils"
)

func seedAdmin(db *gorm.DB) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	db.Create(&models.User{
		Name:     "Test Admin",
		Email:    "admin@example.com",
		Password: string(hashed),
		Role:     "admin",
	})
}

func loginAdmin(t *testing.T, r http.Handler) string {
	body, _ := json.Marshal(map[string]string{
		"email":    "admin@example.com",
		"password": "secret123",
	})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func authedRequest(t *testing.T, r http.Handler, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB("admin_auth")
	r := router.SetupRouter(db)

	seedMenuItem(db, "Espresso", "beverages", true)

	checks := []struct {
		method string
		url    string
		body   interface{}
	}{
		{http.MethodGet, "/admin/dashboard/stats", nil},
		{http.MethodGet, "/admin/dashboard/activity", nil},
		{http.MethodGet, "/admin/reservations", nil},
		{http.MethodPatch, "/admin/reservations/1/status", map[string]string{"status": "confirmed"}},
		{http.MethodGet, "/admin/messages", nil},
		{http.MethodGet, "/admin/settings", nil},
		{http.MethodPut, "/admin/settings", map[string]string{"key": "phone", "value": "x"}},
		{http.MethodPost, "/admin/menu/1/toggle", nil},
		{http.MethodDelete, "/admin/menu/1", nil},
	}

	for _, check := range checks {
		w := authedRequest(t, r, check.method, check.url, "", check.body)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", check.method, check.url)
	}

	// A garbage token is rejected the same way.
	w := authedRequest(t, r, http.MethodGet, "/admin/dashboard/stats", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// No mutation happened.
	var item models.MenuItem
	assert.NoError(t, db.First(&item, 1).Error)
	assert.True(t, item.Available)
	var count int64
	db.Model(&models.Setting{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDashboardStats(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB("admin_stats")
	r := router.SetupRouter(db)
	seedAdmin(db)
	token := loginAdmin(t, r)

	today := time.Now().Format("2006-01-02")
	reservations := []models.Reservation{
		{Code: "r1", Name: "A", Email: "a@example.com", Phone: "1", Date: today, Time: "19:00", Guests: 2, Status: "pending"},
		{Code: "r2", Name: "B", Email: "b@example.com", Phone: "2", Date: "2030-01-01", Time: "18:00", Guests: 4, Status: "confirmed"},
		{Code: "r3", Name: "C", Email: "c@example.com", Phone: "3", Date: "2030-01-02", Time: "19:00", Guests: 6, Status: "cancelled"},
	}
	for i := range reservations {
		assert.NoError(t, db.Create(&reservations[i]).Error)
	}
	db.Create(&models.ContactMessage{Name: "M", Email: "m@example.com", Subject: "s", Message: "m", Status: "new"})
	seedMenuItem(db, "Espresso", "beverages", true)
	seedMenuItem(db, "Off Menu", "mains", false)

	w := authedRequest(t, r, http.MethodGet, "/admin/dashboard/stats", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Reservations struct {
				Total     int64 `json:"total"`
				Today     int64 `json:"today"`
				Pending   int64 `json:"pending"`
				Confirmed int64 `json:"confirmed"`
			} `json:"reservations"`
			Messages struct {
				Total int64 `json:"total"`
				New   int64 `json:"new"`
			} `json:"messages"`
			Menu struct {
				Total       int64 `json:"total"`
				Available   int64 `json:"available"`
				Unavailable int64 `json:"unavailable"`
			} `json:"menu"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.Data.Reservations.Total)
	assert.Equal(t, int64(1), resp.Data.Reservations.Today)
	assert.Equal(t, int64(1), resp.Data.Reservations.Pending)
	assert.Equal(t, int64(1), resp.Data.Reservations.Confirmed)
	assert.Equal(t, int64(1), resp.Data.Messages.Total)
	assert.Equal(t, int64(1), resp.Data.Messages.New)
	assert.Equal(t, int64(2), resp.Data.Menu.Total)
	assert.Equal(t, int64(1), resp.Data.Menu.Available)
	assert.Equal(t, int64(1), resp.Data.Menu.Unavailable)
}

func TestRecentActivityReturnsFiveNewest(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB("admin_activity")
	r := router.SetupRouter(db)
	seedAdmin(db)
	token := loginAdmin(t, r)

	for i := 0; i < 7; i++ {
		db.Create(&models.Reservation{
			Code: string(rune('a' + i)), Name: "R", Email: "r@example.com", Phone: "1",
			Date: "2030-01-01", Time: "19:00", Guests: 1, Status: "pending",
		})
	}
	for i := 0; i < 3; i++ {
		db.Create(&models.ContactMessage{Name: "M", Email: "m@example.com", Subject: "s", Message: "m", Status: "new"})
	}

	w := authedRequest(t, r, http.MethodGet, "/admin/dashboard/activity", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Reservations []models.Reservation    `json:"reservations"`
			Messages     []models.ContactMessage `json:"messages"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Reservations, 5)
	assert.Len(t, resp.Data.Messages, 3)
	// Newest reservation first
	assert.Equal(t, "g", resp.Data.Reservations[0].Code)
}

func TestSettingsUpsertAndDefaults(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB("admin_settings")
	r := router.SetupRouter(db)
	seedAdmin(db)
	token := loginAdmin(t, r)

	getSettings := func() map[string]string {
		w := authedRequest(t, r, http.MethodGet, "/admin/settings", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data map[string]string `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Data
	}

	// Defaults before any write.
	settings := getSettings()
	assert.Equal(t, "Amandier Restaurant", settings["restaurantName"])
	assert.Equal(t, "50", settings["maxCapacity"])

	// Overwrite one key; the others keep their defaults.
	w := authedRequest(t, r, http.MethodPut, "/admin/settings", token, map[string]string{"key": "phone", "value": "x"})
	assert.Equal(t, http.StatusOK, w.Code)

	settings = getSettings()
	assert.Equal(t, "x", settings["phone"])
	assert.Equal(t, "info@amandier.com", settings["email"])
	assert.Equal(t, "Amandier Restaurant", settings["restaurantName"])

	// Writing the same key again upserts, it does not duplicate.
	w = authedRequest(t, r, http.MethodPut, "/admin/settings", token, map[string]string{"key": "phone", "value": "y"})
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Setting{}).Count(&count)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, "y", getSettings()["phone"])
}
