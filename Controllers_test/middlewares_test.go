package Controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amandier/restaurant-backend/router"
	"github.com/amandier/restaurant-backend/utils"
)

func TestPreflightAnswers200WithEmptyBody(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB("mw_preflight")
	r := router.SetupRouter(db)

	for _, url := range []string{"/api/reservations", "/api/menu", "/api/contact"} {
		req := httptest.NewRequest(http.MethodOptions, url, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, url)
		assert.Empty(t, w.Body.String(), url)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCORSHeadersOnRegularRequests(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB("mw_cors")
	r := router.SetupRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
