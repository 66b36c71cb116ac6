package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	config "github.com/AndrewCheung360/buy4good-go/config"
	models "github.com/AndrewCheung360/buy4good-go/models"
	store "github.com/AndrewCheung360/buy4good-go/store"
)

func settingsRouter(st store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	r := gin.New()
	r.POST("/api/v1/update_donation_percentage", UpdateDonationPercentage(cfg, st))
	r.POST("/api/v1/toggle_auto_donate", ToggleAutoDonate(cfg, st))
	r.GET("/api/v1/get_user_settings/:user_id", GetUserSettings(cfg, st))
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateDonationPercentageRejectsAboveCeiling(t *testing.T) {
	st := store.NewMemory()
	r := settingsRouter(st)

	w := postJSON(r, "/api/v1/update_donation_percentage", gin.H{
		"user_id":                  "u1",
		"auto_donation_percentage": 0.15,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for percentage above 10%%", w.Code)
	}

	// Stored state must be untouched: the lazily-created default survives.
	settings := st.GetOrCreateSettings(context.Background(), "u1")
	if settings.AutoDonationPercentage != models.DefaultDonationPercentage {
		t.Errorf("stored percentage = %v, want untouched default", settings.AutoDonationPercentage)
	}
}

func TestUpdateDonationPercentageAcceptsValidValue(t *testing.T) {
	st := store.NewMemory()
	r := settingsRouter(st)

	w := postJSON(r, "/api/v1/update_donation_percentage", gin.H{
		"user_id":                  "u1",
		"auto_donation_percentage": 0.05,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	settings := st.GetOrCreateSettings(context.Background(), "u1")
	if settings.AutoDonationPercentage != 0.05 {
		t.Errorf("stored percentage = %v, want 0.05", settings.AutoDonationPercentage)
	}
}

func TestUpdateDonationPercentageAcceptsBoundaries(t *testing.T) {
	st := store.NewMemory()
	r := settingsRouter(st)

	for _, pct := range []float64{0, 0.10} {
		w := postJSON(r, "/api/v1/update_donation_percentage", gin.H{
			"user_id":                  "u1",
			"auto_donation_percentage": pct,
		})
		if w.Code != http.StatusOK {
			t.Errorf("percentage %v: status = %d, want 200", pct, w.Code)
		}
	}
}

func TestToggleAutoDonate(t *testing.T) {
	st := store.NewMemory()
	r := settingsRouter(st)

	w := postJSON(r, "/api/v1/toggle_auto_donate", gin.H{
		"user_id":             "u1",
		"auto_donate_enabled": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	settings := st.GetOrCreateSettings(context.Background(), "u1")
	if !settings.AutoDonateEnabled {
		t.Error("auto-donate should be enabled after toggle")
	}
}

func TestGetUserSettingsCreatesDefaults(t *testing.T) {
	st := store.NewMemory()
	r := settingsRouter(st)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/get_user_settings/new-user", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Success  bool                    `json:"success"`
		Settings models.DonationSettings `json:"settings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Settings.AutoDonationPercentage != models.DefaultDonationPercentage {
		t.Errorf("percentage = %v, want lazily created default", resp.Settings.AutoDonationPercentage)
	}
	if resp.Settings.AutoDonateEnabled {
		t.Error("auto-donate should default to disabled")
	}
}
