package controllers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	config "github.com/AndrewCheung360/buy4good-go/config"
	donation "github.com/AndrewCheung360/buy4good-go/donation"
	models "github.com/AndrewCheung360/buy4good-go/models"
	store "github.com/AndrewCheung360/buy4good-go/store"
)

func transactionsRouter(cfg *config.Config, st store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/transactions/auto_donate", AutoDonate(cfg, st))
	r.POST("/api/v1/simulate-transaction", SimulateTransaction(cfg))
	return r
}

func TestAutoDonatePlaceholderScenario(t *testing.T) {
	// User with no preferences: $100.00 at 2% -> $2.00 to the mock charity,
	// one appended record, total up by 2.00.
	st := store.NewMemory()
	r := transactionsRouter(&config.Config{}, st)

	w := postJSON(r, "/api/v1/transactions/auto_donate", gin.H{
		"user_id":             "u1",
		"transaction_amount":  100.00,
		"donation_percentage": 0.02,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success        bool    `json:"success"`
		TransactionID  string  `json:"transaction_id"`
		CharityID      string  `json:"charity_id"`
		CharityName    string  `json:"charity_name"`
		DonationAmount float64 `json:"donation_amount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	if math.Abs(resp.DonationAmount-2.00) > 1e-9 {
		t.Errorf("donation amount = %v, want 2.00", resp.DonationAmount)
	}
	if resp.CharityName != donation.PlaceholderCharityName {
		t.Errorf("charity = %q, want %q", resp.CharityName, donation.PlaceholderCharityName)
	}

	ctx := context.Background()
	if total := st.GetUserTotal(ctx, "u1"); math.Abs(total-2.00) > 1e-9 {
		t.Errorf("total = %v, want 2.00", total)
	}
	if recs := st.GetRecentDonations(ctx, "u1", 10); len(recs) != 1 {
		t.Errorf("records = %d, want 1 appended record", len(recs))
	}
}

func TestAutoDonateFirstPreferencePolicy(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()
	st.UpsertCharityPreference(ctx, models.CharityPreference{UserID: "u1", CharityID: "c1", CharityName: "One", AllocationPercentage: 40})
	st.UpsertCharityPreference(ctx, models.CharityPreference{UserID: "u1", CharityID: "c2", CharityName: "Two", AllocationPercentage: 60})

	r := transactionsRouter(&config.Config{}, st)
	w := postJSON(r, "/api/v1/transactions/auto_donate", gin.H{
		"user_id":             "u1",
		"transaction_amount":  50.00,
		"donation_percentage": 0.10,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}

	var resp struct {
		CharityID      string  `json:"charity_id"`
		DonationAmount float64 `json:"donation_amount"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	if resp.CharityID != "c1" {
		t.Errorf("charity = %q, the first preference must take the full donation", resp.CharityID)
	}
	if math.Abs(resp.DonationAmount-5.00) > 1e-9 {
		t.Errorf("amount = %v, want full 5.00 (no proportional split by default)", resp.DonationAmount)
	}
}

func TestAutoDonateProportionalMode(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()
	st.UpsertCharityPreference(ctx, models.CharityPreference{UserID: "u1", CharityID: "c1", CharityName: "One", AllocationPercentage: 40})
	st.UpsertCharityPreference(ctx, models.CharityPreference{UserID: "u1", CharityID: "c2", CharityName: "Two", AllocationPercentage: 60})

	r := transactionsRouter(&config.Config{ProportionalAllocation: true}, st)
	w := postJSON(r, "/api/v1/transactions/auto_donate", gin.H{
		"user_id":             "u1",
		"transaction_amount":  100.00,
		"donation_percentage": 0.10,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}

	var resp struct {
		Success          bool `json:"success"`
		Donations        []struct {
			CharityID      string  `json:"charity_id"`
			DonationAmount float64 `json:"donation_amount"`
		} `json:"donations"`
		TotalDistributed float64 `json:"total_distributed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}

	if len(resp.Donations) != 2 {
		t.Fatalf("donations = %d, want one per preference", len(resp.Donations))
	}
	if math.Abs(resp.Donations[0].DonationAmount-4.00) > 1e-9 || math.Abs(resp.Donations[1].DonationAmount-6.00) > 1e-9 {
		t.Errorf("split = %v/%v, want 4.00/6.00", resp.Donations[0].DonationAmount, resp.Donations[1].DonationAmount)
	}
	if total := st.GetUserTotal(ctx, "u1"); math.Abs(total-10.00) > 1e-9 {
		t.Errorf("total = %v, want 10.00 across both records", total)
	}
}

func TestAutoDonateZeroAmountStillRecords(t *testing.T) {
	st := store.NewMemory()
	r := transactionsRouter(&config.Config{}, st)

	w := postJSON(r, "/api/v1/transactions/auto_donate", gin.H{
		"user_id":             "u1",
		"transaction_amount":  0,
		"donation_percentage": 0.02,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (zero-amount donations still record)", w.Code)
	}
	if recs := st.GetRecentDonations(context.Background(), "u1", 10); len(recs) != 1 {
		t.Errorf("records = %d, want 1", len(recs))
	}
}

func TestSimulateTransaction(t *testing.T) {
	r := transactionsRouter(&config.Config{}, store.NewMemory())

	w := postJSON(r, "/api/v1/simulate-transaction", gin.H{
		"merchant_id": "m1",
		"amount":      "200.00",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}

	var resp models.SimulateTransactionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Status != "completed" {
		t.Errorf("status = %q, want completed", resp.Status)
	}
	if resp.Commission != "10.00" {
		t.Errorf("commission = %q, want 5%% of 200.00", resp.Commission)
	}
	if resp.TransactionID == "" {
		t.Error("transaction id must be generated")
	}
}

func TestSimulateTransactionRejectsBadAmount(t *testing.T) {
	r := transactionsRouter(&config.Config{}, store.NewMemory())

	w := postJSON(r, "/api/v1/simulate-transaction", gin.H{
		"merchant_id": "m1",
		"amount":      "not-a-number",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
