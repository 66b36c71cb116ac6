package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	config "github.com/AndrewCheung360/buy4good-go/config"
)

var plaidHTTP = &http.Client{Timeout: 30 * time.Second}

func plaidHost(cfg *config.Config) string {
	if cfg.PlaidEnv == "sandbox" {
		return "https://sandbox.plaid.com"
	}
	return "https://production.plaid.com"
}

// plaidPost sends a Plaid request with credentials injected into the body,
// as the Plaid REST convention requires.
func plaidPost(cfg *config.Config, path string, payload map[string]interface{}) (map[string]interface{}, error) {
	payload["client_id"] = cfg.PlaidClientID
	payload["secret"] = cfg.PlaidSecret

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", plaidHost(cfg)+path, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := plaidHTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("plaid API error on %s: %d - %s", path, resp.StatusCode, string(body))
		return nil, fmt.Errorf("plaid API error: %d", resp.StatusCode)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLinkToken creates a Plaid Link token for the given user. The
// optional address selects the platform redirect configuration.
func CreateLinkToken(cfg *config.Config, userID, address string) (map[string]interface{}, error) {
	payload := map[string]interface{}{
		"user":          map[string]string{"client_user_id": userID},
		"client_name":   "Buy4Good - Plaid Integration",
		"language":      "en",
		"products":      []string{"auth", "transactions"},
		"country_codes": []string{"US"},
	}

	if address == "localhost" {
		if cfg.PlaidSandboxRedirectURI != "" {
			payload["redirect_uri"] = cfg.PlaidSandboxRedirectURI
		}
	} else if cfg.PlaidAndroidPackage != "" {
		payload["android_package_name"] = cfg.PlaidAndroidPackage
	}

	return plaidPost(cfg, "/link/token/create", payload)
}

// ExchangePublicToken trades a Link public token for a persistent access token.
func ExchangePublicToken(cfg *config.Config, publicToken string) (string, error) {
	resp, err := plaidPost(cfg, "/item/public_token/exchange", map[string]interface{}{
		"public_token": publicToken,
	})
	if err != nil {
		return "", err
	}
	accessToken, ok := resp["access_token"].(string)
	if !ok || accessToken == "" {
		return "", fmt.Errorf("plaid exchange response missing access_token")
	}
	return accessToken, nil
}

// GetBalance fetches current account balances for an access token.
func GetBalance(cfg *config.Config, accessToken string) (map[string]interface{}, error) {
	return plaidPost(cfg, "/accounts/balance/get", map[string]interface{}{
		"access_token": accessToken,
	})
}

// GetTransactions fetches transactions in [start, end], optionally
// restricted to specific accounts. Dates are YYYY-MM-DD.
func GetTransactions(cfg *config.Config, accessToken, start, end string, accountIDs []string) (map[string]interface{}, error) {
	payload := map[string]interface{}{
		"access_token": accessToken,
		"start_date":   start,
		"end_date":     end,
	}
	if len(accountIDs) > 0 {
		payload["options"] = map[string]interface{}{"account_ids": accountIDs}
	}
	return plaidPost(cfg, "/transactions/get", payload)
}

// CreateSandboxTransaction fires a simulated webhook-backed transaction in
// the Plaid sandbox. Only meaningful when PLAID_ENV is sandbox.
func CreateSandboxTransaction(cfg *config.Config, accessToken string) (map[string]interface{}, error) {
	return plaidPost(cfg, "/sandbox/item/fire_webhook", map[string]interface{}{
		"access_token": accessToken,
		"webhook_code": "DEFAULT_UPDATE",
	})
}
