package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	config "github.com/AndrewCheung360/buy4good-go/config"
	models "github.com/AndrewCheung360/buy4good-go/models"
)

var pledgeHTTP = &http.Client{Timeout: 30 * time.Second}

// PledgeError carries the upstream status code so transport can map it.
type PledgeError struct {
	StatusCode int
	Body       string
}

func (e *PledgeError) Error() string {
	return fmt.Sprintf("pledge API error: %d - %s", e.StatusCode, e.Body)
}

func pledgeDo(req *http.Request, apiKey string) ([]byte, error) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := pledgeHTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &PledgeError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// CreatePledgeDonation forwards a donation to the Pledge.to API using the
// donation credential set (sandbox when configured).
func CreatePledgeDonation(cfg *config.Config, donation models.DonationRequest) (*models.DonationResponse, error) {
	baseURL, apiKey := cfg.Resolve(config.OpDonation)

	payload, err := json.Marshal(donation)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", baseURL+"/v1/donations", bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}

	body, err := pledgeDo(req, apiKey)
	if err != nil {
		log.Printf("error creating pledge donation: %v", err)
		return nil, err
	}

	var out models.DonationResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrganization fetches one organization, always production-keyed.
func GetOrganization(cfg *config.Config, organizationID string) (*models.Organization, error) {
	baseURL, apiKey := cfg.Resolve(config.OpOrganizationLookup)

	req, err := http.NewRequest("GET", baseURL+"/v1/organizations/"+organizationID, nil)
	if err != nil {
		return nil, err
	}

	body, err := pledgeDo(req, apiKey)
	if err != nil {
		log.Printf("error fetching organization %s: %v", organizationID, err)
		return nil, err
	}

	var out models.Organization
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOrganizations fetches the organization catalog with optional filters,
// always production-keyed. A bare array response is wrapped into the list
// shape the transport returns.
func ListOrganizations(cfg *config.Config, params url.Values) (*models.OrganizationsListResponse, error) {
	baseURL, apiKey := cfg.Resolve(config.OpOrganizationLookup)

	endpoint := baseURL + "/v1/organizations"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	body, err := pledgeDo(req, apiKey)
	if err != nil {
		log.Printf("error listing organizations: %v", err)
		return nil, err
	}

	var asObject models.OrganizationsListResponse
	if err := json.Unmarshal(body, &asObject); err == nil {
		return &asObject, nil
	}

	var asArray []models.Organization
	if err := json.Unmarshal(body, &asArray); err != nil {
		return nil, err
	}
	return &models.OrganizationsListResponse{
		Organizations: asArray,
		TotalCount:    len(asArray),
	}, nil
}

// PledgeHealthy reports whether the Pledge.to API answers a minimal
// production-keyed catalog request.
func PledgeHealthy(cfg *config.Config) bool {
	params := url.Values{}
	params.Set("per_page", "1")
	_, err := ListOrganizations(cfg, params)
	return err == nil
}
