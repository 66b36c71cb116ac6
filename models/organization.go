package models

// Shapes returned by the Pledge.to organizations API. JSON only, never stored.

type Cause struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ParentID *int   `json:"parent_id,omitempty"`
}

type ImpactMetric struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

type SustainableDevelopmentGoal struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Organization struct {
	ID               string                       `json:"id"`
	Name             string                       `json:"name"`
	Alias            string                       `json:"alias,omitempty"`
	NgoID            string                       `json:"ngo_id"`
	Mission          string                       `json:"mission"`
	Street1          string                       `json:"street1"`
	Street2          string                       `json:"street2,omitempty"`
	City             string                       `json:"city"`
	Region           string                       `json:"region"`
	PostalCode       int                          `json:"postal_code"`
	Country          string                       `json:"country"`
	Lat              string                       `json:"lat"`
	Lon              string                       `json:"lon"`
	Causes           []Cause                      `json:"causes"`
	WebsiteURL       string                       `json:"website_url,omitempty"`
	ProfileURL       string                       `json:"profile_url,omitempty"`
	LogoURL          string                       `json:"logo_url,omitempty"`
	DisbursementType string                       `json:"disbursement_type"`
	ImpactMetrics    []ImpactMetric               `json:"impact_metrics"`
	SDGs             []SustainableDevelopmentGoal `json:"sustainable_development_goals"`
}

type OrganizationsListResponse struct {
	Organizations []Organization `json:"organizations"`
	TotalCount    int            `json:"total_count,omitempty"`
	Page          int            `json:"page,omitempty"`
	PerPage       int            `json:"per_page,omitempty"`
}

// Beneficiary is the trimmed organization embedded in donation responses.
type Beneficiary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Alias   string `json:"alias,omitempty"`
	NgoID   string `json:"ngo_id,omitempty"`
	Mission string `json:"mission,omitempty"`
	City    string `json:"city,omitempty"`
	Region  string `json:"region,omitempty"`
}

// DonationRequest is the payload forwarded to the Pledge.to donations API.
type DonationRequest struct {
	Email          string `json:"email" binding:"required,email"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	Amount         string `json:"amount" binding:"required"`
	Metadata       string `json:"metadata,omitempty"`
	SendTaxReceipt *bool  `json:"send_tax_receipt,omitempty"`
	OrganizationID string `json:"organization_id" binding:"required"`
}

type DonationResponse struct {
	ID               string        `json:"id"`
	Email            string        `json:"email"`
	FirstName        string        `json:"first_name"`
	LastName         string        `json:"last_name"`
	PhoneNumber      string        `json:"phone_number,omitempty"`
	Amount           string        `json:"amount"`
	Metadata         string        `json:"metadata,omitempty"`
	OrganizationID   string        `json:"organization_id"`
	OrganizationName string        `json:"organization_name"`
	Beneficiaries    []Beneficiary `json:"beneficiaries"`
	UserID           string        `json:"user_id,omitempty"`
	Status           string        `json:"status"`
	ExternalID       string        `json:"external_id,omitempty"`
	CreatedAt        string        `json:"created_at"`
	UpdatedAt        string        `json:"updated_at"`
}
