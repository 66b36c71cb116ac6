package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Operation categorises outbound Pledge.to calls for credential resolution.
type Operation int

const (
	// OpDonation moves money and is routed to the sandbox environment
	// when USE_SANDBOX_FOR_DONATIONS is set.
	OpDonation Operation = iota
	// OpOrganizationLookup is read-only catalog data and always uses production.
	OpOrganizationLookup
)

type Config struct {
	MongoClient *mongo.Client
	DBName      string

	// Pledge.to
	PledgeAPIKey        string
	PledgeSandboxAPIKey string
	PledgeBaseURL       string
	PledgeSandboxURL    string
	UseSandboxDonations bool

	// Plaid
	PlaidClientID           string
	PlaidSecret             string
	PlaidEnv                string
	PlaidSandboxRedirectURI string
	PlaidAndroidPackage     string

	// Allocation behaviour
	ProportionalAllocation bool

	Port string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// Load reads .env (if present), builds the Config and connects to Mongo
// when MONGODB_URI is set. A missing Mongo URI is not an error: the store
// layer degrades to in-process memory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBName: getenv("DB_NAME", "buy4good"),

		PledgeAPIKey:        os.Getenv("PLEDGE_TO_API_KEY"),
		PledgeSandboxAPIKey: os.Getenv("PLEDGE_TO_SANDBOX_API_KEY"),
		PledgeBaseURL:       getenv("PLEDGE_TO_BASE_URL", "https://api.pledge.to"),
		PledgeSandboxURL:    getenv("PLEDGE_TO_SANDBOX_URL", "https://api-staging.pledge.to"),
		UseSandboxDonations: getenvBool("USE_SANDBOX_FOR_DONATIONS", true),

		PlaidClientID:           os.Getenv("PLAID_CLIENT_ID"),
		PlaidSecret:             os.Getenv("PLAID_SECRET"),
		PlaidEnv:                getenv("PLAID_ENV", "sandbox"),
		PlaidSandboxRedirectURI: os.Getenv("PLAID_SANDBOX_REDIRECT_URI"),
		PlaidAndroidPackage:     os.Getenv("PLAID_ANDROID_PACKAGE_NAME"),

		ProportionalAllocation: getenvBool("PROPORTIONAL_ALLOCATION", false),

		Port: getenv("PORT", "8000"),
	}

	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			return nil, fmt.Errorf("mongo connect error: %v", err)
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return nil, fmt.Errorf("mongo ping error: %v", err)
		}
		cfg.MongoClient = client
	} else {
		log.Println("MONGODB_URI not set, durable store disabled; falling back to in-memory storage")
	}

	return cfg, nil
}

// Validate checks required credentials. A missing production Pledge key is
// fatal; a missing sandbox key only downgrades sandbox donations to the
// production key, which operators need to know about.
func (c *Config) Validate() error {
	if c.PledgeAPIKey == "" {
		return fmt.Errorf("PLEDGE_TO_API_KEY environment variable is required")
	}
	if c.UseSandboxDonations && c.PledgeSandboxAPIKey == "" {
		log.Println("warning: USE_SANDBOX_FOR_DONATIONS is true but PLEDGE_TO_SANDBOX_API_KEY is not set; donation calls will use the production API key")
	}
	return nil
}

// Resolve returns the Pledge.to base URL and API key for the given operation.
// It never fails: donation calls in sandbox mode without a sandbox key fall
// back to the production key with a logged warning.
func (c *Config) Resolve(op Operation) (baseURL, apiKey string) {
	if op == OpDonation && c.UseSandboxDonations {
		if c.PledgeSandboxAPIKey == "" {
			log.Println("warning: sandbox donation requested without sandbox key, using production API key")
			return c.PledgeSandboxURL, c.PledgeAPIKey
		}
		return c.PledgeSandboxURL, c.PledgeSandboxAPIKey
	}
	return c.PledgeBaseURL, c.PledgeAPIKey
}
