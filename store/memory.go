package store

import (
	"context"
	"sort"
	"sync"

	models "github.com/AndrewCheung360/buy4good-go/models"
)

// Memory is the ephemeral Store. State is shared across concurrent
// requests within one process, so every method holds the mutex.
type Memory struct {
	mu        sync.RWMutex
	tokens    map[string]string
	prefs     map[string][]models.CharityPreference
	donations map[string][]models.DonationRecord
	totals    map[string]float64
	settings  map[string]models.DonationSettings
}

func NewMemory() *Memory {
	return &Memory{
		tokens:    make(map[string]string),
		prefs:     make(map[string][]models.CharityPreference),
		donations: make(map[string][]models.DonationRecord),
		totals:    make(map[string]float64),
		settings:  make(map[string]models.DonationSettings),
	}
}

func (m *Memory) StoreAccessToken(_ context.Context, userID, token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[userID] = token
	return true
}

func (m *Memory) GetAccessToken(_ context.Context, userID string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	token, ok := m.tokens[userID]
	return token, ok
}

func (m *Memory) DeleteAccessToken(_ context.Context, userID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tokens[userID]; !ok {
		return false
	}
	delete(m.tokens, userID)
	return true
}

func (m *Memory) GetCharityPreferences(_ context.Context, userID string) []models.CharityPreference {
	m.mu.RLock()
	defer m.mu.RUnlock()
	prefs := m.prefs[userID]
	out := make([]models.CharityPreference, len(prefs))
	copy(out, prefs)
	return out
}

func (m *Memory) UpsertCharityPreference(_ context.Context, pref models.CharityPreference) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	prefs := m.prefs[pref.UserID]
	for i, existing := range prefs {
		if existing.CharityID == pref.CharityID {
			prefs[i].CharityName = pref.CharityName
			prefs[i].AllocationPercentage = pref.AllocationPercentage
			return true
		}
	}
	m.prefs[pref.UserID] = append(prefs, pref)
	return true
}

func (m *Memory) GetCharityName(_ context.Context, charityID string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, prefs := range m.prefs {
		for _, pref := range prefs {
			if pref.CharityID == charityID && pref.CharityName != "" {
				return pref.CharityName, true
			}
		}
	}
	return "", false
}

func (m *Memory) CreateDonationRecord(_ context.Context, rec models.DonationRecord) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.donations[rec.UserID] = append(m.donations[rec.UserID], rec)
	return true
}

func (m *Memory) AddToUserTotal(_ context.Context, userID string, amount float64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totals[userID] += amount
	return true
}

func (m *Memory) GetUserTotal(_ context.Context, userID string) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totals[userID]
}

func (m *Memory) GetRecentDonations(_ context.Context, userID string, limit int64) []models.DonationRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	recs := m.donations[userID]
	out := make([]models.DonationRecord, len(recs))
	copy(out, recs)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DonationDate.After(out[j].DonationDate)
	})
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out
}

func (m *Memory) GetOrCreateSettings(_ context.Context, userID string) models.DonationSettings {
	m.mu.Lock()
	defer m.mu.Unlock()
	if settings, ok := m.settings[userID]; ok {
		return settings
	}
	settings := models.DefaultSettings(userID)
	m.settings[userID] = settings
	return settings
}

func (m *Memory) UpdateSettings(_ context.Context, userID string, upd models.SettingsUpdate) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	settings, ok := m.settings[userID]
	if !ok {
		settings = models.DefaultSettings(userID)
	}
	if upd.AutoDonationPercentage != nil {
		settings.AutoDonationPercentage = *upd.AutoDonationPercentage
	}
	if upd.AutoDonateEnabled != nil {
		settings.AutoDonateEnabled = *upd.AutoDonateEnabled
	}
	m.settings[userID] = settings
	return true
}
