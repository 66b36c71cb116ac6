package donation

import (
	models "github.com/AndrewCheung360/buy4good-go/models"
)

// Placeholder charity used when a user has no preferences and no explicit
// charity was requested, so the pipeline always completes.
const (
	PlaceholderCharityID   = "mock-charity"
	PlaceholderCharityName = "mock charity"
)

// Allocation is the outcome of allocating one transaction's donation.
type Allocation struct {
	CharityID      string
	CharityName    string
	DonationAmount float64
}

// Allocate computes the donation for one transaction. Pure computation:
// amount = txAmount * pct. An explicit charity id wins; otherwise the first
// preference in store order receives 100% of the donation regardless of the
// weights on each preference (the weights only matter in proportional
// mode, see AllocateProportional). With neither, the placeholder charity
// is used. Zero and negative inputs pass through untouched.
func Allocate(txAmount, pct float64, explicitCharityID string, prefs []models.CharityPreference) Allocation {
	amount := txAmount * pct

	if explicitCharityID != "" {
		return Allocation{
			CharityID:      explicitCharityID,
			CharityName:    resolveName(explicitCharityID, prefs),
			DonationAmount: amount,
		}
	}

	if len(prefs) > 0 {
		first := prefs[0]
		name := first.CharityName
		if name == "" {
			name = first.CharityID
		}
		return Allocation{
			CharityID:      first.CharityID,
			CharityName:    name,
			DonationAmount: amount,
		}
	}

	return Allocation{
		CharityID:      PlaceholderCharityID,
		CharityName:    PlaceholderCharityName,
		DonationAmount: amount,
	}
}

// AllocateProportional splits the donation across all of the user's
// preferences by their allocation weights (weight/100 of the donation
// each). Weights are not required to sum to 100. Without preferences it
// behaves exactly like Allocate.
func AllocateProportional(txAmount, pct float64, prefs []models.CharityPreference) []Allocation {
	if len(prefs) == 0 {
		return []Allocation{Allocate(txAmount, pct, "", nil)}
	}

	total := txAmount * pct
	out := make([]Allocation, 0, len(prefs))
	for _, pref := range prefs {
		name := pref.CharityName
		if name == "" {
			name = pref.CharityID
		}
		out = append(out, Allocation{
			CharityID:      pref.CharityID,
			CharityName:    name,
			DonationAmount: total * (pref.AllocationPercentage / 100),
		})
	}
	return out
}

func resolveName(charityID string, prefs []models.CharityPreference) string {
	for _, pref := range prefs {
		if pref.CharityID == charityID && pref.CharityName != "" {
			return pref.CharityName
		}
	}
	return charityID
}
