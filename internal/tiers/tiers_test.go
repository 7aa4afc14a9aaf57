package tiers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		catalog   Catalog
		expectErr bool
	}{
		{
			name:      "Default catalog is valid",
			catalog:   Default(),
			expectErr: false,
		},
		{
			name:      "Empty catalog",
			catalog:   Catalog{},
			expectErr: true,
		},
		{
			name: "Base tier above zero",
			catalog: Catalog{
				{Name: "Default", ReferralsRequired: 1, TotalDailyCredits: 5},
			},
			expectErr: true,
		},
		{
			name: "Non-increasing thresholds",
			catalog: Catalog{
				{Name: "Default", ReferralsRequired: 0, TotalDailyCredits: 5},
				{Name: "Explorer", ReferralsRequired: 2, TotalDailyCredits: 6},
				{Name: "Voyager", ReferralsRequired: 2, TotalDailyCredits: 10},
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	catalog := Default()

	tests := []struct {
		name            string
		activeReferrals int
		expectedTier    string
		expectedCredits int
	}{
		{"Zero referrals lands on base tier", 0, "Default", 5},
		{"One referral unlocks Explorer", 1, "Explorer", 6},
		{"Two referrals stays Explorer", 2, "Explorer", 6},
		{"Three referrals unlocks Smart Traveler", 3, "Smart Traveler", 8},
		{"Four referrals stays Smart Traveler", 4, "Smart Traveler", 8},
		{"Five referrals unlocks Voyager", 5, "Voyager", 10},
		{"Far beyond top threshold stays Voyager", 100, "Voyager", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := catalog.Resolve(tt.activeReferrals)
			assert.Equal(t, tt.expectedTier, tier.Name)
			assert.Equal(t, tt.expectedCredits, tier.TotalDailyCredits)
			assert.LessOrEqual(t, tier.ReferralsRequired, tt.activeReferrals)
		})
	}
}

func TestResolveReturnsHighestSatisfiedThreshold(t *testing.T) {
	catalog := Default()

	for c := 0; c <= 20; c++ {
		tier := catalog.Resolve(c)
		for _, other := range catalog {
			if other.ReferralsRequired <= c {
				assert.GreaterOrEqual(t, tier.ReferralsRequired, other.ReferralsRequired,
					"count %d resolved below a satisfied threshold", c)
			}
		}
	}
}

func TestNext(t *testing.T) {
	catalog := Default()

	next, ok := catalog.Next(0)
	assert.True(t, ok)
	assert.Equal(t, "Explorer", next.Name)

	next, ok = catalog.Next(4)
	assert.True(t, ok)
	assert.Equal(t, "Voyager", next.Name)

	_, ok = catalog.Next(5)
	assert.False(t, ok)

	_, ok = catalog.Next(42)
	assert.False(t, ok)
}

func TestByName(t *testing.T) {
	catalog := Default()

	tier, ok := catalog.ByName("Smart Traveler")
	assert.True(t, ok)
	assert.Equal(t, 3, tier.ReferralsRequired)
	assert.Equal(t, 8, tier.TotalDailyCredits)

	_, ok = catalog.ByName("Galactic")
	assert.False(t, ok)
}

func TestProgressFor(t *testing.T) {
	catalog := Default()

	tests := []struct {
		name            string
		activeReferrals int
		expectedTier    string
		expectedNeeded  int
		expectedPct     float64
		hasNext         bool
	}{
		{"Fresh account", 0, "Default", 1, 0, true},
		{"Just crossed into Explorer", 1, "Explorer", 2, 0, true},
		{"Halfway through Explorer band", 2, "Explorer", 1, 50, true},
		{"Just crossed into Smart Traveler", 3, "Smart Traveler", 2, 0, true},
		{"One short of Voyager", 4, "Smart Traveler", 1, 50, true},
		{"Top tier reached", 5, "Voyager", 0, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := catalog.ProgressFor(tt.activeReferrals)
			assert.Equal(t, tt.expectedTier, p.Current.Name)
			assert.Equal(t, tt.expectedNeeded, p.ReferralsNeeded)
			assert.InDelta(t, tt.expectedPct, p.ProgressPercentage, 0.001)
			if tt.hasNext {
				assert.NotNil(t, p.Next)
			} else {
				assert.Nil(t, p.Next)
			}
		})
	}
}

func TestProgressMonotonicWithinBand(t *testing.T) {
	catalog := Default()

	prev := catalog.ProgressFor(0)
	for c := 1; c <= 10; c++ {
		cur := catalog.ProgressFor(c)
		if cur.Current.Name == prev.Current.Name {
			assert.GreaterOrEqual(t, cur.ProgressPercentage, prev.ProgressPercentage)
		} else {
			// Crossing a threshold resets progress inside the new band.
			assert.LessOrEqual(t, cur.ProgressPercentage, 100.0)
			if _, ok := catalog.Next(c); ok {
				assert.InDelta(t, 0, cur.ProgressPercentage, 0.001)
			}
		}
		prev = cur
	}
}
