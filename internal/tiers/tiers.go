package tiers

import (
	"errors"
	"fmt"
)

// Config is one row of the referral tier table: reaching ReferralsRequired
// active referrals grants TotalDailyCredits per day.
type Config struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	ReferralsRequired int    `json:"referralsRequired"`
	DailyCreditsBonus int    `json:"dailyCreditsBonus"`
	TotalDailyCredits int    `json:"totalDailyCredits"`
}

// Catalog is an ordered tier table, ascending by ReferralsRequired.
// It is defined once at startup and shared read-only.
type Catalog []Config

var defaultCatalog = Catalog{
	{ID: "default", Name: "Default", ReferralsRequired: 0, DailyCreditsBonus: 0, TotalDailyCredits: 5},
	{ID: "explorer", Name: "Explorer", ReferralsRequired: 1, DailyCreditsBonus: 1, TotalDailyCredits: 6},
	{ID: "smart-traveler", Name: "Smart Traveler", ReferralsRequired: 3, DailyCreditsBonus: 3, TotalDailyCredits: 8},
	{ID: "voyager", Name: "Voyager", ReferralsRequired: 5, DailyCreditsBonus: 5, TotalDailyCredits: 10},
}

// Default returns the built-in catalog.
func Default() Catalog {
	return defaultCatalog
}

// Validate rejects catalogs that would make resolution undefined: an empty
// table, a base tier above zero referrals, or thresholds that are not
// strictly increasing. Meant to be called once at startup.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return errors.New("tier catalog is empty")
	}
	if c[0].ReferralsRequired != 0 {
		return fmt.Errorf("base tier %q requires %d referrals, want 0", c[0].Name, c[0].ReferralsRequired)
	}
	for i := 1; i < len(c); i++ {
		if c[i].ReferralsRequired <= c[i-1].ReferralsRequired {
			return fmt.Errorf("tier thresholds not strictly increasing at %q", c[i].Name)
		}
	}
	return nil
}

// All returns the catalog in ascending threshold order.
func (c Catalog) All() []Config {
	return c
}

// ByName looks up a tier by display name.
func (c Catalog) ByName(name string) (Config, bool) {
	for _, t := range c {
		if t.Name == name {
			return t, true
		}
	}
	return Config{}, false
}

// Resolve returns the highest tier whose threshold is at or below the
// active referral count. Counts below every threshold land on the base
// tier.
func (c Catalog) Resolve(activeReferrals int) Config {
	current := c[0]
	for _, t := range c {
		if t.ReferralsRequired <= activeReferrals {
			current = t
		}
	}
	return current
}

// Next returns the lowest tier whose threshold exceeds the active referral
// count, or false when the count already sits in the top tier.
func (c Catalog) Next(activeReferrals int) (Config, bool) {
	for _, t := range c {
		if t.ReferralsRequired > activeReferrals {
			return t, true
		}
	}
	return Config{}, false
}

// Progress describes where a referral count sits between its current tier
// and the next one.
type Progress struct {
	Current            Config  `json:"currentTier"`
	Next               *Config `json:"nextTier"`
	ActiveReferrals    int     `json:"activeReferrals"`
	ReferralsNeeded    int     `json:"referralsNeeded"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

// ProgressFor computes tier progress for a referral count. The percentage
// is measured inside the current band, so it is 0 immediately after
// crossing into a tier and 100 at the top tier.
func (c Catalog) ProgressFor(activeReferrals int) Progress {
	current := c.Resolve(activeReferrals)
	next, ok := c.Next(activeReferrals)
	if !ok {
		return Progress{
			Current:            current,
			ActiveReferrals:    activeReferrals,
			ProgressPercentage: 100,
		}
	}

	needed := next.ReferralsRequired - activeReferrals
	if needed < 0 {
		needed = 0
	}
	span := next.ReferralsRequired - current.ReferralsRequired
	pct := float64(activeReferrals-current.ReferralsRequired) / float64(span) * 100

	return Progress{
		Current:            current,
		Next:               &next,
		ActiveReferrals:    activeReferrals,
		ReferralsNeeded:    needed,
		ProgressPercentage: pct,
	}
}
