package coinbase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// Profile is a portfolio isolating accounts and orders from the user's other
// profiles.
type Profile struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Active    bool   `json:"active"`
	IsDefault bool   `json:"is_default"`
	HasMargin bool   `json:"has_margin"`
	CreatedAt Time   `json:"created_at"`
}

type ProfileService struct {
	c *Client
}

// Get returns a single profile.
//
// Permissions: view.
func (s *ProfileService) Get(ctx context.Context, profileID string, active bool) (Profile, error) {
	// always sent, so active=false is not swallowed into the server default
	q := url.Values{"active": {strconv.FormatBool(active)}}

	var profile Profile
	err := s.c.get(ctx, fmt.Sprintf("/profiles/%s", profileID), q, &profile)
	return profile, err
}

// List returns the current user's profiles.
//
// Permissions: view.
func (s *ProfileService) List(ctx context.Context, active bool) ([]Profile, error) {
	q := url.Values{"active": {strconv.FormatBool(active)}}

	var profiles []Profile
	err := s.c.get(ctx, "/profiles", q, &profiles)
	return profiles, err
}

// Create adds a profile. Fails once the user has 10.
func (s *ProfileService) Create(ctx context.Context, name string) (Profile, error) {
	var profile Profile
	err := s.c.post(ctx, "/profiles", body{"name": name}, &profile)
	return profile, err
}

// Transfer moves an amount of currency between two of the user's profiles.
//
// Permissions: transfer.
func (s *ProfileService) Transfer(ctx context.Context, fromProfileID, toProfileID, currency string, amount decimal.Decimal) error {
	b := body{
		"from":     fromProfileID,
		"to":       toProfileID,
		"currency": currency,
		"amount":   amount.String(),
	}
	return s.c.post(ctx, "/profiles/transfer", b, nil)
}

// Rename renames a profile. The names "default" and "margin" are reserved.
func (s *ProfileService) Rename(ctx context.Context, profileID, name string) (Profile, error) {
	if name == "default" || name == "margin" {
		return Profile{}, fmt.Errorf("%w: profile name %q is reserved", ErrInvalidRequest, name)
	}
	b := body{
		"profile_id": profileID,
		"name":       name,
	}

	var profile Profile
	err := s.c.put(ctx, fmt.Sprintf("/profiles/%s", profileID), b, &profile)
	return profile, err
}

// Delete deactivates a profile, moving all its funds to toProfileID. Fails
// while the profile has open orders.
func (s *ProfileService) Delete(ctx context.Context, profileID, toProfileID string) error {
	b := body{
		"profile_id": profileID,
		"to":         toProfileID,
	}
	return s.c.put(ctx, fmt.Sprintf("/profiles/%s/deactivate", profileID), b, nil)
}
