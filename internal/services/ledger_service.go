// internal/services/ledger_service.go
package services

import (
	"fmt"

	"github.com/tpcguild/pointsbot/internal/models"
	"github.com/tpcguild/pointsbot/internal/store"
	"github.com/tpcguild/pointsbot/internal/utils"
)

// LedgerService owns member balances: reads and admin grants.
type LedgerService struct {
	profiles *store.ProfileStore
}

type GrantRequest struct {
	DiscordID string `validate:"required,snowflake"`
	Amount    int64  // may be negative; no floor is enforced
}

func NewLedgerService(profiles *store.ProfileStore) *LedgerService {
	return &LedgerService{profiles: profiles}
}

// GetProfile reads a member's balances. Members without a record get a
// zero profile; the read writes nothing.
func (s *LedgerService) GetProfile(discordID string) (*models.Profile, error) {
	return s.profiles.Get(discordID)
}

// GrantPoints adds to the member's points score, leaving gems untouched.
func (s *LedgerService) GrantPoints(req *GrantRequest) (*models.Profile, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	profile, err := s.profiles.Get(req.DiscordID)
	if err != nil {
		return nil, err
	}

	profile.Points += req.Amount
	if err := s.profiles.Put(profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// GrantGems adds to the member's spendable gems, leaving points untouched.
func (s *LedgerService) GrantGems(req *GrantRequest) (*models.Profile, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	profile, err := s.profiles.Get(req.DiscordID)
	if err != nil {
		return nil, err
	}

	profile.Credits += req.Amount
	if err := s.profiles.Put(profile); err != nil {
		return nil, err
	}

	return profile, nil
}
