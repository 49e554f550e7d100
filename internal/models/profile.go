// internal/models/profile.go
package models

import "fmt"

// Profile is a member's stored balance record. Points are a non-spendable
// score; credits are the spendable currency, shown to users as "gems".
// A member with no stored record has an implicit zero profile.
type Profile struct {
	DiscordID string
	Points    int64
	Credits   int64
}

// Summary renders the balance the way every balance reply shows it.
func (p *Profile) Summary() string {
	return fmt.Sprintf("%d points\n%d gems", p.Points, p.Credits)
}
