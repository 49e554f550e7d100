// internal/models/purchase.go
package models

// Purchase is an immutable audit record of a completed buy. Records are
// appended once and never read back by the bot.
type Purchase struct {
	ID         string
	ProductKey string
	DiscordID  string
}
