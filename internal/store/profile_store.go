// internal/store/profile_store.go
package store

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/tpcguild/pointsbot/internal/models"
)

// ProfileStore persists member balance records keyed by Discord ID.
type ProfileStore struct {
	db    DynamoAPI
	table string
}

func NewProfileStore(db DynamoAPI, table string) *ProfileStore {
	return &ProfileStore{db: db, table: table}
}

// Get fetches a member's profile. A member with no stored record gets a
// zero profile back; the read never creates one.
func (s *ProfileStore) Get(discordID string) (*models.Profile, error) {
	output, err := s.db.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]*dynamodb.AttributeValue{
			"discord_id": stringAttr(discordID),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile := &models.Profile{DiscordID: discordID}
	if output.Item == nil {
		return profile, nil
	}

	profile.Points = numberField(output.Item, "points")
	profile.Credits = numberField(output.Item, "credits")
	return profile, nil
}

// Put overwrites the member's whole record. Last writer wins; there is
// no concurrency token guarding the read-modify-write gap.
func (s *ProfileStore) Put(profile *models.Profile) error {
	_, err := s.db.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item: map[string]*dynamodb.AttributeValue{
			"discord_id": stringAttr(profile.DiscordID),
			"points":     numberAttr(profile.Points),
			"credits":    numberAttr(profile.Credits),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to put profile: %w", err)
	}

	return nil
}
