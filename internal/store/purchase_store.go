// internal/store/purchase_store.go
package store

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/tpcguild/pointsbot/internal/models"
)

// PurchaseStore appends purchase audit records. Records are never read
// back or updated by the bot.
type PurchaseStore struct {
	db    DynamoAPI
	table string
}

func NewPurchaseStore(db DynamoAPI, table string) *PurchaseStore {
	return &PurchaseStore{db: db, table: table}
}

func (s *PurchaseStore) Add(purchase *models.Purchase) error {
	_, err := s.db.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item: map[string]*dynamodb.AttributeValue{
			"id":          stringAttr(purchase.ID),
			"product_key": stringAttr(purchase.ProductKey),
			"discord_id":  stringAttr(purchase.DiscordID),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to add purchase: %w", err)
	}

	return nil
}
