// internal/store/product_store.go
package store

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/tpcguild/pointsbot/internal/models"
)

// ProductStore persists store items keyed by product key.
type ProductStore struct {
	db    DynamoAPI
	table string
}

func NewProductStore(db DynamoAPI, table string) *ProductStore {
	return &ProductStore{db: db, table: table}
}

// Get fetches a product by key. A missing product is (nil, nil).
func (s *ProductStore) Get(key string) (*models.Product, error) {
	output, err := s.db.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]*dynamodb.AttributeValue{
			"key": stringAttr(key),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if output.Item == nil {
		return nil, nil
	}

	return itemToProduct(output.Item), nil
}

// List scans the whole store table. Order is whatever the scan returns.
func (s *ProductStore) List() ([]models.Product, error) {
	output, err := s.db.Scan(&dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}

	products := make([]models.Product, 0, len(output.Items))
	for _, item := range output.Items {
		products = append(products, *itemToProduct(item))
	}

	return products, nil
}

// Put overwrites the product record; a matching key is fully replaced.
func (s *ProductStore) Put(product *models.Product) error {
	_, err := s.db.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item: map[string]*dynamodb.AttributeValue{
			"key":         stringAttr(product.Key),
			"name":        stringAttr(product.Name),
			"description": stringAttr(product.Description),
			"price":       numberAttr(product.Price),
			"quantity":    numberAttr(product.Quantity),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to put product: %w", err)
	}

	return nil
}

// Delete removes the product record. Deleting an absent key is not an
// error; DynamoDB treats the delete as a no-op and so do we.
func (s *ProductStore) Delete(key string) error {
	_, err := s.db.DeleteItem(&dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key: map[string]*dynamodb.AttributeValue{
			"key": stringAttr(key),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

func itemToProduct(item map[string]*dynamodb.AttributeValue) *models.Product {
	return &models.Product{
		Key:         stringField(item, "key"),
		Name:        stringField(item, "name"),
		Description: stringField(item, "description"),
		Price:       numberField(item, "price"),
		Quantity:    numberField(item, "quantity"),
	}
}
