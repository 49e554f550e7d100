// internal/store/store.go
package store

import (
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// DynamoAPI is the subset of the DynamoDB client the stores use.
// The concrete *dynamodb.DynamoDB satisfies it; tests inject fakes.
type DynamoAPI interface {
	GetItem(input *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	PutItem(input *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	DeleteItem(input *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	Scan(input *dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
}
