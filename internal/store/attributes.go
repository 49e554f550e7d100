// internal/store/attributes.go
package store

import (
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

func stringAttr(value string) *dynamodb.AttributeValue {
	return &dynamodb.AttributeValue{S: aws.String(value)}
}

func numberAttr(value int64) *dynamodb.AttributeValue {
	return &dynamodb.AttributeValue{N: aws.String(strconv.FormatInt(value, 10))}
}

// stringField reads a string attribute, defaulting to "" when the
// attribute is missing or not a string.
func stringField(item map[string]*dynamodb.AttributeValue, name string) string {
	attr, ok := item[name]
	if !ok || attr.S == nil {
		return ""
	}
	return *attr.S
}

// numberField reads a number attribute, defaulting to 0 when the
// attribute is missing, not a number, or unparsable.
func numberField(item map[string]*dynamodb.AttributeValue, name string) int64 {
	attr, ok := item[name]
	if !ok || attr.N == nil {
		return 0
	}

	value, err := strconv.ParseInt(*attr.N, 10, 64)
	if err != nil {
		return 0
	}
	return value
}
