// internal/store/storetest/fake.go
package storetest

import (
	"sync"

	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// FakeDynamo is an in-memory stand-in for the DynamoDB API subset the
// stores use. Items are held per table, keyed by the table's partition
// key attribute.
type FakeDynamo struct {
	mtx      sync.Mutex
	keyAttrs map[string]string
	tables   map[string]map[string]map[string]*dynamodb.AttributeValue

	// Err, when set, is returned by every call.
	Err error

	// Write counters let tests assert zero-mutation guarantees.
	PutCount    int
	DeleteCount int
}

// NewFakeDynamo builds a fake over the given table → partition key
// attribute mapping.
func NewFakeDynamo(keyAttrs map[string]string) *FakeDynamo {
	return &FakeDynamo{
		keyAttrs: keyAttrs,
		tables:   make(map[string]map[string]map[string]*dynamodb.AttributeValue),
	}
}

func (f *FakeDynamo) GetItem(input *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}

	table := f.tables[*input.TableName]
	keyAttr := f.keyAttrs[*input.TableName]
	keyValue := *input.Key[keyAttr].S

	item, ok := table[keyValue]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}

	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

func (f *FakeDynamo) PutItem(input *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}

	table, ok := f.tables[*input.TableName]
	if !ok {
		table = make(map[string]map[string]*dynamodb.AttributeValue)
		f.tables[*input.TableName] = table
	}

	keyAttr := f.keyAttrs[*input.TableName]
	keyValue := *input.Item[keyAttr].S

	table[keyValue] = copyItem(input.Item)
	f.PutCount++

	return &dynamodb.PutItemOutput{}, nil
}

func (f *FakeDynamo) DeleteItem(input *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}

	keyAttr := f.keyAttrs[*input.TableName]
	keyValue := *input.Key[keyAttr].S

	delete(f.tables[*input.TableName], keyValue)
	f.DeleteCount++

	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *FakeDynamo) Scan(input *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}

	var items []map[string]*dynamodb.AttributeValue
	for _, item := range f.tables[*input.TableName] {
		items = append(items, copyItem(item))
	}

	return &dynamodb.ScanOutput{Items: items}, nil
}

// ItemCount reports how many items a table holds.
func (f *FakeDynamo) ItemCount(table string) int {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	return len(f.tables[table])
}

// WriteCount reports the total number of mutating calls seen.
func (f *FakeDynamo) WriteCount() int {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	return f.PutCount + f.DeleteCount
}

func copyItem(item map[string]*dynamodb.AttributeValue) map[string]*dynamodb.AttributeValue {
	copied := make(map[string]*dynamodb.AttributeValue, len(item))
	for name, attr := range item {
		copied[name] = attr
	}
	return copied
}
