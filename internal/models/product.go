// internal/models/product.go
package models

import "fmt"

// Product is a store item keyed by a short identifier chosen at creation.
type Product struct {
	Key         string
	Name        string
	Description string
	Price       int64
	Quantity    int64
}

// Line renders the product as a single store listing entry.
func (p *Product) Line() string {
	return fmt.Sprintf("%s: %s (%d gems, %d left)\n%s", p.Key, p.Name, p.Price, p.Quantity, p.Description)
}
