// internal/services/shop_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tpcguild/pointsbot/internal/models"
	"github.com/tpcguild/pointsbot/internal/store"
	"github.com/tpcguild/pointsbot/internal/utils"
)

// ErrProductNotFound is returned when a purchase names an unknown key.
var ErrProductNotFound = errors.New("product not found")

// InsufficientGemsError reports a buy the member cannot afford.
type InsufficientGemsError struct {
	Credits int64
	Product models.Product
}

func (e *InsufficientGemsError) Error() string {
	return fmt.Sprintf("insufficient gems: have %d, need %d", e.Credits, e.Product.Price)
}

// OutOfStockError reports a buy against an empty shelf.
type OutOfStockError struct {
	Product models.Product
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("product %s is out of stock", e.Product.Key)
}

// ShopService owns the product catalog and the purchase flow.
type ShopService struct {
	products  *store.ProductStore
	purchases *store.PurchaseStore
	profiles  *store.ProfileStore
}

type AddProductRequest struct {
	Key         string `validate:"required"`
	Name        string `validate:"required"`
	Description string `validate:"required"`
	Price       int64  `validate:"min=0"`
	Quantity    int64  `validate:"min=0"`
}

type PurchaseResult struct {
	Purchase models.Purchase
	Product  models.Product // state after the quantity decrement
	Profile  models.Profile // state after the gem decrement
}

func NewShopService(products *store.ProductStore, purchases *store.PurchaseStore, profiles *store.ProfileStore) *ShopService {
	return &ShopService{
		products:  products,
		purchases: purchases,
		profiles:  profiles,
	}
}

// ListProducts returns every product in the store.
func (s *ShopService) ListProducts() ([]models.Product, error) {
	return s.products.List()
}

// AddProduct upserts a product. A matching key is fully overwritten.
func (s *ShopService) AddProduct(req *AddProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Key:         req.Key,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	}

	if err := s.products.Put(product); err != nil {
		return nil, err
	}

	return product, nil
}

// RemoveProduct deletes a product unconditionally. Removing an absent
// key succeeds; the delete is idempotent.
func (s *ShopService) RemoveProduct(key string) error {
	return s.products.Delete(key)
}

// Purchase runs the buy flow: affordability is checked before stock, so
// a free product on an empty shelf still reports out of stock. On
// success the purchase record, the product and the buyer profile are
// written in that order. The three writes are not atomic — a failure
// partway through leaves the later records unwritten.
func (s *ShopService) Purchase(buyerID, key string) (*PurchaseResult, error) {
	profile, err := s.profiles.Get(buyerID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.Get(key)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if profile.Credits < product.Price {
		return nil, &InsufficientGemsError{Credits: profile.Credits, Product: *product}
	}

	if product.Quantity <= 0 {
		return nil, &OutOfStockError{Product: *product}
	}

	purchase := &models.Purchase{
		ID:         uuid.New().String(),
		ProductKey: product.Key,
		DiscordID:  buyerID,
	}
	if err := s.purchases.Add(purchase); err != nil {
		return nil, err
	}

	product.Quantity--
	if err := s.products.Put(product); err != nil {
		logrus.WithError(err).WithField("purchase_id", purchase.ID).
			Error("Purchase recorded but product update failed")
		return nil, err
	}

	profile.Credits -= product.Price
	if err := s.profiles.Put(profile); err != nil {
		logrus.WithError(err).WithField("purchase_id", purchase.ID).
			Error("Product updated but profile update failed")
		return nil, err
	}

	return &PurchaseResult{
		Purchase: *purchase,
		Product:  *product,
		Profile:  *profile,
	}, nil
}
