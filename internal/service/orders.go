package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	pkgcrypto "github.com/akulagin/shopapi/internal/crypto"
	"github.com/akulagin/shopapi/internal/errs"
	"github.com/akulagin/shopapi/internal/model"
	"github.com/akulagin/shopapi/internal/repository"
)

// OrderService records and lists orders for authenticated users.
type OrderService interface {
	// PlaceOrder validates and persists an order for the session's user,
	// returning it with the server-assigned id and timestamp.
	PlaceOrder(ctx context.Context, token string, customer model.Customer, items []model.OrderItem) (*model.Order, error)
	// ListMyOrders returns the session user's orders newest-first.
	ListMyOrders(ctx context.Context, token string) ([]model.Order, error)
}

type OrderServiceImpl struct {
	orders   repository.OrderRepository
	sessions SessionManager
}

// NewOrderService constructs OrderService with required dependencies.
func NewOrderService(orders repository.OrderRepository, sessions SessionManager) *OrderServiceImpl {
	return &OrderServiceImpl{orders: orders, sessions: sessions}
}

// newOrderID derives a human-readable id from wall-clock millis plus a random
// suffix. The suffix plus the primary key constraint keeps two orders in the
// same clock tick from colliding.
func newOrderID() (string, error) {
	suffix, err := pkgcrypto.RandBytes(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(suffix)), nil
}

// trimCustomer returns the snapshot with every string field trimmed.
func trimCustomer(c model.Customer) model.Customer {
	return model.Customer{
		Name:    strings.TrimSpace(c.Name),
		Phone:   strings.TrimSpace(c.Phone),
		Email:   strings.TrimSpace(c.Email),
		Address: strings.TrimSpace(c.Address),
		City:    strings.TrimSpace(c.City),
		State:   strings.TrimSpace(c.State),
		Zip:     strings.TrimSpace(c.Zip),
		Note:    strings.TrimSpace(c.Note),
	}
}

// PlaceOrder requires an authenticated caller, validates the customer
// snapshot and items, and writes header plus items atomically.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, token string, customer model.Customer, items []model.OrderItem) (*model.Order, error) {
	u, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	customer = trimCustomer(customer)
	if customer.Name == "" || customer.Phone == "" || customer.Address == "" {
		return nil, fmt.Errorf("%w: customer name, phone and address are required", errs.ErrValidation)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", errs.ErrValidation)
	}
	clean := make([]model.OrderItem, 0, len(items))
	for i, it := range items {
		it.ProductID = strings.TrimSpace(it.ProductID)
		it.Title = strings.TrimSpace(it.Title)
		it.Category = strings.TrimSpace(it.Category)
		if it.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %d: quantity must be a positive integer", errs.ErrValidation, i)
		}
		clean = append(clean, it)
	}

	id, err := newOrderID()
	if err != nil {
		return nil, err
	}
	o := &model.Order{
		ID:       id,
		UserID:   u.ID,
		Customer: customer,
		Items:    clean,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// ListMyOrders requires an authenticated caller and returns its orders,
// possibly an empty slice.
func (s *OrderServiceImpl) ListMyOrders(ctx context.Context, token string) ([]model.Order, error) {
	u, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.orders.ListByUser(ctx, u.ID)
}
