// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents an account. PwdHash never leaves the service layer.
type User struct {
	ID        uuid.UUID // PK
	Name      string
	Email     string // unique, stored lowercased
	PwdHash   []byte // bcrypt hash, salt and cost embedded
	CreatedAt time.Time
}

// Session maps an opaque token to its owning user.
type Session struct {
	Token     string // 32 random bytes, base64url
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Customer is the contact/address snapshot captured at order time,
// independent of any later profile change.
type Customer struct {
	Name    string
	Phone   string
	Email   string
	Address string
	City    string
	State   string
	Zip     string
	Note    string
}

// OrderItem is a single line of an order, captured at order time.
type OrderItem struct {
	ProductID string
	Title     string
	Category  string
	Quantity  int
}

// Order is an order header plus its items in insertion order.
type Order struct {
	ID        string // e.g. "ORD-1756712345678-a1b2c3d4"
	UserID    uuid.UUID
	Customer  Customer
	Items     []OrderItem
	CreatedAt time.Time
}
