package postgres

import (
	"context"

	"github.com/akulagin/shopapi/internal/errs"
	"github.com/akulagin/shopapi/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// OrderRepo implements OrderRepository using PostgreSQL.
type OrderRepo struct{ db *DB }

// NewOrderRepo constructs an order repository.
func NewOrderRepo(db *DB) *OrderRepo { return &OrderRepo{db: db} }

// Create inserts the order header and all items in one transaction.
// If any item insert fails the whole order rolls back, so a reader never
// observes a header without its items.
func (r *OrderRepo) Create(ctx context.Context, o *model.Order) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const insOrder = `
INSERT INTO orders (id, user_id, customer_name, customer_phone, customer_email,
                    customer_address, customer_city, customer_state, customer_zip, customer_note)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING created_at`
	c := o.Customer
	if err = tx.QueryRow(ctx, insOrder,
		o.ID, o.UserID, c.Name, c.Phone, c.Email, c.Address, c.City, c.State, c.Zip, c.Note,
	).Scan(&o.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			err = errs.ErrAlreadyExists
		}
		return err
	}

	// pos preserves insertion order on read-back; the serial PK alone would
	// also work but is an implementation detail of the table.
	const insItem = `
INSERT INTO order_items (order_id, pos, product_id, title, category, quantity)
VALUES ($1, $2, $3, $4, $5, $6)`
	for i, it := range o.Items {
		if _, err = tx.Exec(ctx, insItem, o.ID, i, it.ProductID, it.Title, it.Category, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// ListByUser returns the user's orders newest-first with items attached in
// insertion order. Rows come back in a single pass per table and are
// reassembled in memory.
func (r *OrderRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	const qOrders = `
SELECT id, user_id, customer_name, customer_phone, customer_email,
       customer_address, customer_city, customer_state, customer_zip, customer_note, created_at
FROM orders
WHERE user_id=$1
ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Pool.Query(ctx, qOrders, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Order{}
	index := map[string]int{}
	for rows.Next() {
		var o model.Order
		c := &o.Customer
		if err = rows.Scan(&o.ID, &o.UserID, &c.Name, &c.Phone, &c.Email,
			&c.Address, &c.City, &c.State, &c.Zip, &c.Note, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Items = []model.OrderItem{}
		index[o.ID] = len(out)
		out = append(out, o)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	const qItems = `
SELECT i.order_id, i.product_id, i.title, i.category, i.quantity
FROM order_items i
JOIN orders o ON o.id = i.order_id
WHERE o.user_id=$1
ORDER BY i.order_id, i.pos`
	irows, err := r.db.Pool.Query(ctx, qItems, userID)
	if err != nil {
		return nil, err
	}
	defer irows.Close()

	for irows.Next() {
		var orderID string
		var it model.OrderItem
		if err = irows.Scan(&orderID, &it.ProductID, &it.Title, &it.Category, &it.Quantity); err != nil {
			return nil, err
		}
		if n, ok := index[orderID]; ok {
			out[n].Items = append(out[n].Items, it)
		}
	}
	return out, irows.Err()
}
