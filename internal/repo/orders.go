package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/good-food/order-service/internal/entities"
	"github.com/good-food/order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ordersRepo persists orders across the orders and order_meals tables.
// Reads exclude records older than ttl since their creation date: the expiry
// contract holds even between sweeper runs.
type ordersRepo struct {
	db  *sqlx.DB
	qb  sq.StatementBuilderType
	ttl time.Duration
}

func NewOrdersRepo(db *sqlx.DB, ttl time.Duration) *ordersRepo {
	return &ordersRepo{
		db:  db,
		qb:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		ttl: ttl,
	}
}

func (r *ordersRepo) cutoff() time.Time {
	return time.Now().Add(-r.ttl)
}

func (r *ordersRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.qb.Select("id", "creation_date", "customer_id", "status").
		From("orders").
		Where(sq.Eq{"id": id}).
		Where(sq.Gt{"creation_date": r.cutoff()}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	lines, err := r.mealLines(ctx, []string{order.ID})
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, lines[order.ID]), nil
}

func (r *ordersRepo) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return r.listOrders(ctx, nil)
}

func (r *ordersRepo) ListOrdersByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error) {
	return r.listOrders(ctx, sq.Eq{"customer_id": customerID})
}

func (r *ordersRepo) ListOrdersByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	return r.listOrders(ctx, sq.Eq{"status": string(status)})
}

func (r *ordersRepo) listOrders(ctx context.Context, where any) ([]entities.Order, error) {
	builder := r.qb.Select("id", "creation_date", "customer_id", "status").
		From("orders").
		Where(sq.Gt{"creation_date": r.cutoff()})
	if where != nil {
		builder = builder.Where(where)
	}
	query, args := builder.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	lines, err := r.mealLines(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, lines[order.ID]))
	}
	return result, nil
}

func (r *ordersRepo) mealLines(ctx context.Context, orderIDs []string) (map[string][]MealLine, error) {
	query, args := r.qb.Select(
		"id", "order_id", "position", "creation_date",
		"description", "note", "quantity", "type").
		From("order_meals").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		MustSql()

	var lines []MealLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select meal lines: %w", err)
	}

	byOrder := make(map[string][]MealLine, len(orderIDs))
	for _, line := range lines {
		byOrder[line.OrderID] = append(byOrder[line.OrderID], line)
	}
	return byOrder, nil
}

// InsertOrder stores a new order and its meal lines, assigning the order id
// and ids for lines that arrived without one. Runs inside the caller's
// transaction when there is one.
func (r *ordersRepo) InsertOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.ID = uuid.NewString()

	query, args := r.qb.Insert("orders").
		Columns("id", "creation_date", "customer_id", "status").
		Values(o.ID, o.CreationDate, o.CustomerID, string(o.Status)).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	meals, err := r.insertMealLines(ctx, o.ID, o.Meals)
	if err != nil {
		return entities.Order{}, err
	}
	o.Meals = meals

	return o, nil
}

// UpdateOrder overwrites the order's status and replaces its meal lines
// wholesale. Customer id and creation date are never touched.
func (r *ordersRepo) UpdateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(o.Status)).
		Where(sq.Eq{"id": o.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	query, args = r.qb.Delete("order_meals").
		Where(sq.Eq{"order_id": o.ID}).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to clear meal lines: %w", err)
	}

	meals, err := r.insertMealLines(ctx, o.ID, o.Meals)
	if err != nil {
		return entities.Order{}, err
	}
	o.Meals = meals

	return o, nil
}

func (r *ordersRepo) DeleteOrder(ctx context.Context, id string) error {
	query, args := r.qb.Delete("order_meals").
		Where(sq.Eq{"order_id": id}).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete meal lines: %w", err)
	}

	query, args = r.qb.Delete("orders").
		Where(sq.Eq{"id": id}).
		MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

// DeleteExpiredOrders removes records whose expiry window has passed and
// reports how many orders were reclaimed.
func (r *ordersRepo) DeleteExpiredOrders(ctx context.Context) (int64, error) {
	cutoff := r.cutoff()

	query, args := r.qb.Delete("order_meals").
		Where("order_id IN (SELECT id FROM orders WHERE creation_date <= ?)", cutoff).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("failed to delete expired meal lines: %w", err)
	}

	query, args = r.qb.Delete("orders").
		Where(sq.LtOrEq{"creation_date": cutoff}).
		MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired orders: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *ordersRepo) insertMealLines(ctx context.Context, orderID string, meals []entities.MealLine) ([]entities.MealLine, error) {
	if len(meals) == 0 {
		return meals, nil
	}

	q := r.qb.Insert("order_meals").
		Columns("id", "order_id", "position", "creation_date", "description", "note", "quantity", "type")

	lines := make([]entities.MealLine, len(meals))
	for i, m := range meals {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		lines[i] = m
		q = q.Values(m.ID, orderID, i, m.CreationDate, m.Description, nullString(m.Note), m.Quantity, string(m.Type))
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to insert meal lines: %w", err)
	}
	return lines, nil
}

func (r *ordersRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *ordersRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *ordersRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
