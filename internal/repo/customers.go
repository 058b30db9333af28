package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/good-food/order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type customersRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewCustomersRepo(db *sqlx.DB) *customersRepo {
	return &customersRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *customersRepo) GetCustomerByID(ctx context.Context, id string) (entities.Customer, error) {
	query, args := r.qb.Select("id", "creation_date", "name", "surname", "suid").
		From("customers").
		Where(sq.Eq{"id": id}).
		MustSql()

	return r.getCustomer(ctx, query, args)
}

func (r *customersRepo) GetCustomerBySuid(ctx context.Context, suid string) (entities.Customer, error) {
	query, args := r.qb.Select("id", "creation_date", "name", "surname", "suid").
		From("customers").
		Where(sq.Eq{"suid": suid}).
		MustSql()

	return r.getCustomer(ctx, query, args)
}

func (r *customersRepo) getCustomer(ctx context.Context, query string, args []any) (entities.Customer, error) {
	var customer Customer
	err := r.db.GetContext(ctx, &customer, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return CustomerToEntity(customer), nil
}

func (r *customersRepo) InsertCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.ID = uuid.NewString()

	query, args := r.qb.Insert("customers").
		Columns("id", "creation_date", "name", "surname", "suid").
		Values(c.ID, c.CreationDate, c.Name, nullString(c.Surname), c.Suid).
		MustSql()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return entities.Customer{}, fmt.Errorf("failed to insert customer: %w", err)
	}
	return c, nil
}

func (r *customersRepo) UpdateCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	query, args := r.qb.Update("customers").
		Set("name", c.Name).
		Set("surname", nullString(c.Surname)).
		Set("suid", c.Suid).
		Where(sq.Eq{"id": c.ID}).
		MustSql()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to update customer: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	return c, nil
}

func (r *customersRepo) DeleteCustomer(ctx context.Context, id string) error {
	query, args := r.qb.Delete("customers").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrCustomerNotFound
	}
	return nil
}
