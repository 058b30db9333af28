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

type mealsRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewMealsRepo(db *sqlx.DB) *mealsRepo {
	return &mealsRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *mealsRepo) ListMeals(ctx context.Context) ([]entities.Meal, error) {
	query, args := r.qb.Select("id", "creation_date", "description", "note", "type").
		From("meals").
		MustSql()

	var meals []Meal
	if err := r.db.SelectContext(ctx, &meals, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select meals: %w", err)
	}

	result := make([]entities.Meal, 0, len(meals))
	for _, meal := range meals {
		result = append(result, MealToEntity(meal))
	}
	return result, nil
}

func (r *mealsRepo) GetMealByID(ctx context.Context, id string) (entities.Meal, error) {
	query, args := r.qb.Select("id", "creation_date", "description", "note", "type").
		From("meals").
		Where(sq.Eq{"id": id}).
		MustSql()

	var meal Meal
	err := r.db.GetContext(ctx, &meal, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Meal{}, entities.ErrMealNotFound
	}
	if err != nil {
		return entities.Meal{}, fmt.Errorf("failed to get meal: %w", err)
	}
	return MealToEntity(meal), nil
}

func (r *mealsRepo) InsertMeal(ctx context.Context, m entities.Meal) (entities.Meal, error) {
	m.ID = uuid.NewString()

	query, args := r.qb.Insert("meals").
		Columns("id", "creation_date", "description", "note", "type").
		Values(m.ID, m.CreationDate, m.Description, nullString(m.Note), string(m.Type)).
		MustSql()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return entities.Meal{}, fmt.Errorf("failed to insert meal: %w", err)
	}
	return m, nil
}

func (r *mealsRepo) UpdateMeal(ctx context.Context, m entities.Meal) (entities.Meal, error) {
	query, args := r.qb.Update("meals").
		Set("description", m.Description).
		Set("note", nullString(m.Note)).
		Set("type", string(m.Type)).
		Where(sq.Eq{"id": m.ID}).
		MustSql()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return entities.Meal{}, fmt.Errorf("failed to update meal: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.Meal{}, entities.ErrMealNotFound
	}
	return m, nil
}

func (r *mealsRepo) DeleteMeal(ctx context.Context, id string) error {
	query, args := r.qb.Delete("meals").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrMealNotFound
	}
	return nil
}
