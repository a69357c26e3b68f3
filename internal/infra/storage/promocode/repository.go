package promocode

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/dbmetrics"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с промокодами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промокодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает промокод
func (r *Repository) Create(ctx context.Context, promocode *domain.Promocode) (*domain.Promocode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("promocodes").
		Columns(
			"name",
			"use_from",
			"use_to",
			"booking_from",
			"booking_to",
			"factor",
			"limit_of_uses",
			"number_of_uses",
		).
		Values(
			promocode.Name,
			promocode.UseFrom,
			promocode.UseTo,
			promocode.BookingFrom,
			promocode.BookingTo,
			promocode.Factor,
			promocode.LimitOfUses,
			promocode.NumberOfUses,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&promocode.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrPromocodeExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	promocode.CreatedAt = createdAt.Time
	promocode.UpdatedAt = updatedAt.Time

	return promocode, nil
}

// GetValid получает промокод по имени, валидный для использования
// в useDay и для бронирования на bookingDay, с неисчерпанным лимитом
func (r *Repository) GetValid(ctx context.Context, name string, useDay, bookingDay time.Time) (*domain.Promocode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"use_from",
		"use_to",
		"booking_from",
		"booking_to",
		"factor",
		"limit_of_uses",
		"number_of_uses",
		"created_at",
		"updated_at",
	).
		From("promocodes").
		Where(squirrel.Eq{"name": name}).
		Where(squirrel.LtOrEq{"use_from": useDay}).
		Where(squirrel.GtOrEq{"use_to": useDay}).
		Where(squirrel.LtOrEq{"booking_from": bookingDay}).
		Where(squirrel.GtOrEq{"booking_to": bookingDay}).
		Where(squirrel.Expr("number_of_uses < limit_of_uses")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetValid - build select query: %v", ErrBuildQuery, err)
	}

	var promocode domain.Promocode
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&promocode.ID,
		&promocode.Name,
		&promocode.UseFrom,
		&promocode.UseTo,
		&promocode.BookingFrom,
		&promocode.BookingTo,
		&promocode.Factor,
		&promocode.LimitOfUses,
		&promocode.NumberOfUses,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPromocodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetValid - scan promocode: %v", ErrScanRow, err)
	}

	promocode.CreatedAt = createdAt.Time
	promocode.UpdatedAt = updatedAt.Time

	return &promocode, nil
}

// IncrementUses увеличивает счетчик использований промокода
// Инкремент атомарный, на стороне БД
func (r *Repository) IncrementUses(ctx context.Context, name string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promocodes").
		Set("number_of_uses", squirrel.Expr("number_of_uses + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"name": name}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementUses - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementUses - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementUses - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrPromocodeNotFound
	}

	return nil
}
