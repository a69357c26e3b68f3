package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/dbmetrics"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"locator",
	"price",
	"date",
	"checkin_hour",
	"checkout_hour",
	"customer_name",
	"customer_email",
	"customer_telephone_number",
	"status",
	"session_id",
	"extras",
	"promocode",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование и связывает его со слотами
// Вызывается внутри сериализуемой транзакции usecase создания бронирования
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"locator",
			"price",
			"date",
			"checkin_hour",
			"checkout_hour",
			"customer_name",
			"customer_email",
			"customer_telephone_number",
			"status",
			"session_id",
			"extras",
			"promocode",
		).
		Values(
			booking.Locator,
			booking.Price,
			booking.Date,
			booking.CheckinHour,
			booking.CheckoutHour,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerTelephoneNumber,
			booking.Status,
			booking.SessionID,
			booking.Extras,
			booking.Promocode,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	if err := r.insertBookingSlots(ctx, booking.ID, booking.SlotIDs); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetBySessionID получает бронирование по ID сессии платежного шлюза
func (r *Repository) GetBySessionID(ctx context.Context, sessionID string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"session_id": sessionID})
}

// GetByLocator получает бронирование по локатору
func (r *Repository) GetByLocator(ctx context.Context, locator string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"locator": locator})
}

// UpdateSessionID заменяет ID сессии платежного шлюза
func (r *Repository) UpdateSessionID(ctx context.Context, id int64, sessionID string) error {
	return r.update(ctx, id, map[string]interface{}{"session_id": sessionID})
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.update(ctx, id, map[string]interface{}{"status": status})
}

// SetCustomerEmail сохраняет email клиента, полученный из платежного события
func (r *Repository) SetCustomerEmail(ctx context.Context, id int64, email string) error {
	return r.update(ctx, id, map[string]interface{}{"customer_email": email})
}

func (r *Repository) update(ctx context.Context, id int64, values map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
	for column, value := range values {
		updateBuilder = updateBuilder.Set(column, value)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: update - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.Locator,
		&booking.Price,
		&booking.Date,
		&booking.CheckinHour,
		&booking.CheckoutHour,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerTelephoneNumber,
		&booking.Status,
		&booking.SessionID,
		&booking.Extras,
		&booking.Promocode,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	if err := r.attachSlotIDs(ctx, &booking); err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *Repository) insertBookingSlots(ctx context.Context, bookingID int64, slotIDs []int64) error {
	if len(slotIDs) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("booking_slots").Columns("booking_id", "slot_id")
	for _, slotID := range slotIDs {
		insert = insert.Values(bookingID, slotID)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertBookingSlots - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertBookingSlots - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) attachSlotIDs(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("bs.slot_id").
		From("booking_slots bs").
		Join("slots s ON s.id = bs.slot_id").
		Where(squirrel.Eq{"bs.booking_id": booking.ID}).
		OrderBy("s.position ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachSlotIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachSlotIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slotIDs := make([]int64, 0)
	for rows.Next() {
		var slotID int64
		if err := rows.Scan(&slotID); err != nil {
			return fmt.Errorf("%w: attachSlotIDs - scan slot_id: %v", ErrScanRow, err)
		}
		slotIDs = append(slotIDs, slotID)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachSlotIDs - rows error: %v", ErrScanRow, err)
	}

	booking.SlotIDs = slotIDs
	return nil
}
