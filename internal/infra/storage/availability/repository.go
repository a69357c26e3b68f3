package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/dbmetrics"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/psqlbuilder"
)

var dayDefinitionColumns = []string{
	"id",
	"boat_id",
	"first_time",
	"hours_per_slot",
	"n_slots",
	"price_per_hour",
	"from_date",
	"to_date",
	"description",
	"n_slots_deal_threshold",
	"discount_when_deal",
	"resident_discount",
	"created_at",
	"updated_at",
}

// Repository репозиторий данных доступности:
// определения дней, дни, слоты и вариации цен
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetDayDefinition получает определение дня лодки, действующее на дату
func (r *Repository) GetDayDefinition(ctx context.Context, boatID int64, date time.Time) (*domain.DayDefinition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dayDefinitionColumns...).
		From("day_definitions").
		Where(squirrel.Eq{"boat_id": boatID}).
		Where(squirrel.LtOrEq{"from_date": date}).
		Where(squirrel.GtOrEq{"to_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDayDefinition - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanDayDefinition(executor.QueryRowContext(ctx, query, args...))
}

// GetDayDefinitionByID получает определение дня по ID
func (r *Repository) GetDayDefinitionByID(ctx context.Context, id int64) (*domain.DayDefinition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dayDefinitionColumns...).
		From("day_definitions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDayDefinitionByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanDayDefinition(executor.QueryRowContext(ctx, query, args...))
}

// FilterDayDefinitions возвращает все определения дней лодки
func (r *Repository) FilterDayDefinitions(ctx context.Context, boatID int64) ([]*domain.DayDefinition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(dayDefinitionColumns...).
		From("day_definitions").
		Where(squirrel.Eq{"boat_id": boatID}).
		OrderBy("from_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FilterDayDefinitions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FilterDayDefinitions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	definitions := make([]*domain.DayDefinition, 0)
	for rows.Next() {
		definition, err := r.scanDayDefinitionRow(rows)
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, definition)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FilterDayDefinitions - rows error: %v", ErrScanRow, err)
	}

	return definitions, nil
}

// GetDay получает день лодки на дату вместе со слотами
func (r *Repository) GetDay(ctx context.Context, boatID int64, date time.Time) (*domain.Day, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"d.id",
		"d.definition_id",
		"d.date",
	).
		From("days d").
		Join("day_definitions dd ON dd.id = d.definition_id").
		Where(squirrel.Eq{"dd.boat_id": boatID}).
		Where(squirrel.Eq{"d.date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDay - build select query: %v", ErrBuildQuery, err)
	}

	day, err := r.scanDay(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	if err := r.attachSlots(ctx, day); err != nil {
		return nil, err
	}

	return day, nil
}

// GetDayByID получает день по ID вместе со слотами
func (r *Repository) GetDayByID(ctx context.Context, id int64) (*domain.Day, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"definition_id",
		"date",
	).
		From("days").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDayByID - build select query: %v", ErrBuildQuery, err)
	}

	day, err := r.scanDay(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	if err := r.attachSlots(ctx, day); err != nil {
		return nil, err
	}

	return day, nil
}

// FilterPriceVariations возвращает вариации цен лодки, действующие на дату
// Порядок хранения (id ASC) важен: применяется только первая подходящая
func (r *Repository) FilterPriceVariations(ctx context.Context, boatID int64, date time.Time) ([]*domain.PriceVariation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"boat_id",
		"from_date",
		"to_date",
		"factor",
	).
		From("price_variations").
		Where(squirrel.Eq{"boat_id": boatID}).
		Where(squirrel.LtOrEq{"from_date": date}).
		Where(squirrel.GtOrEq{"to_date": date}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FilterPriceVariations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FilterPriceVariations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	variations := make([]*domain.PriceVariation, 0)
	for rows.Next() {
		var variation domain.PriceVariation
		err := rows.Scan(
			&variation.ID,
			&variation.BoatID,
			&variation.FromDate,
			&variation.ToDate,
			&variation.Factor,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: FilterPriceVariations - scan row: %v", ErrScanRow, err)
		}
		variations = append(variations, &variation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FilterPriceVariations - rows error: %v", ErrScanRow, err)
	}

	return variations, nil
}

// ExistsDaysForYear проверяет, сгенерированы ли уже дни на год
// для хотя бы одного из определений
func (r *Repository) ExistsDaysForYear(ctx context.Context, definitionIDs []int64, year int) (bool, error) {
	if len(definitionIDs) == 0 {
		return false, nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("days").
		Where(squirrel.Eq{"definition_id": definitionIDs}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsDaysForYear - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: ExistsDaysForYear - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// CreateDay создает день и возвращает его с присвоенным ID
func (r *Repository) CreateDay(ctx context.Context, definitionID int64, date time.Time) (*domain.Day, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("days").
		Columns("definition_id", "date").
		Values(definitionID, date).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateDay - build insert query: %v", ErrBuildQuery, err)
	}

	day := &domain.Day{DefinitionID: definitionID, Date: date}
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&day.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateDay - execute insert: %v", ErrExecQuery, err)
	}

	return day, nil
}

// CreateSlots создает слоты дня одним запросом
func (r *Repository) CreateSlots(ctx context.Context, slots []domain.Slot) ([]domain.Slot, error) {
	if len(slots) == 0 {
		return slots, nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("slots").
		Columns("day_id", "position", "from_hour", "to_hour", "booked")
	for _, slot := range slots {
		insert = insert.Values(slot.DayID, slot.Position, slot.FromHour, slot.ToHour, slot.Booked)
	}

	query, args, err := insert.Suffix("RETURNING id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateSlots - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateSlots - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for i := 0; rows.Next(); i++ {
		if err := rows.Scan(&slots[i].ID); err != nil {
			return nil, fmt.Errorf("%w: CreateSlots - scan id: %v", ErrScanRow, err)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// DeleteDaysForYear удаляет дни определений за год (слоты каскадом)
func (r *Repository) DeleteDaysForYear(ctx context.Context, definitionIDs []int64, year int) error {
	if len(definitionIDs) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	query, args, err := psqlbuilder.Delete("days").
		Where(squirrel.Eq{"definition_id": definitionIDs}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteDaysForYear - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteDaysForYear - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// GetSlotsByIDs возвращает слоты по ID, упорядоченные по позиции
// Внутри транзакции добавляет FOR UPDATE для защиты от дабл-букинга
func (r *Repository) GetSlotsByIDs(ctx context.Context, ids []int64) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"day_id",
		"position",
		"from_hour",
		"to_hour",
		"booked",
	).
		From("slots").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("position ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// MarkSlotsBooked помечает слоты забронированными
func (r *Repository) MarkSlotsBooked(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("booked", true).
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkSlotsBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkSlotsBooked - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkSlotsBooked - get rows affected: %v", ErrExecQuery, err)
	}
	if affected != int64(len(ids)) {
		return ErrSlotNotFound
	}

	return nil
}

// attachSlots загружает слоты дня
func (r *Repository) attachSlots(ctx context.Context, day *domain.Day) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"day_id",
		"position",
		"from_hour",
		"to_hour",
		"booked",
	).
		From("slots").
		Where(squirrel.Eq{"day_id": day.ID}).
		OrderBy("position ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots, err := r.scanSlots(rows)
	if err != nil {
		return err
	}

	day.Slots = slots
	return nil
}

func (r *Repository) scanSlots(rows *sql.Rows) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0)

	for rows.Next() {
		var slot domain.Slot
		err := rows.Scan(
			&slot.ID,
			&slot.DayID,
			&slot.Position,
			&slot.FromHour,
			&slot.ToHour,
			&slot.Booked,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

func (r *Repository) scanDay(row *sql.Row) (*domain.Day, error) {
	var day domain.Day
	err := row.Scan(&day.ID, &day.DefinitionID, &day.Date)
	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanDay - scan day: %v", ErrScanRow, err)
	}
	return &day, nil
}

func (r *Repository) scanDayDefinition(row *sql.Row) (*domain.DayDefinition, error) {
	var definition domain.DayDefinition
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&definition.ID,
		&definition.BoatID,
		&definition.FirstTime,
		&definition.HoursPerSlot,
		&definition.NSlots,
		&definition.PricePerHour,
		&definition.FromDate,
		&definition.ToDate,
		&definition.Description,
		&definition.NSlotsDealThreshold,
		&definition.DiscountWhenDeal,
		&definition.ResidentDiscount,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDayDefinitionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanDayDefinition - scan definition: %v", ErrScanRow, err)
	}

	definition.CreatedAt = createdAt.Time
	definition.UpdatedAt = updatedAt.Time

	return &definition, nil
}

func (r *Repository) scanDayDefinitionRow(rows *sql.Rows) (*domain.DayDefinition, error) {
	var definition domain.DayDefinition
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&definition.ID,
		&definition.BoatID,
		&definition.FirstTime,
		&definition.HoursPerSlot,
		&definition.NSlots,
		&definition.PricePerHour,
		&definition.FromDate,
		&definition.ToDate,
		&definition.Description,
		&definition.NSlotsDealThreshold,
		&definition.DiscountWhenDeal,
		&definition.ResidentDiscount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanDayDefinitionRow - scan row: %v", ErrScanRow, err)
	}

	definition.CreatedAt = createdAt.Time
	definition.UpdatedAt = updatedAt.Time

	return &definition, nil
}
