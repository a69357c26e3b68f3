package boat

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/boatsandjoy/BNJ-BookingService/internal/domain"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/dbmetrics"
	"github.com/boatsandjoy/BNJ-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с лодками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория лодок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FilterActive возвращает все активные лодки вместе с фотографиями
func (r *Repository) FilterActive(ctx context.Context) ([]*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"active",
		"created_at",
		"updated_at",
	).
		From("boats").
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FilterActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FilterActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	boats, err := r.scanBoats(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachPhotos(ctx, boats); err != nil {
		return nil, err
	}

	return boats, nil
}

// GetByID получает лодку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"active",
		"created_at",
		"updated_at",
	).
		From("boats").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var boat domain.Boat
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&boat.ID,
		&boat.Name,
		&boat.Description,
		&boat.Active,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBoatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan boat: %v", ErrScanRow, err)
	}

	boat.CreatedAt = createdAt.Time
	boat.UpdatedAt = updatedAt.Time

	if err := r.attachPhotos(ctx, []*domain.Boat{&boat}); err != nil {
		return nil, err
	}

	return &boat, nil
}

// attachPhotos загружает фотографии для набора лодок одним запросом
func (r *Repository) attachPhotos(ctx context.Context, boats []*domain.Boat) error {
	if len(boats) == 0 {
		return nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	boatIDs := make([]int64, len(boats))
	byID := make(map[int64]*domain.Boat, len(boats))
	for i, boat := range boats {
		boatIDs[i] = boat.ID
		byID[boat.ID] = boat
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"boat_id",
		"url",
		"description",
	).
		From("boat_photos").
		Where(squirrel.Eq{"boat_id": boatIDs}).
		OrderBy("boat_id ASC, id ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachPhotos - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachPhotos - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var photo domain.BoatPhoto
		if err := rows.Scan(&photo.ID, &photo.BoatID, &photo.URL, &photo.Description); err != nil {
			return fmt.Errorf("%w: attachPhotos - scan row: %v", ErrScanRow, err)
		}
		if boat, ok := byID[photo.BoatID]; ok {
			boat.Photos = append(boat.Photos, photo)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachPhotos - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// scanBoats сканирует результаты запроса в слайс лодок
func (r *Repository) scanBoats(rows *sql.Rows) ([]*domain.Boat, error) {
	boats := make([]*domain.Boat, 0)

	for rows.Next() {
		var boat domain.Boat
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&boat.ID,
			&boat.Name,
			&boat.Description,
			&boat.Active,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBoats - scan row: %v", ErrScanRow, err)
		}

		boat.CreatedAt = createdAt.Time
		boat.UpdatedAt = updatedAt.Time

		boats = append(boats, &boat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBoats - rows error: %v", ErrScanRow, err)
	}

	return boats, nil
}
