package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/platform/logger"
	"github.com/voyago/voyago-api/internal/store"
)

// PostgresSingleCityItineraryStore implements store.SingleCityItineraryStore.
// The location sequence is stored as a JSONB document column, keeping each
// itinerary a single row so location updates are atomic per-record writes.
type PostgresSingleCityItineraryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSingleCityItineraryStore creates a new PostgreSQL implementation
// of the SingleCityItineraryStore interface.
func NewPostgresSingleCityItineraryStore(
	db store.DBTX,
	logger *slog.Logger,
) *PostgresSingleCityItineraryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSingleCityItineraryStore{
		db:     db,
		logger: logger.With(slog.String("component", "single_city_itinerary_store")),
	}
}

// Ensure the interface is implemented.
var _ store.SingleCityItineraryStore = (*PostgresSingleCityItineraryStore)(nil)

// Create implements store.SingleCityItineraryStore.Create
// Returns store.ErrInvalidEntity if the owner does not exist.
func (s *PostgresSingleCityItineraryStore) Create(
	ctx context.Context,
	itinerary *domain.SingleCityItinerary,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := itinerary.Validate(); err != nil {
		log.Warn("itinerary validation failed during create",
			slog.String("error", err.Error()),
			slog.String("itinerary_id", itinerary.ID.String()))
		return err
	}

	locationsJSON, err := json.Marshal(itinerary.Locations)
	if err != nil {
		return fmt.Errorf("failed to marshal locations: %w", err)
	}

	query := `
		INSERT INTO single_city_itineraries
			(id, user_id, city_name, number_of_locations, organized_geographically,
			 generation_status, locations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		itinerary.ID,
		itinerary.UserID,
		itinerary.CityName,
		itinerary.NumberOfLocations,
		itinerary.OrganizedGeographically,
		itinerary.GenerationStatus,
		locationsJSON,
		itinerary.CreatedAt,
		itinerary.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during itinerary creation",
				slog.String("itinerary_id", itinerary.ID.String()),
				slog.String("user_id", itinerary.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, itinerary.UserID)
		}

		log.Error("failed to create single-city itinerary",
			slog.String("error", err.Error()),
			slog.String("itinerary_id", itinerary.ID.String()))
		return MapError(err)
	}

	log.Info("single-city itinerary created",
		slog.String("itinerary_id", itinerary.ID.String()),
		slog.String("user_id", itinerary.UserID.String()),
		slog.String("city", itinerary.CityName))
	return nil
}

// GetByID implements store.SingleCityItineraryStore.GetByID
// Returns store.ErrItineraryNotFound if the itinerary does not exist.
func (s *PostgresSingleCityItineraryStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.SingleCityItinerary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, city_name, number_of_locations, organized_geographically,
		       generation_status, locations, created_at, updated_at
		FROM single_city_itineraries
		WHERE id = $1
	`

	itinerary, err := scanSingleCityItinerary(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("single-city itinerary not found",
				slog.String("itinerary_id", id.String()))
			return nil, store.ErrItineraryNotFound
		}
		log.Error("failed to get single-city itinerary",
			slog.String("error", err.Error()),
			slog.String("itinerary_id", id.String()))
		return nil, MapError(err)
	}

	return itinerary, nil
}

// FindByUser implements store.SingleCityItineraryStore.FindByUser
func (s *PostgresSingleCityItineraryStore) FindByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.SingleCityItinerary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, city_name, number_of_locations, organized_geographically,
		       generation_status, locations, created_at, updated_at
		FROM single_city_itineraries
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query single-city itineraries by user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	itineraries := []*domain.SingleCityItinerary{}
	for rows.Next() {
		itinerary, err := scanSingleCityItinerary(rows)
		if err != nil {
			log.Error("failed to scan itinerary row",
				slog.String("error", err.Error()))
			return nil, err
		}
		itineraries = append(itineraries, itinerary)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return itineraries, nil
}

// UpdateLocations implements store.SingleCityItineraryStore.UpdateLocations
// The location sequence, the stored count and the generation status change in
// one write so readers never observe them out of step.
func (s *PostgresSingleCityItineraryStore) UpdateLocations(
	ctx context.Context,
	id uuid.UUID,
	locations []domain.Location,
	status domain.GenerationStatus,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if locations == nil {
		locations = []domain.Location{}
	}

	locationsJSON, err := json.Marshal(locations)
	if err != nil {
		return fmt.Errorf("failed to marshal locations: %w", err)
	}

	query := `
		UPDATE single_city_itineraries
		SET locations = $1, number_of_locations = $2, generation_status = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		locationsJSON,
		len(locations),
		status,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		log.Error("failed to update itinerary locations",
			slog.String("error", err.Error()),
			slog.String("itinerary_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "itinerary"); err != nil {
		log.Debug("itinerary not found for locations update",
			slog.String("itinerary_id", id.String()))
		return store.ErrItineraryNotFound
	}

	log.Info("itinerary locations updated",
		slog.String("itinerary_id", id.String()),
		slog.Int("location_count", len(locations)),
		slog.String("status", string(status)))
	return nil
}

// SetGenerationStatus implements store.SingleCityItineraryStore.SetGenerationStatus
func (s *PostgresSingleCityItineraryStore) SetGenerationStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.GenerationStatus,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE single_city_itineraries
		SET generation_status = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to update generation status",
			slog.String("error", err.Error()),
			slog.String("itinerary_id", id.String()),
			slog.String("status", string(status)))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "itinerary"); err != nil {
		return store.ErrItineraryNotFound
	}

	log.Info("generation status updated",
		slog.String("itinerary_id", id.String()),
		slog.String("status", string(status)))
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSingleCityItinerary(row rowScanner) (*domain.SingleCityItinerary, error) {
	var itinerary domain.SingleCityItinerary
	var status string
	var locationsJSON []byte

	err := row.Scan(
		&itinerary.ID,
		&itinerary.UserID,
		&itinerary.CityName,
		&itinerary.NumberOfLocations,
		&itinerary.OrganizedGeographically,
		&status,
		&locationsJSON,
		&itinerary.CreatedAt,
		&itinerary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	itinerary.GenerationStatus = domain.GenerationStatus(status)
	if err := json.Unmarshal(locationsJSON, &itinerary.Locations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal locations: %w", err)
	}
	if itinerary.Locations == nil {
		itinerary.Locations = []domain.Location{}
	}

	return &itinerary, nil
}

// PostgresMultiCityItineraryStore implements store.MultiCityItineraryStore.
// City entries are stored as a JSONB document column.
type PostgresMultiCityItineraryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMultiCityItineraryStore creates a new PostgreSQL implementation
// of the MultiCityItineraryStore interface.
func NewPostgresMultiCityItineraryStore(
	db store.DBTX,
	logger *slog.Logger,
) *PostgresMultiCityItineraryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMultiCityItineraryStore{
		db:     db,
		logger: logger.With(slog.String("component", "multi_city_itinerary_store")),
	}
}

// Ensure the interface is implemented.
var _ store.MultiCityItineraryStore = (*PostgresMultiCityItineraryStore)(nil)

// Create implements store.MultiCityItineraryStore.Create
// Returns store.ErrInvalidEntity if the owner does not exist.
func (s *PostgresMultiCityItineraryStore) Create(
	ctx context.Context,
	itinerary *domain.MultiCityItinerary,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := itinerary.Validate(); err != nil {
		log.Warn("itinerary validation failed during create",
			slog.String("error", err.Error()),
			slog.String("itinerary_id", itinerary.ID.String()))
		return err
	}

	citiesJSON, err := json.Marshal(itinerary.Cities)
	if err != nil {
		return fmt.Errorf("failed to marshal cities: %w", err)
	}

	query := `
		INSERT INTO multi_city_itineraries (id, user_id, cities, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		itinerary.ID,
		itinerary.UserID,
		citiesJSON,
		itinerary.CreatedAt,
		itinerary.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during itinerary creation",
				slog.String("itinerary_id", itinerary.ID.String()),
				slog.String("user_id", itinerary.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, itinerary.UserID)
		}

		log.Error("failed to create multi-city itinerary",
			slog.String("error", err.Error()),
			slog.String("itinerary_id", itinerary.ID.String()))
		return MapError(err)
	}

	log.Info("multi-city itinerary created",
		slog.String("itinerary_id", itinerary.ID.String()),
		slog.String("user_id", itinerary.UserID.String()),
		slog.Int("city_count", len(itinerary.Cities)))
	return nil
}

// GetByID implements store.MultiCityItineraryStore.GetByID
// Returns store.ErrItineraryNotFound if the itinerary does not exist.
func (s *PostgresMultiCityItineraryStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.MultiCityItinerary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, cities, created_at, updated_at
		FROM multi_city_itineraries
		WHERE id = $1
	`

	itinerary, err := scanMultiCityItinerary(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("multi-city itinerary not found",
				slog.String("itinerary_id", id.String()))
			return nil, store.ErrItineraryNotFound
		}
		log.Error("failed to get multi-city itinerary",
			slog.String("error", err.Error()),
			slog.String("itinerary_id", id.String()))
		return nil, MapError(err)
	}

	return itinerary, nil
}

// FindByUser implements store.MultiCityItineraryStore.FindByUser
func (s *PostgresMultiCityItineraryStore) FindByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.MultiCityItinerary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, cities, created_at, updated_at
		FROM multi_city_itineraries
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query multi-city itineraries by user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	itineraries := []*domain.MultiCityItinerary{}
	for rows.Next() {
		itinerary, err := scanMultiCityItinerary(rows)
		if err != nil {
			log.Error("failed to scan itinerary row",
				slog.String("error", err.Error()))
			return nil, err
		}
		itineraries = append(itineraries, itinerary)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return itineraries, nil
}

func scanMultiCityItinerary(row rowScanner) (*domain.MultiCityItinerary, error) {
	var itinerary domain.MultiCityItinerary
	var citiesJSON []byte

	err := row.Scan(
		&itinerary.ID,
		&itinerary.UserID,
		&citiesJSON,
		&itinerary.CreatedAt,
		&itinerary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(citiesJSON, &itinerary.Cities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cities: %w", err)
	}

	return &itinerary, nil
}
