package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// StationRepositoryImpl handles database operations for stations
type StationRepositoryImpl struct {
	db *DB
}

var _ StationRepository = (*StationRepositoryImpl)(nil)

func NewStationRepository(db *DB) *StationRepositoryImpl {
	return &StationRepositoryImpl{db: db}
}

// Upsert registers a station or refreshes its name, area and ingestion
// timestamp.
func (r *StationRepositoryImpl) Upsert(stationID, name, areaID string) error {
	_, err := r.db.Exec(`
		INSERT INTO stations (id, station_id, name, area_id, last_ingested_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (station_id) DO UPDATE SET
			name = excluded.name,
			area_id = excluded.area_id,
			last_ingested_at = CURRENT_TIMESTAMP,
			updated_at = CURRENT_TIMESTAMP
	`, uuid.NewString(), stationID, name, areaID)
	if err != nil {
		return fmt.Errorf("failed to upsert station %s: %w", stationID, err)
	}

	return nil
}

// Get returns a station by its feed identifier, or nil when unknown.
func (r *StationRepositoryImpl) Get(stationID string) (*Station, error) {
	var s Station
	err := r.db.QueryRow(`
		SELECT id, station_id, name, area_id, last_ingested_at, created_at, updated_at
		FROM stations
		WHERE station_id = ?
	`, stationID).Scan(&s.ID, &s.StationID, &s.Name, &s.AreaID,
		&s.LastIngestedAt, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get station: %w", err)
	}

	return &s, nil
}

// List returns all known stations ordered by identifier.
func (r *StationRepositoryImpl) List() ([]Station, error) {
	rows, err := r.db.Query(`
		SELECT id, station_id, name, area_id, last_ingested_at, created_at, updated_at
		FROM stations
		ORDER BY station_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}
	defer rows.Close()

	var stations []Station
	for rows.Next() {
		var s Station
		err := rows.Scan(&s.ID, &s.StationID, &s.Name, &s.AreaID,
			&s.LastIngestedAt, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan station row: %w", err)
		}
		stations = append(stations, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating station rows: %w", err)
	}

	return stations, nil
}

// GetCount returns the number of known stations.
func (r *StationRepositoryImpl) GetCount() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM stations").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get station count: %w", err)
	}
	return count, nil
}
