package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ymgch/epg-comb/app/airtime"
)

// ProgramRepositoryImpl handles database operations for timeline records
type ProgramRepositoryImpl struct {
	db *DB
}

var _ ProgramRepository = (*ProgramRepositoryImpl)(nil)

func NewProgramRepository(db *DB) *ProgramRepositoryImpl {
	return &ProgramRepositoryImpl{db: db}
}

// Insert commits one record and returns the stored row. A duplicate
// program_id violates the unique index and surfaces as an error; records
// are never overwritten.
func (r *ProgramRepositoryImpl) Insert(p NewProgram) (*Program, error) {
	id := uuid.NewString()

	_, err := r.db.Exec(`
		INSERT INTO programs (id, station_id, program_id, ft, to_time, title, info, pfm, img)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, p.StationID, p.ProgramID, p.Ft, p.To, p.Title, p.Info, p.Pfm, p.Img)
	if err != nil {
		return nil, fmt.Errorf("failed to insert program %s: %w", p.ProgramID, err)
	}

	return r.getByColumn("id", id)
}

// GetByProgramID returns the record with the given deterministic identifier,
// or nil when absent.
func (r *ProgramRepositoryImpl) GetByProgramID(programID string) (*Program, error) {
	return r.getByColumn("program_id", programID)
}

// GetTimeline returns a station's records for one nominal broadcast date in
// start order. The day spans midnight of the date up to the extended 29:00
// boundary, which falls at 05:00 of the following calendar day.
func (r *ProgramRepositoryImpl) GetTimeline(stationID, date string) ([]Program, error) {
	lo, hi, err := timelineRange(date)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(`
		SELECT id, station_id, program_id, ft, to_time, title, info, pfm, img, created_at
		FROM programs
		WHERE station_id = ? AND ft >= ? AND ft < ?
		ORDER BY ft
	`, stationID, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}
	defer rows.Close()

	var programs []Program
	for rows.Next() {
		var p Program
		err := rows.Scan(&p.ID, &p.StationID, &p.ProgramID, &p.Ft, &p.To,
			&p.Title, &p.Info, &p.Pfm, &p.Img, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan program row: %w", err)
		}
		programs = append(programs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating program rows: %w", err)
	}

	return programs, nil
}

// GetOnAir returns the record covering the instant at (yyyyMMddHHmmss), or
// nil when nothing is on air.
func (r *ProgramRepositoryImpl) GetOnAir(stationID, at string) (*Program, error) {
	var p Program
	err := r.db.QueryRow(`
		SELECT id, station_id, program_id, ft, to_time, title, info, pfm, img, created_at
		FROM programs
		WHERE station_id = ? AND ft <= ? AND to_time > ?
		ORDER BY ft DESC
		LIMIT 1
	`, stationID, at, at).Scan(&p.ID, &p.StationID, &p.ProgramID, &p.Ft, &p.To,
		&p.Title, &p.Info, &p.Pfm, &p.Img, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get on-air program: %w", err)
	}

	return &p, nil
}

// DeleteTimeline removes a station's records for one nominal date and
// returns how many rows went away.
func (r *ProgramRepositoryImpl) DeleteTimeline(stationID, date string) (int, error) {
	lo, hi, err := timelineRange(date)
	if err != nil {
		return 0, err
	}

	res, err := r.db.Exec(`
		DELETE FROM programs
		WHERE station_id = ? AND ft >= ? AND ft < ?
	`, stationID, lo, hi)
	if err != nil {
		return 0, fmt.Errorf("failed to delete timeline: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted rows: %w", err)
	}

	return int(count), nil
}

// CountTimeline returns the number of records a station has for one date.
func (r *ProgramRepositoryImpl) CountTimeline(stationID, date string) (int, error) {
	lo, hi, err := timelineRange(date)
	if err != nil {
		return 0, err
	}

	var count int
	err = r.db.QueryRow(`
		SELECT COUNT(*) FROM programs
		WHERE station_id = ? AND ft >= ? AND ft < ?
	`, stationID, lo, hi).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count timeline: %w", err)
	}

	return count, nil
}

// CountAll returns the total number of committed records.
func (r *ProgramRepositoryImpl) CountAll() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM programs").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count programs: %w", err)
	}
	return count, nil
}

func (r *ProgramRepositoryImpl) getByColumn(column, value string) (*Program, error) {
	var p Program
	err := r.db.QueryRow(`
		SELECT id, station_id, program_id, ft, to_time, title, info, pfm, img, created_at
		FROM programs
		WHERE `+column+` = ?
	`, value).Scan(&p.ID, &p.StationID, &p.ProgramID, &p.Ft, &p.To,
		&p.Title, &p.Info, &p.Pfm, &p.Img, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get program: %w", err)
	}

	return &p, nil
}

// timelineRange resolves a nominal date into the [lo, hi) ft range covering
// its extended broadcast day.
func timelineRange(date string) (string, string, error) {
	d, err := airtime.ParseDate(date)
	if err != nil {
		return "", "", fmt.Errorf("bad timeline date %q: %w", date, err)
	}
	lo := string(d.DateTime().String())
	hi := string(d.AddDays(1).String()) + "050000"
	return lo, hi, nil
}
