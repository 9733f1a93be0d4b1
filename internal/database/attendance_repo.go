package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/teamtrack/attendance-bot/internal/domain/contract"
	"github.com/teamtrack/attendance-bot/internal/domain/entity"
)

type attendanceRepo struct {
	db dbConn
}

func newAttendanceRepo(db dbConn) contract.AttendanceRepo {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) UpsertEntry(personID int64, date, entryTime string, statusID int64) error {
	// Upsert keyed by (person_id, date): a second entry on the same day
	// overwrites entry time and status instead of failing.
	query := `
		INSERT INTO attendance (person_id, date, entry_time, status_id)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(person_id, date) DO UPDATE SET
			entry_time = excluded.entry_time,
			status_id = excluded.status_id
	`

	_, err := r.db.Exec(query, personID, date, entryTime, statusID)
	if err != nil {
		return fmt.Errorf("failed to upsert entry: %w", err)
	}

	return nil
}

func (r *attendanceRepo) CloseExit(personID int64, date, exitTime, overtimePending, noteAppend string) (int64, error) {
	// The exit_time IS NULL predicate makes a second exit attempt a no-op.
	query := `
		UPDATE attendance
		SET exit_time = ?, overtime_pending = ?, notes = notes || ?
		WHERE person_id = ? AND date = ? AND exit_time IS NULL
	`

	result, err := r.db.Exec(query, exitTime, overtimePending, noteAppend, personID, date)
	if err != nil {
		return 0, fmt.Errorf("failed to close exit: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected, nil
}

func (r *attendanceRepo) GetByPersonAndDate(personID int64, date string) (*entity.AttendanceDay, error) {
	day := &entity.AttendanceDay{}
	query := `
		SELECT id, person_id, date, entry_time, exit_time, status_id, overtime_pending, notes
		FROM attendance
		WHERE person_id = ? AND date = ?
	`

	err := r.db.QueryRow(query, personID, date).Scan(
		&day.ID,
		&day.PersonID,
		&day.Date,
		&day.EntryTime,
		&day.ExitTime,
		&day.StatusID,
		&day.OvertimePending,
		&day.Notes,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance day: %w", err)
	}

	return day, nil
}

func (r *attendanceRepo) Insert(day *entity.AttendanceDay) error {
	query := `
		INSERT INTO attendance (person_id, date, entry_time, exit_time, status_id, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		day.PersonID,
		day.Date,
		day.EntryTime,
		day.ExitTime,
		day.StatusID,
		day.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert attendance day: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	day.ID = id
	return nil
}

func (r *attendanceRepo) UpdateFields(personID int64, date string, entryTime, exitTime *string, statusID *int64) error {
	var sets []string
	var params []interface{}

	if entryTime != nil {
		sets = append(sets, "entry_time = ?")
		params = append(params, *entryTime)
	}
	if exitTime != nil {
		sets = append(sets, "exit_time = ?")
		params = append(params, *exitTime)
	}
	if statusID != nil {
		sets = append(sets, "status_id = ?")
		params = append(params, *statusID)
	}

	if len(sets) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE attendance SET %s WHERE person_id = ? AND date = ?`, strings.Join(sets, ", "))
	params = append(params, personID, date)

	_, err := r.db.Exec(query, params...)
	if err != nil {
		return fmt.Errorf("failed to update attendance fields: %w", err)
	}

	return nil
}

func (r *attendanceRepo) CountOpenSessions(date string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM attendance
		WHERE date = ? AND entry_time IS NOT NULL AND exit_time IS NULL
	`

	var count int
	if err := r.db.QueryRow(query, date).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count open sessions: %w", err)
	}

	return count, nil
}

func (r *attendanceRepo) CountDay(date string) (int, error) {
	query := `SELECT COUNT(*) FROM attendance WHERE date = ?`

	var count int
	if err := r.db.QueryRow(query, date).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendance rows: %w", err)
	}

	return count, nil
}

func (r *attendanceRepo) ListDay(date string) ([]*entity.ReportRow, error) {
	query := `
		SELECT a.date, p.full_name, a.entry_time, a.exit_time, s.name
		FROM attendance a
		JOIN persons p ON p.id = a.person_id
		JOIN attendance_status s ON s.id = a.status_id
		WHERE a.date = ?
		ORDER BY a.entry_time ASC
	`

	return r.queryReportRows(query, date)
}

func (r *attendanceRepo) ListAll() ([]*entity.ReportRow, error) {
	query := `
		SELECT a.date, p.full_name, a.entry_time, a.exit_time, s.name
		FROM attendance a
		JOIN persons p ON p.id = a.person_id
		JOIN attendance_status s ON s.id = a.status_id
		ORDER BY a.date DESC, p.full_name ASC
	`

	return r.queryReportRows(query)
}

func (r *attendanceRepo) queryReportRows(query string, args ...interface{}) ([]*entity.ReportRow, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query report rows: %w", err)
	}
	defer rows.Close()

	var result []*entity.ReportRow
	for rows.Next() {
		row := &entity.ReportRow{}
		err := rows.Scan(
			&row.Date,
			&row.FullName,
			&row.EntryTime,
			&row.ExitTime,
			&row.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

func (r *attendanceRepo) ListClosedByPerson(personID int64) ([]*entity.SessionRow, error) {
	query := `
		SELECT a.person_id, p.external_id, p.full_name, a.entry_time, a.exit_time
		FROM attendance a
		JOIN persons p ON p.id = a.person_id
		WHERE a.person_id = ? AND a.entry_time IS NOT NULL AND a.exit_time IS NOT NULL
	`

	return r.querySessionRows(query, personID)
}

func (r *attendanceRepo) ListClosed() ([]*entity.SessionRow, error) {
	query := `
		SELECT a.person_id, p.external_id, p.full_name, a.entry_time, a.exit_time
		FROM attendance a
		JOIN persons p ON p.id = a.person_id
		WHERE a.entry_time IS NOT NULL AND a.exit_time IS NOT NULL
	`

	return r.querySessionRows(query)
}

func (r *attendanceRepo) querySessionRows(query string, args ...interface{}) ([]*entity.SessionRow, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var result []*entity.SessionRow
	for rows.Next() {
		row := &entity.SessionRow{}
		err := rows.Scan(
			&row.PersonID,
			&row.ExternalID,
			&row.FullName,
			&row.EntryTime,
			&row.ExitTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

func (r *attendanceRepo) ListOvertimeIncidents() ([]*entity.OvertimeIncident, error) {
	// overtime_pending is fixed-width HH:MM:SS, so string comparison against
	// the zero value is a duration comparison.
	query := `
		SELECT p.external_id, p.full_name, a.date, a.overtime_pending, a.exit_time
		FROM attendance a
		JOIN persons p ON p.id = a.person_id
		WHERE a.overtime_pending > '00:00:00'
		ORDER BY a.date DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query overtime incidents: %w", err)
	}
	defer rows.Close()

	var incidents []*entity.OvertimeIncident
	for rows.Next() {
		incident := &entity.OvertimeIncident{}
		err := rows.Scan(
			&incident.ExternalID,
			&incident.FullName,
			&incident.Date,
			&incident.OvertimePending,
			&incident.ExitTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime incident: %w", err)
		}
		incidents = append(incidents, incident)
	}

	return incidents, nil
}

func (r *attendanceRepo) GetPendingOvertime(externalID int64, date string) (*entity.AttendanceDay, error) {
	day := &entity.AttendanceDay{}
	query := `
		SELECT a.id, a.person_id, a.date, a.entry_time, a.exit_time, a.status_id, a.overtime_pending, a.notes
		FROM attendance a
		JOIN persons p ON p.id = a.person_id
		WHERE p.external_id = ? AND a.date = ? AND a.overtime_pending > '00:00:00'
	`

	err := r.db.QueryRow(query, externalID, date).Scan(
		&day.ID,
		&day.PersonID,
		&day.Date,
		&day.EntryTime,
		&day.ExitTime,
		&day.StatusID,
		&day.OvertimePending,
		&day.Notes,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pending overtime: %w", err)
	}

	return day, nil
}

func (r *attendanceRepo) ApplyOvertime(attendanceID int64, newExit, noteAppend string) (int64, error) {
	// Guarded by overtime_pending still being nonzero, so re-running the
	// validation is a no-op.
	query := `
		UPDATE attendance
		SET exit_time = ?, overtime_pending = '00:00:00', notes = notes || ?
		WHERE id = ? AND overtime_pending > '00:00:00'
	`

	result, err := r.db.Exec(query, newExit, noteAppend, attendanceID)
	if err != nil {
		return 0, fmt.Errorf("failed to apply overtime: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected, nil
}

func (r *attendanceRepo) StatusIDByName(name string) (int64, error) {
	query := `SELECT id FROM attendance_status WHERE name = ?`

	var id int64
	err := r.db.QueryRow(query, name).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get status id: %w", err)
	}

	return id, nil
}
