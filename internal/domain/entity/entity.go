package entity

import "time"

// Person is one tracked member of the roster. Created and updated only by
// roster import, keyed by the stable chat-platform identifier.
type Person struct {
	ID         int64     `json:"id" db:"id"`
	ExternalID int64     `json:"external_id" db:"external_id"`
	FullName   string    `json:"full_name" db:"full_name"`
	BaseHours  string    `json:"base_hours" db:"base_hours"` // HH:MM:SS, hours before the bot existed
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// AttendanceDay is one person's attendance record for one calendar date.
// At most one row exists per (person, date).
type AttendanceDay struct {
	ID              int64   `json:"id" db:"id"`
	PersonID        int64   `json:"person_id" db:"person_id"`
	Date            string  `json:"date" db:"date"`             // YYYY-MM-DD
	EntryTime       *string `json:"entry_time" db:"entry_time"` // HH:MM:SS
	ExitTime        *string `json:"exit_time" db:"exit_time"`
	StatusID        int64   `json:"status_id" db:"status_id"`
	OvertimePending string  `json:"overtime_pending" db:"overtime_pending"`
	Notes           string  `json:"notes" db:"notes"`
}

// RecordEdit carries the optional fields of an administrative attendance
// override. Nil fields are left untouched.
type RecordEdit struct {
	EntryTime *string
	ExitTime  *string
	Status    *string
}

// ReportRow is a roster-joined attendance row, used by the daily report and
// the detailed export.
type ReportRow struct {
	Date      string  `json:"date" db:"date"`
	FullName  string  `json:"full_name" db:"full_name"`
	EntryTime *string `json:"entry_time" db:"entry_time"`
	ExitTime  *string `json:"exit_time" db:"exit_time"`
	Status    string  `json:"status" db:"status"`
}

// SessionRow is a closed attendance session, used to aggregate worked time.
type SessionRow struct {
	PersonID   int64  `json:"person_id" db:"person_id"`
	ExternalID int64  `json:"external_id" db:"external_id"`
	FullName   string `json:"full_name" db:"full_name"`
	EntryTime  string `json:"entry_time" db:"entry_time"`
	ExitTime   string `json:"exit_time" db:"exit_time"`
}

// Summary is the cumulative-hours view of one person.
type Summary struct {
	FullName      string `json:"full_name"`
	BaseSeconds   int    `json:"base_seconds"`
	WorkedSeconds int    `json:"worked_seconds"`
	TotalSeconds  int    `json:"total_seconds"`
}

// OvertimeIncident is an attendance day whose counted duration was capped,
// with the excess held for human validation.
type OvertimeIncident struct {
	ExternalID      int64   `json:"external_id" db:"external_id"`
	FullName        string  `json:"full_name" db:"full_name"`
	Date            string  `json:"date" db:"date"`
	OvertimePending string  `json:"overtime_pending" db:"overtime_pending"`
	ExitTime        *string `json:"exit_time" db:"exit_time"`
}

// RecoveryRecord is a made-up session for a prior absence.
type RecoveryRecord struct {
	ID           int64  `json:"id" db:"id"`
	PersonID     int64  `json:"person_id" db:"person_id"`
	AbsenceDate  string `json:"absence_date" db:"absence_date"`
	RecoveryDate string `json:"recovery_date" db:"recovery_date"`
	Notes        string `json:"notes" db:"notes"`
}

// AdminRole maps a chat-platform identifier to a team role label.
type AdminRole struct {
	ExternalID    int64  `json:"external_id" db:"external_id"`
	ReferenceName string `json:"reference_name" db:"reference_name"`
	Role          string `json:"role" db:"role"`
}

// RGB is a color channel triple in the 0..1 range, matching the sheet API.
type RGB struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// CellStyle is the subset of spreadsheet formatting the exporter applies.
type CellStyle struct {
	Bold       bool  `json:"bold"`
	FontSize   int64 `json:"font_size"`
	Background *RGB  `json:"background,omitempty"`
	Foreground *RGB  `json:"foreground,omitempty"`
}
