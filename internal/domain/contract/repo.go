package contract

import (
	"context"

	"github.com/teamtrack/attendance-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Person() PersonRepo
	Attendance() AttendanceRepo
	Report() ReportRepo
	Recovery() RecoveryRepo
	Admin() AdminRepo
}

// PersonRepo defines the contract for the roster repository
type PersonRepo interface {
	// Upsert inserts or updates a person keyed by external identifier.
	Upsert(person *entity.Person) error
	GetByExternalID(externalID int64) (*entity.Person, error)
	List() ([]*entity.Person, error)
	// Delete removes a person; attendance and recovery rows cascade.
	Delete(externalID int64) error
}

// AttendanceRepo defines the contract for attendance day records
type AttendanceRepo interface {
	// UpsertEntry creates the day row or overwrites entry time and status.
	UpsertEntry(personID int64, date, entryTime string, statusID int64) error
	// CloseExit sets the exit time only while it is still null. Returns the
	// number of affected rows (0 or 1).
	CloseExit(personID int64, date, exitTime, overtimePending, noteAppend string) (int64, error)
	GetByPersonAndDate(personID int64, date string) (*entity.AttendanceDay, error)
	Insert(day *entity.AttendanceDay) error
	UpdateFields(personID int64, date string, entryTime, exitTime *string, statusID *int64) error
	CountOpenSessions(date string) (int, error)
	CountDay(date string) (int, error)
	ListDay(date string) ([]*entity.ReportRow, error)
	// ListAll returns the roster-joined attendance view sorted by date
	// descending, then name ascending.
	ListAll() ([]*entity.ReportRow, error)
	ListClosedByPerson(personID int64) ([]*entity.SessionRow, error)
	ListClosed() ([]*entity.SessionRow, error)
	ListOvertimeIncidents() ([]*entity.OvertimeIncident, error)
	// GetPendingOvertime returns the day row for a person's external id with
	// pending overtime, or nil when there is nothing to validate.
	GetPendingOvertime(externalID int64, date string) (*entity.AttendanceDay, error)
	// ApplyOvertime extends the exit, zeroes the pending duration and appends
	// the audit note, guarded by overtime_pending still being nonzero.
	ApplyOvertime(attendanceID int64, newExit, noteAppend string) (int64, error)
	StatusIDByName(name string) (int64, error)
}

// ReportRepo defines the contract for daily report markers
type ReportRepo interface {
	Exists(date string) (bool, error)
	MarkSent(date string) error
}

// RecoveryRepo defines the contract for recovery sessions
type RecoveryRepo interface {
	Create(record *entity.RecoveryRecord) error
	GetByPersonAndDate(personID int64, recoveryDate string) (*entity.RecoveryRecord, error)
}

// AdminRepo defines the contract for bot admin roles
type AdminRepo interface {
	Upsert(admin *entity.AdminRole) error
	IsAdmin(externalID int64) (bool, error)
	List() ([]*entity.AdminRole, error)
	Delete(externalID int64) error
}
