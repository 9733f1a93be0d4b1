package contract

import (
	"context"

	"github.com/teamtrack/attendance-bot/internal/domain/entity"
)

// AttendanceService is the command-facing surface of the attendance core.
type AttendanceService interface {
	RecordEntry(ctx context.Context, externalID int64, date, clock, status string) error
	// RecordExit closes the open session for the day. The boolean reports
	// whether a row was actually closed; false means there was no open entry,
	// which is a normal outcome, not an error.
	RecordExit(ctx context.Context, externalID int64, date, clock string) (bool, error)
	EditRecord(ctx context.Context, externalID int64, date string, edit entity.RecordEdit) error
	ComputeSummary(ctx context.Context, externalID int64) (*entity.Summary, error)
	RegisterRecovery(ctx context.Context, externalID int64, absenceDate, recoveryDate string) error
	DayOverview(ctx context.Context, date string) ([]*entity.ReportRow, error)
	DeletePerson(ctx context.Context, externalID int64) error
	IsAdmin(ctx context.Context, externalID int64) (bool, error)
	AddAdmin(ctx context.Context, externalID int64, name, role string) error
	RemoveAdmin(ctx context.Context, externalID int64) error
	ListAdmins(ctx context.Context) ([]*entity.AdminRole, error)
}

// Synchronizer triggers a one-shot roster/report sync cycle.
type Synchronizer interface {
	RunSync(ctx context.Context)
}
