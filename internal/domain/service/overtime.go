package service

import (
	"context"
	"fmt"
	"log"

	"github.com/teamtrack/attendance-bot/internal/domain/contract"
	"github.com/teamtrack/attendance-bot/pkg/timeutil"
)

// overtimePolicy reverses the session cap once a human approves the excess:
// the recorded exit moves forward by the pending duration, the pending
// duration drops to zero and an audit note is appended.
type overtimePolicy struct {
	dm contract.DataManager
}

func newOvertimePolicy(dm contract.DataManager) *overtimePolicy {
	return &overtimePolicy{dm: dm}
}

// Validate applies an approved overtime mark. Validating a row whose pending
// duration already reached zero is a no-op, so re-applying the same sheet
// mark on every sync cycle is safe.
func (p *overtimePolicy) Validate(ctx context.Context, externalID int64, date string) error {
	day, err := p.dm.Attendance().GetPendingOvertime(externalID, date)
	if err != nil {
		return fmt.Errorf("failed to load pending overtime: %w", err)
	}
	if day == nil {
		return nil
	}
	if day.ExitTime == nil {
		log.Printf("Overtime: person %d on %s has pending overtime but no exit, skipping", externalID, date)
		return nil
	}

	exitSec, err := timeutil.ParseClock(*day.ExitTime)
	if err != nil {
		return fmt.Errorf("stored exit time is malformed: %w", err)
	}
	pendingSec, err := timeutil.ParseClock(day.OvertimePending)
	if err != nil {
		return fmt.Errorf("stored pending overtime is malformed: %w", err)
	}
	if pendingSec <= 0 {
		return nil
	}

	newExit := timeutil.FormatClock(exitSec + pendingSec)
	note := "\n[Sistema] Horas extra validadas desde la hoja de cálculo."

	affected, err := p.dm.Attendance().ApplyOvertime(day.ID, newExit, note)
	if err != nil {
		return fmt.Errorf("failed to validate overtime for person %d on %s: %w", externalID, date, err)
	}
	if affected > 0 {
		log.Printf("Overtime: validated %s for person %d on %s, exit moved to %s",
			day.OvertimePending, externalID, date, newExit)
	}

	return nil
}
