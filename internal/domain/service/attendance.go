package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/teamtrack/attendance-bot/internal/config"
	"github.com/teamtrack/attendance-bot/internal/domain"
	"github.com/teamtrack/attendance-bot/internal/domain/contract"
	"github.com/teamtrack/attendance-bot/internal/domain/entity"
	"github.com/teamtrack/attendance-bot/pkg/timeutil"
)

type attendanceService struct {
	dm  contract.DataManager
	cfg *config.Config
}

func newAttendance(dm contract.DataManager, cfg *config.Config) *attendanceService {
	return &attendanceService{
		dm:  dm,
		cfg: cfg,
	}
}

// RecordEntry upserts the attendance row for (person, date). A repeated entry
// on the same day overwrites entry time and status, so correcting a double
// entry never fails. When no status is given it is derived from the entry
// time against the configured late threshold.
func (s *attendanceService) RecordEntry(ctx context.Context, externalID int64, date, clock, status string) error {
	if err := validateDate(date); err != nil {
		return err
	}
	clock, err := normalizeClock(clock)
	if err != nil {
		return err
	}

	person, err := s.getPerson(externalID)
	if err != nil {
		return err
	}

	if status == "" {
		status = s.statusForEntry(clock)
	}

	statusID, err := s.resolveStatus(status)
	if err != nil {
		return err
	}

	if err := s.dm.Attendance().UpsertEntry(person.ID, date, clock, statusID); err != nil {
		return fmt.Errorf("failed to record entry for person %d on %s: %w", externalID, date, err)
	}

	return nil
}

// RecordExit closes the day's open session. Returns false when there is no
// open entry to close (missing row or exit already set), which is a normal
// outcome. Sessions longer than the configured cap are closed at entry+cap
// with the excess held as pending overtime for human validation.
func (s *attendanceService) RecordExit(ctx context.Context, externalID int64, date, clock string) (bool, error) {
	if err := validateDate(date); err != nil {
		return false, err
	}
	clock, err := normalizeClock(clock)
	if err != nil {
		return false, err
	}

	person, err := s.getPerson(externalID)
	if err != nil {
		return false, err
	}

	day, err := s.dm.Attendance().GetByPersonAndDate(person.ID, date)
	if err != nil {
		return false, fmt.Errorf("failed to load attendance day: %w", err)
	}
	if day == nil || day.EntryTime == nil || day.ExitTime != nil {
		return false, nil
	}

	entrySec, err := timeutil.ParseClock(*day.EntryTime)
	if err != nil {
		return false, fmt.Errorf("stored entry time is malformed: %w", err)
	}
	exitSec, err := timeutil.ParseClock(clock)
	if err != nil {
		return false, fmt.Errorf("%q: %w", clock, domain.ErrInvalidInput)
	}
	if exitSec < entrySec {
		return false, fmt.Errorf("exit before entry: %w", domain.ErrInvalidInput)
	}

	exitSec, pendingSec := capSession(entrySec, exitSec, s.cfg.MaxSessionHours*3600)

	note := ""
	pending := domain.ZeroDuration
	if pendingSec > 0 {
		pending = timeutil.FormatClock(pendingSec)
		note = "\n[Sistema] Salida ajustada por límite de sesión; horas extra pendientes de validación."
		log.Printf("Attendance: capped session for person %d on %s, %s pending validation", externalID, date, pending)
	}

	affected, err := s.dm.Attendance().CloseExit(person.ID, date, timeutil.FormatClock(exitSec), pending, note)
	if err != nil {
		return false, fmt.Errorf("failed to record exit for person %d on %s: %w", externalID, date, err)
	}

	return affected > 0, nil
}

// EditRecord is the administrative override: it creates the row when absent
// (defaulting the status to Presente) and otherwise updates only the fields
// that were supplied.
func (s *attendanceService) EditRecord(ctx context.Context, externalID int64, date string, edit entity.RecordEdit) error {
	if err := validateDate(date); err != nil {
		return err
	}

	person, err := s.getPerson(externalID)
	if err != nil {
		return err
	}

	var statusID *int64
	if edit.Status != nil {
		id, err := s.resolveStatus(*edit.Status)
		if err != nil {
			return err
		}
		statusID = &id
	}

	entry, err := normalizeClockPtr(edit.EntryTime)
	if err != nil {
		return err
	}
	exit, err := normalizeClockPtr(edit.ExitTime)
	if err != nil {
		return err
	}

	existing, err := s.dm.Attendance().GetByPersonAndDate(person.ID, date)
	if err != nil {
		return fmt.Errorf("failed to load attendance day: %w", err)
	}

	if existing == nil {
		if statusID == nil {
			id, err := s.resolveStatus(domain.StatusPresente)
			if err != nil {
				return err
			}
			statusID = &id
		}
		day := &entity.AttendanceDay{
			PersonID:  person.ID,
			Date:      date,
			EntryTime: entry,
			ExitTime:  exit,
			StatusID:  *statusID,
		}
		if err := s.dm.Attendance().Insert(day); err != nil {
			return fmt.Errorf("failed to create attendance day: %w", err)
		}
		return nil
	}

	if err := s.dm.Attendance().UpdateFields(person.ID, date, entry, exit, statusID); err != nil {
		return fmt.Errorf("failed to update attendance day: %w", err)
	}

	return nil
}

// ComputeSummary returns baseline hours, the sum of all closed sessions and
// their total. Open sessions contribute nothing until they close.
func (s *attendanceService) ComputeSummary(ctx context.Context, externalID int64) (*entity.Summary, error) {
	person, err := s.getPerson(externalID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.dm.Attendance().ListClosedByPerson(person.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	worked := 0
	for _, session := range sessions {
		worked += sessionSeconds(session.EntryTime, session.ExitTime)
	}

	base, err := timeutil.ParseClock(timeutil.NormalizeDuration(person.BaseHours))
	if err != nil {
		base = 0
	}

	return &entity.Summary{
		FullName:      person.FullName,
		BaseSeconds:   base,
		WorkedSeconds: worked,
		TotalSeconds:  base + worked,
	}, nil
}

// RegisterRecovery records a made-up session for a prior absence. When the
// absence day is still marked Falta Injustificada it is promoted to
// Falta Recuperada.
func (s *attendanceService) RegisterRecovery(ctx context.Context, externalID int64, absenceDate, recoveryDate string) error {
	if err := validateDate(absenceDate); err != nil {
		return err
	}
	if err := validateDate(recoveryDate); err != nil {
		return err
	}

	person, err := s.getPerson(externalID)
	if err != nil {
		return err
	}

	existing, err := s.dm.Recovery().GetByPersonAndDate(person.ID, recoveryDate)
	if err != nil {
		return fmt.Errorf("failed to check recovery: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("recovery already registered for %s: %w", recoveryDate, domain.ErrInvalidInput)
	}

	record := &entity.RecoveryRecord{
		PersonID:     person.ID,
		AbsenceDate:  absenceDate,
		RecoveryDate: recoveryDate,
		Notes:        fmt.Sprintf("Recuperación de la falta del %s", absenceDate),
	}
	if err := s.dm.Recovery().Create(record); err != nil {
		return fmt.Errorf("failed to create recovery: %w", err)
	}

	absence, err := s.dm.Attendance().GetByPersonAndDate(person.ID, absenceDate)
	if err != nil {
		return fmt.Errorf("failed to load absence day: %w", err)
	}
	unjustifiedID, err := s.resolveStatus(domain.StatusFaltaInjustificada)
	if err != nil {
		return err
	}
	if absence != nil && absence.StatusID == unjustifiedID {
		recoveredID, err := s.resolveStatus(domain.StatusFaltaRecuperada)
		if err != nil {
			return err
		}
		if err := s.dm.Attendance().UpdateFields(person.ID, absenceDate, nil, nil, &recoveredID); err != nil {
			return fmt.Errorf("failed to mark absence recovered: %w", err)
		}
	}

	return nil
}

func (s *attendanceService) DayOverview(ctx context.Context, date string) ([]*entity.ReportRow, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	rows, err := s.dm.Attendance().ListDay(date)
	if err != nil {
		return nil, fmt.Errorf("failed to list day: %w", err)
	}

	return rows, nil
}

// DeletePerson removes a person and, explicitly inside one transaction, that
// person's attendance and recovery rows.
func (s *attendanceService) DeletePerson(ctx context.Context, externalID int64) error {
	person, err := s.getPerson(externalID)
	if err != nil {
		return err
	}

	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Person().Delete(person.ExternalID); err != nil {
			return fmt.Errorf("failed to delete person %d: %w", externalID, err)
		}
		return nil
	})
}

func (s *attendanceService) IsAdmin(ctx context.Context, externalID int64) (bool, error) {
	isAdmin, err := s.dm.Admin().IsAdmin(externalID)
	if err != nil {
		return false, fmt.Errorf("failed to check admin: %w", err)
	}
	return isAdmin, nil
}

func (s *attendanceService) AddAdmin(ctx context.Context, externalID int64, name, role string) error {
	if role == "" {
		role = domain.DefaultAdminRole
	}
	admin := &entity.AdminRole{
		ExternalID:    externalID,
		ReferenceName: name,
		Role:          role,
	}
	if err := s.dm.Admin().Upsert(admin); err != nil {
		return fmt.Errorf("failed to add admin: %w", err)
	}
	return nil
}

func (s *attendanceService) RemoveAdmin(ctx context.Context, externalID int64) error {
	if err := s.dm.Admin().Delete(externalID); err != nil {
		return fmt.Errorf("failed to remove admin: %w", err)
	}
	return nil
}

func (s *attendanceService) ListAdmins(ctx context.Context) ([]*entity.AdminRole, error) {
	admins, err := s.dm.Admin().List()
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

func (s *attendanceService) getPerson(externalID int64) (*entity.Person, error) {
	person, err := s.dm.Person().GetByExternalID(externalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get person %d: %w", externalID, err)
	}
	if person == nil {
		return nil, fmt.Errorf("person %d: %w", externalID, domain.ErrNotFound)
	}
	return person, nil
}

func (s *attendanceService) resolveStatus(name string) (int64, error) {
	id, err := s.dm.Attendance().StatusIDByName(name)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve status: %w", err)
	}
	if id == 0 {
		return 0, fmt.Errorf("status %q: %w", name, domain.ErrInvalidStatus)
	}
	return id, nil
}

func (s *attendanceService) statusForEntry(clock string) string {
	entrySec, err := timeutil.ParseClock(clock)
	if err != nil {
		return domain.StatusPresente
	}
	lateSec, err := timeutil.ParseClock(s.cfg.LateAfter)
	if err != nil {
		return domain.StatusPresente
	}
	if entrySec > lateSec {
		return domain.StatusTardanza
	}
	return domain.StatusPresente
}

// capSession limits a session to capSeconds, returning the effective exit and
// the excess held as pending overtime. A cap of zero disables capping.
func capSession(entrySec, exitSec, capSeconds int) (int, int) {
	if capSeconds <= 0 || exitSec-entrySec <= capSeconds {
		return exitSec, 0
	}
	return entrySec + capSeconds, exitSec - entrySec - capSeconds
}

func sessionSeconds(entry, exit string) int {
	entrySec, err := timeutil.ParseClock(entry)
	if err != nil {
		return 0
	}
	exitSec, err := timeutil.ParseClock(exit)
	if err != nil {
		return 0
	}
	if exitSec < entrySec {
		return 0
	}
	return exitSec - entrySec
}

func validateDate(date string) error {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return fmt.Errorf("date %q: %w", date, domain.ErrInvalidInput)
	}
	return nil
}

func normalizeClock(clock string) (string, error) {
	sec, err := timeutil.ParseClock(clock)
	if err != nil {
		return "", fmt.Errorf("time %q: %w", clock, domain.ErrInvalidInput)
	}
	if sec >= 24*3600 {
		return "", fmt.Errorf("time %q: %w", clock, domain.ErrInvalidInput)
	}
	return timeutil.FormatClock(sec), nil
}

func normalizeClockPtr(clock *string) (*string, error) {
	if clock == nil {
		return nil, nil
	}
	normalized, err := normalizeClock(*clock)
	if err != nil {
		return nil, err
	}
	return &normalized, nil
}
