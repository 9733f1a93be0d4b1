package database

import (
	"context"
	"fmt"

	"github.com/teamtrack/attendance-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	personRepo     contract.PersonRepo
	attendanceRepo contract.AttendanceRepo
	reportRepo     contract.ReportRepo
	recoveryRepo   contract.RecoveryRepo
	adminRepo      contract.AdminRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}
	i.personRepo = newPersonRepo(db.conn)
	i.attendanceRepo = newAttendanceRepo(db.conn)
	i.reportRepo = newReportRepo(db.conn)
	i.recoveryRepo = newRecoveryRepo(db.conn)
	i.adminRepo = newAdminRepo(db.conn)
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		personRepo:     newPersonRepo(db),
		attendanceRepo: newAttendanceRepo(db),
		reportRepo:     newReportRepo(db),
		recoveryRepo:   newRecoveryRepo(db),
		adminRepo:      newAdminRepo(db),
	}
}

func (i *instance) Person() contract.PersonRepo {
	return i.personRepo
}

func (i *instance) Attendance() contract.AttendanceRepo {
	return i.attendanceRepo
}

func (i *instance) Report() contract.ReportRepo {
	return i.reportRepo
}

func (i *instance) Recovery() contract.RecoveryRepo {
	return i.recoveryRepo
}

func (i *instance) Admin() contract.AdminRepo {
	return i.adminRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
