package database

import (
	"database/sql"
	"fmt"

	"github.com/teamtrack/attendance-bot/internal/domain/contract"
	"github.com/teamtrack/attendance-bot/internal/domain/entity"
)

type recoveryRepo struct {
	db dbConn
}

func newRecoveryRepo(db dbConn) contract.RecoveryRepo {
	return &recoveryRepo{db: db}
}

func (r *recoveryRepo) Create(record *entity.RecoveryRecord) error {
	query := `
		INSERT INTO recoveries (person_id, absence_date, recovery_date, notes)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		record.PersonID,
		record.AbsenceDate,
		record.RecoveryDate,
		record.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create recovery record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	record.ID = id
	return nil
}

func (r *recoveryRepo) GetByPersonAndDate(personID int64, recoveryDate string) (*entity.RecoveryRecord, error) {
	record := &entity.RecoveryRecord{}
	query := `
		SELECT id, person_id, absence_date, recovery_date, notes
		FROM recoveries
		WHERE person_id = ? AND recovery_date = ?
	`

	err := r.db.QueryRow(query, personID, recoveryDate).Scan(
		&record.ID,
		&record.PersonID,
		&record.AbsenceDate,
		&record.RecoveryDate,
		&record.Notes,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recovery record: %w", err)
	}

	return record, nil
}
