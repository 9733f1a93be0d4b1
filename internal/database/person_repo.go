package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/teamtrack/attendance-bot/internal/domain/contract"
	"github.com/teamtrack/attendance-bot/internal/domain/entity"
)

type personRepo struct {
	db dbConn
}

func newPersonRepo(db dbConn) contract.PersonRepo {
	return &personRepo{db: db}
}

func (r *personRepo) Upsert(person *entity.Person) error {
	query := `
		INSERT INTO persons (external_id, full_name, base_hours)
		VALUES (?, ?, ?)
		ON CONFLICT(external_id) DO UPDATE SET
			full_name = excluded.full_name,
			base_hours = excluded.base_hours,
			updated_at = ?
	`

	_, err := r.db.Exec(query,
		person.ExternalID,
		person.FullName,
		person.BaseHours,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert person: %w", err)
	}

	// On the DO UPDATE path LastInsertId reports the connection's last rowid,
	// not this person's, so the id is always re-selected.
	var id int64
	if err := r.db.QueryRow(`SELECT id FROM persons WHERE external_id = ?`, person.ExternalID).Scan(&id); err != nil {
		return fmt.Errorf("failed to get person id: %w", err)
	}

	person.ID = id
	return nil
}

func (r *personRepo) GetByExternalID(externalID int64) (*entity.Person, error) {
	person := &entity.Person{}
	query := `
		SELECT id, external_id, full_name, base_hours, created_at, updated_at
		FROM persons
		WHERE external_id = ?
	`

	err := r.db.QueryRow(query, externalID).Scan(
		&person.ID,
		&person.ExternalID,
		&person.FullName,
		&person.BaseHours,
		&person.CreatedAt,
		&person.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return person, nil
}

func (r *personRepo) List() ([]*entity.Person, error) {
	query := `
		SELECT id, external_id, full_name, base_hours, created_at, updated_at
		FROM persons
		ORDER BY full_name ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	defer rows.Close()

	var persons []*entity.Person
	for rows.Next() {
		person := &entity.Person{}
		err := rows.Scan(
			&person.ID,
			&person.ExternalID,
			&person.FullName,
			&person.BaseHours,
			&person.CreatedAt,
			&person.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		persons = append(persons, person)
	}

	return persons, nil
}

func (r *personRepo) Delete(externalID int64) error {
	// Attendance and recovery rows cascade through the foreign keys.
	query := `DELETE FROM persons WHERE external_id = ?`

	_, err := r.db.Exec(query, externalID)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	return nil
}
