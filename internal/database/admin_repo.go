package database

import (
	"fmt"

	"github.com/teamtrack/attendance-bot/internal/domain/contract"
	"github.com/teamtrack/attendance-bot/internal/domain/entity"
)

type adminRepo struct {
	db dbConn
}

func newAdminRepo(db dbConn) contract.AdminRepo {
	return &adminRepo{db: db}
}

func (r *adminRepo) Upsert(admin *entity.AdminRole) error {
	query := `
		INSERT INTO bot_admins (external_id, reference_name, role)
		VALUES (?, ?, ?)
		ON CONFLICT(external_id) DO UPDATE SET
			reference_name = excluded.reference_name,
			role = excluded.role
	`

	_, err := r.db.Exec(query, admin.ExternalID, admin.ReferenceName, admin.Role)
	if err != nil {
		return fmt.Errorf("failed to upsert admin: %w", err)
	}

	return nil
}

func (r *adminRepo) IsAdmin(externalID int64) (bool, error) {
	query := `SELECT COUNT(*) FROM bot_admins WHERE external_id = ?`

	var count int
	if err := r.db.QueryRow(query, externalID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check admin: %w", err)
	}

	return count > 0, nil
}

func (r *adminRepo) List() ([]*entity.AdminRole, error) {
	query := `
		SELECT external_id, reference_name, role
		FROM bot_admins
		ORDER BY role DESC, reference_name ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []*entity.AdminRole
	for rows.Next() {
		admin := &entity.AdminRole{}
		if err := rows.Scan(&admin.ExternalID, &admin.ReferenceName, &admin.Role); err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, admin)
	}

	return admins, nil
}

func (r *adminRepo) Delete(externalID int64) error {
	query := `DELETE FROM bot_admins WHERE external_id = ?`

	_, err := r.db.Exec(query, externalID)
	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}

	return nil
}
