package database

import (
	"fmt"

	"github.com/teamtrack/attendance-bot/internal/domain/contract"
)

type reportRepo struct {
	db dbConn
}

func newReportRepo(db dbConn) contract.ReportRepo {
	return &reportRepo{db: db}
}

func (r *reportRepo) Exists(date string) (bool, error) {
	query := `SELECT COUNT(*) FROM daily_reports WHERE date = ?`

	var count int
	if err := r.db.QueryRow(query, date).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check daily report marker: %w", err)
	}

	return count > 0, nil
}

func (r *reportRepo) MarkSent(date string) error {
	query := `INSERT INTO daily_reports (date) VALUES (?)`

	_, err := r.db.Exec(query, date)
	if err != nil {
		return fmt.Errorf("failed to mark daily report sent: %w", err)
	}

	return nil
}
