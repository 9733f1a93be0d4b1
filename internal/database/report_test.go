package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepo_Marker(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	reportRepo := newReportRepo(db.conn)

	t.Run("marker absent before closure", func(t *testing.T) {
		sent, err := reportRepo.Exists("2026-08-24")
		require.NoError(t, err)
		assert.False(t, sent)
	})

	t.Run("marker persists after closure", func(t *testing.T) {
		err := reportRepo.MarkSent("2026-08-24")
		require.NoError(t, err)

		sent, err := reportRepo.Exists("2026-08-24")
		require.NoError(t, err)
		assert.True(t, sent)
	})

	t.Run("duplicate marker is rejected by the primary key", func(t *testing.T) {
		err := reportRepo.MarkSent("2026-08-24")
		assert.Error(t, err)
	})
}
