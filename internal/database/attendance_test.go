package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamtrack/attendance-bot/internal/domain/entity"
)

func setupPerson(t *testing.T, db *DB, externalID int64, name string) *entity.Person {
	t.Helper()

	person := &entity.Person{ExternalID: externalID, FullName: name}
	require.NoError(t, newPersonRepo(db.conn).Upsert(person))
	return person
}

func TestAttendanceRepo_UpsertEntry(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	attendanceRepo := newAttendanceRepo(db.conn)
	person := setupPerson(t, db, 100, "Juan Perez")

	t.Run("should create attendance row", func(t *testing.T) {
		err := attendanceRepo.UpsertEntry(person.ID, "2026-08-24", "08:00:00", 1)

		require.NoError(t, err)

		day, err := attendanceRepo.GetByPersonAndDate(person.ID, "2026-08-24")
		require.NoError(t, err)
		require.NotNil(t, day)
		require.NotNil(t, day.EntryTime)
		assert.Equal(t, "08:00:00", *day.EntryTime)
		assert.Equal(t, int64(1), day.StatusID)
		assert.Equal(t, "00:00:00", day.OvertimePending)
	})

	t.Run("second entry on same day overwrites, single row remains", func(t *testing.T) {
		err := attendanceRepo.UpsertEntry(person.ID, "2026-08-24", "08:30:00", 2)

		require.NoError(t, err)

		count, err := attendanceRepo.CountDay("2026-08-24")
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		day, err := attendanceRepo.GetByPersonAndDate(person.ID, "2026-08-24")
		require.NoError(t, err)
		require.NotNil(t, day.EntryTime)
		assert.Equal(t, "08:30:00", *day.EntryTime)
		assert.Equal(t, int64(2), day.StatusID)
	})
}

func TestAttendanceRepo_CloseExit(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	attendanceRepo := newAttendanceRepo(db.conn)
	person := setupPerson(t, db, 200, "Ana Solis")

	t.Run("should return zero rows when no entry exists", func(t *testing.T) {
		affected, err := attendanceRepo.CloseExit(person.ID, "2026-08-24", "17:00:00", "00:00:00", "")

		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("should close an open session", func(t *testing.T) {
		require.NoError(t, attendanceRepo.UpsertEntry(person.ID, "2026-08-24", "08:00:00", 1))

		affected, err := attendanceRepo.CloseExit(person.ID, "2026-08-24", "17:00:00", "00:00:00", "")

		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		day, err := attendanceRepo.GetByPersonAndDate(person.ID, "2026-08-24")
		require.NoError(t, err)
		require.NotNil(t, day.ExitTime)
		assert.Equal(t, "17:00:00", *day.ExitTime)
	})

	t.Run("second close is a no-op", func(t *testing.T) {
		affected, err := attendanceRepo.CloseExit(person.ID, "2026-08-24", "19:00:00", "00:00:00", "")

		require.NoError(t, err)
		assert.Zero(t, affected)

		day, err := attendanceRepo.GetByPersonAndDate(person.ID, "2026-08-24")
		require.NoError(t, err)
		assert.Equal(t, "17:00:00", *day.ExitTime)
	})
}

func TestAttendanceRepo_OpenSessionCounts(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	attendanceRepo := newAttendanceRepo(db.conn)
	first := setupPerson(t, db, 300, "Juan Perez")
	second := setupPerson(t, db, 301, "Ana Solis")

	require.NoError(t, attendanceRepo.UpsertEntry(first.ID, "2026-08-24", "08:00:00", 1))
	require.NoError(t, attendanceRepo.UpsertEntry(second.ID, "2026-08-24", "08:05:00", 1))

	open, err := attendanceRepo.CountOpenSessions("2026-08-24")
	require.NoError(t, err)
	assert.Equal(t, 2, open)

	_, err = attendanceRepo.CloseExit(first.ID, "2026-08-24", "16:00:00", "00:00:00", "")
	require.NoError(t, err)

	open, err = attendanceRepo.CountOpenSessions("2026-08-24")
	require.NoError(t, err)
	assert.Equal(t, 1, open)

	total, err := attendanceRepo.CountDay("2026-08-24")
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestAttendanceRepo_ApplyOvertime(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	attendanceRepo := newAttendanceRepo(db.conn)
	person := setupPerson(t, db, 400, "Juan Perez")

	require.NoError(t, attendanceRepo.UpsertEntry(person.ID, "2026-08-24", "08:00:00", 1))
	_, err := attendanceRepo.CloseExit(person.ID, "2026-08-24", "16:00:00", "02:00:00", "")
	require.NoError(t, err)

	t.Run("pending overtime is listed as incident", func(t *testing.T) {
		incidents, err := attendanceRepo.ListOvertimeIncidents()
		require.NoError(t, err)
		require.Len(t, incidents, 1)
		assert.Equal(t, int64(400), incidents[0].ExternalID)
		assert.Equal(t, "02:00:00", incidents[0].OvertimePending)
	})

	t.Run("apply moves exit and zeroes pending", func(t *testing.T) {
		day, err := attendanceRepo.GetPendingOvertime(400, "2026-08-24")
		require.NoError(t, err)
		require.NotNil(t, day)

		affected, err := attendanceRepo.ApplyOvertime(day.ID, "18:00:00", "\nvalidado")
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		updated, err := attendanceRepo.GetByPersonAndDate(person.ID, "2026-08-24")
		require.NoError(t, err)
		assert.Equal(t, "18:00:00", *updated.ExitTime)
		assert.Equal(t, "00:00:00", updated.OvertimePending)
	})

	t.Run("second apply is a no-op", func(t *testing.T) {
		day, err := attendanceRepo.GetPendingOvertime(400, "2026-08-24")
		require.NoError(t, err)
		assert.Nil(t, day)

		incidents, err := attendanceRepo.ListOvertimeIncidents()
		require.NoError(t, err)
		assert.Empty(t, incidents)
	})
}

func TestAttendanceRepo_UpdateFields(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	attendanceRepo := newAttendanceRepo(db.conn)
	person := setupPerson(t, db, 500, "Ana Solis")

	require.NoError(t, attendanceRepo.UpsertEntry(person.ID, "2026-08-24", "08:00:00", 1))

	t.Run("should update only supplied fields", func(t *testing.T) {
		exit := "15:00:00"
		statusID := int64(2)
		err := attendanceRepo.UpdateFields(person.ID, "2026-08-24", nil, &exit, &statusID)

		require.NoError(t, err)

		day, err := attendanceRepo.GetByPersonAndDate(person.ID, "2026-08-24")
		require.NoError(t, err)
		assert.Equal(t, "08:00:00", *day.EntryTime)
		assert.Equal(t, "15:00:00", *day.ExitTime)
		assert.Equal(t, int64(2), day.StatusID)
	})

	t.Run("no fields is a no-op", func(t *testing.T) {
		err := attendanceRepo.UpdateFields(person.ID, "2026-08-24", nil, nil, nil)
		require.NoError(t, err)
	})
}

func TestAttendanceRepo_StatusIDByName(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	attendanceRepo := newAttendanceRepo(db.conn)

	id, err := attendanceRepo.StatusIDByName("Tardanza")
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)

	id, err = attendanceRepo.StatusIDByName("Inexistente")
	require.NoError(t, err)
	assert.Zero(t, id)
}
