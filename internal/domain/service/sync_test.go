package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamtrack/attendance-bot/internal/database"
	"github.com/teamtrack/attendance-bot/internal/domain"
	"github.com/teamtrack/attendance-bot/internal/domain/contract"
	"github.com/teamtrack/attendance-bot/internal/domain/entity"
)

// fakeSheet is an in-memory SheetAPI: every worksheet is a mutable grid, the
// way the synchronizer sees the real spreadsheet.
type fakeSheet struct {
	data map[string][][]string
}

func newFakeSheet() *fakeSheet {
	return &fakeSheet{data: make(map[string][][]string)}
}

func (f *fakeSheet) EnsureWorksheet(ctx context.Context, name string) error {
	if _, ok := f.data[name]; !ok {
		f.data[name] = nil
	}
	return nil
}

func (f *fakeSheet) ReadAll(ctx context.Context, sheet string) ([][]string, error) {
	return f.data[sheet], nil
}

func (f *fakeSheet) Clear(ctx context.Context, sheet string) error {
	f.data[sheet] = nil
	return nil
}

func (f *fakeSheet) WriteRange(ctx context.Context, sheet, origin string, values [][]string) error {
	f.data[sheet] = values
	return nil
}

func (f *fakeSheet) FormatRange(ctx context.Context, sheet, cellRange string, style entity.CellStyle) error {
	return nil
}

func setupSyncTest(t *testing.T) (*syncService, *fakeSheet, contract.DataManager, *database.DB) {
	t.Helper()

	db := database.SetupTestDB(t)
	dm := database.NewInstance(db)
	sheet := newFakeSheet()
	cfg := testConfig()
	cfg.RosterSheet = "Registro"

	return newSync(dm, sheet, newOvertimePolicy(dm), cfg), sheet, dm, db
}

func TestImportRoster(t *testing.T) {
	ctx := context.Background()

	t.Run("imports rows and skips unusable identifiers", func(t *testing.T) {
		sync, sheet, dm, db := setupSyncTest(t)
		defer db.Close()

		sheet.data["Registro"] = [][]string{
			{"ID Discord", "Nombre", "Apellido", "Horas Acumuladas"},
			{"123.0", "juan", "perez", "12"},
			{"<@999>", "ana", "solis", "05:30:00"},
			{"abc", "sin", "identificador", ""},
		}

		require.NoError(t, sync.importRoster(ctx))

		persons, err := dm.Person().List()
		require.NoError(t, err)
		require.Len(t, persons, 2)

		ana, err := dm.Person().GetByExternalID(999)
		require.NoError(t, err)
		require.NotNil(t, ana)
		assert.Equal(t, "Ana Solis", ana.FullName)
		assert.Equal(t, "05:30:00", ana.BaseHours)

		// Decimal identifiers truncate instead of being digit-stripped.
		juan, err := dm.Person().GetByExternalID(123)
		require.NoError(t, err)
		require.NotNil(t, juan)
		assert.Equal(t, "Juan Perez", juan.FullName)
		assert.Equal(t, "12:00:00", juan.BaseHours)
	})

	t.Run("surname column ahead of the id column is not mistaken for it", func(t *testing.T) {
		sync, sheet, dm, db := setupSyncTest(t)
		defer db.Close()

		sheet.data["Registro"] = [][]string{
			{"Nombre", "Apellido", "ID Discord"},
			{"juan", "perez", "123"},
		}

		require.NoError(t, sync.importRoster(ctx))

		juan, err := dm.Person().GetByExternalID(123)
		require.NoError(t, err)
		require.NotNil(t, juan)
		assert.Equal(t, "Juan Perez", juan.FullName)
	})

	t.Run("bare ID header still resolves next to Apellido", func(t *testing.T) {
		sync, sheet, dm, db := setupSyncTest(t)
		defer db.Close()

		sheet.data["Registro"] = [][]string{
			{"Nombre", "Apellido", "ID"},
			{"ana", "solis", "456"},
		}

		require.NoError(t, sync.importRoster(ctx))

		ana, err := dm.Person().GetByExternalID(456)
		require.NoError(t, err)
		require.NotNil(t, ana)
		assert.Equal(t, "Ana Solis", ana.FullName)
	})

	t.Run("missing name column aborts the phase", func(t *testing.T) {
		sync, sheet, dm, db := setupSyncTest(t)
		defer db.Close()

		sheet.data["Registro"] = [][]string{
			{"ID", "Horas"},
			{"123", "12"},
		}

		err := sync.importRoster(ctx)
		assert.ErrorIs(t, err, domain.ErrSchemaMismatch)

		persons, err := dm.Person().List()
		require.NoError(t, err)
		assert.Empty(t, persons)
	})

	t.Run("re-import updates rather than duplicates", func(t *testing.T) {
		sync, sheet, dm, db := setupSyncTest(t)
		defer db.Close()

		sheet.data["Registro"] = [][]string{
			{"ID", "Nombre"},
			{"123", "juan"},
		}
		require.NoError(t, sync.importRoster(ctx))

		sheet.data["Registro"] = [][]string{
			{"ID", "Nombre"},
			{"123", "juan alberto"},
		}
		require.NoError(t, sync.importRoster(ctx))

		persons, err := dm.Person().List()
		require.NoError(t, err)
		require.Len(t, persons, 1)
		assert.Equal(t, "Juan Alberto", persons[0].FullName)
	})
}

func TestExportDetailed(t *testing.T) {
	ctx := context.Background()

	sync, sheet, dm, db := setupSyncTest(t)
	defer db.Close()

	attendance := newAttendance(dm, testConfig())
	seedPerson(t, dm, 100, "Juan Perez", "00:00:00")
	require.NoError(t, attendance.RecordEntry(ctx, 100, "2026-08-24", "08:00", ""))
	_, err := attendance.RecordExit(ctx, 100, "2026-08-24", "15:00")
	require.NoError(t, err)

	require.NoError(t, sync.exportDetailed(ctx))

	rows := sheet.data[domain.SheetDetailed]
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"Fecha", "Nombre Completo", "Entrada", "Salida", "Horas Sesión", "Estado"}, rows[0])

	// A Spanish date header precedes the day's records.
	assert.Equal(t, "Lunes 24 Agosto 2026", rows[1][0])
	assert.Equal(t, []string{"2026-08-24", "Juan Perez", "08:00:00", "15:00:00", "07:00:00", "Presente"}, rows[2])
}

func TestExportSummary(t *testing.T) {
	ctx := context.Background()

	sync, sheet, dm, db := setupSyncTest(t)
	defer db.Close()

	attendance := newAttendance(dm, testConfig())
	seedPerson(t, dm, 100, "Juan Perez", "12:00:00")
	seedPerson(t, dm, 200, "Ana Solis", "00:00:00")

	require.NoError(t, attendance.RecordEntry(ctx, 200, "2026-08-24", "08:00", ""))
	_, err := attendance.RecordExit(ctx, 200, "2026-08-24", "16:00")
	require.NoError(t, err)

	require.NoError(t, sync.exportSummary(ctx))

	rows := sheet.data[domain.SheetSummary]
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Nombre Completo", "Horas Base (Anteriores)", "Horas Bot (Nuevas)", "TOTAL ACUMULADO", "Meta (480h)"}, rows[0])

	// Sorted by accumulated total, highest first.
	assert.Equal(t, []string{"Juan Perez", "12:00:00", "00:00:00", "12:00:00", "480:00:00"}, rows[1])
	assert.Equal(t, []string{"Ana Solis", "00:00:00", "08:00:00", "08:00:00", "480:00:00"}, rows[2])
}

func TestReconcileOvertime(t *testing.T) {
	ctx := context.Background()

	sync, sheet, dm, db := setupSyncTest(t)
	defer db.Close()

	attendance := newAttendance(dm, testConfig())
	seedPerson(t, dm, 100, "Juan Perez", "00:00:00")

	// 10-hour session against an 8-hour cap leaves two hours pending.
	require.NoError(t, attendance.RecordEntry(ctx, 100, "2026-08-24", "08:00", ""))
	_, err := attendance.RecordExit(ctx, 100, "2026-08-24", "18:00")
	require.NoError(t, err)

	t.Run("first cycle publishes the incident", func(t *testing.T) {
		require.NoError(t, sync.reconcileOvertime(ctx))

		rows := sheet.data[domain.SheetOvertime]
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"ID", "Nombre Completo", "Fecha", "Horas Extra (No Contadas)", "Salida Automática", "Validado (X/OK)"}, rows[0])
		assert.Equal(t, []string{"100", "Juan Perez", "2026-08-24", "02:00:00", "16:00:00", ""}, rows[1])
	})

	t.Run("a human OK is applied on the next cycle", func(t *testing.T) {
		sheet.data[domain.SheetOvertime][1][5] = "ok"

		require.NoError(t, sync.reconcileOvertime(ctx))

		person, err := dm.Person().GetByExternalID(100)
		require.NoError(t, err)
		day, err := dm.Attendance().GetByPersonAndDate(person.ID, "2026-08-24")
		require.NoError(t, err)
		assert.Equal(t, "18:00:00", *day.ExitTime)
		assert.Equal(t, "00:00:00", day.OvertimePending)

		// The incident disappears from the rewritten sheet.
		rows := sheet.data[domain.SheetOvertime]
		assert.Len(t, rows, 1)
	})

	t.Run("further cycles are no-ops", func(t *testing.T) {
		require.NoError(t, sync.reconcileOvertime(ctx))

		person, err := dm.Person().GetByExternalID(100)
		require.NoError(t, err)
		day, err := dm.Attendance().GetByPersonAndDate(person.ID, "2026-08-24")
		require.NoError(t, err)
		assert.Equal(t, "18:00:00", *day.ExitTime)
	})
}

func TestRunSyncWithoutSheet(t *testing.T) {
	db := database.SetupTestDB(t)
	defer db.Close()

	dm := database.NewInstance(db)
	sync := newSync(dm, nil, newOvertimePolicy(dm), testConfig())

	// Must not panic, just skip the cycle.
	sync.RunSync(context.Background())
}
