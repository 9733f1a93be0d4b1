package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/teamtrack/attendance-bot/internal/config"
	"github.com/teamtrack/attendance-bot/internal/domain"
	"github.com/teamtrack/attendance-bot/internal/domain/contract"
	"github.com/teamtrack/attendance-bot/internal/domain/entity"
	"github.com/teamtrack/attendance-bot/pkg/timeutil"
)

// syncService keeps the store and the spreadsheet consistent: the roster
// flows sheet -> store, the reports flow store -> sheet, and human overtime
// validations flow back sheet -> store through the overtime policy.
type syncService struct {
	dm       contract.DataManager
	sheets   contract.SheetAPI
	overtime *overtimePolicy
	cfg      *config.Config
}

func newSync(dm contract.DataManager, sheets contract.SheetAPI, overtime *overtimePolicy, cfg *config.Config) *syncService {
	return &syncService{
		dm:       dm,
		sheets:   sheets,
		overtime: overtime,
		cfg:      cfg,
	}
}

// RunSync executes one full cycle. Each phase is independent: a failed phase
// is logged and aborted while the remaining phases still run.
func (s *syncService) RunSync(ctx context.Context) {
	if s.sheets == nil {
		log.Println("Sync: spreadsheet not configured, skipping cycle")
		return
	}

	log.Println("Sync: starting cycle")

	if err := s.importRoster(ctx); err != nil {
		log.Printf("Sync: roster import failed: %v", err)
	}
	if err := s.exportDetailed(ctx); err != nil {
		log.Printf("Sync: detailed export failed: %v", err)
	}
	if err := s.exportSummary(ctx); err != nil {
		log.Printf("Sync: summary export failed: %v", err)
	}
	if err := s.reconcileOvertime(ctx); err != nil {
		log.Printf("Sync: overtime reconciliation failed: %v", err)
	}
}

// importRoster pulls the roster worksheet into the persons table. Rows with
// an unusable identifier or name are skipped and counted, never fatal; a
// missing identifier or name column aborts the whole phase.
func (s *syncService) importRoster(ctx context.Context) error {
	rows, err := s.sheets.ReadAll(ctx, s.cfg.RosterSheet)
	if err != nil {
		return fmt.Errorf("failed to read roster sheet: %w", err)
	}
	if len(rows) < 2 {
		log.Println("Sync: roster sheet is empty")
		return nil
	}

	headers := lowercased(rows[0])
	idxID := findIdentifierColumn(headers)
	idxName := findColumn(headers, "nombre")
	if idxID < 0 || idxName < 0 {
		return fmt.Errorf("roster sheet is missing identifier or name column: %w", domain.ErrSchemaMismatch)
	}
	idxSurname := findColumn(headers, "apellido")
	idxBase := findColumn(headers, "base", "acumuladas")

	accepted, skipped := 0, 0
	for _, row := range rows[1:] {
		if idxID >= len(row) || idxName >= len(row) {
			skipped++
			continue
		}

		name := strings.TrimSpace(row[idxName])
		if idxSurname >= 0 && idxSurname < len(row) {
			surname := strings.TrimSpace(row[idxSurname])
			if surname != "" && surname != name {
				name = name + " " + surname
			}
		}
		name = timeutil.TitleCaseName(name)

		rawID := strings.TrimSpace(row[idxID])
		if rawID == "" || name == "" {
			skipped++
			continue
		}

		externalID, ok := extractNumericID(rawID)
		if !ok {
			log.Printf("Sync: skipping roster row with invalid identifier %q (%s)", rawID, name)
			skipped++
			continue
		}

		baseHours := domain.ZeroDuration
		if idxBase >= 0 && idxBase < len(row) {
			baseHours = timeutil.NormalizeBaseHours(row[idxBase])
		}

		person := &entity.Person{
			ExternalID: externalID,
			FullName:   name,
			BaseHours:  baseHours,
		}
		if err := s.dm.Person().Upsert(person); err != nil {
			return fmt.Errorf("failed to upsert person %d: %w", externalID, err)
		}
		accepted++
	}

	log.Printf("Sync: roster import done, %d accepted, %d skipped", accepted, skipped)
	return nil
}

// exportDetailed rewrites the detailed worksheet: one styled header row per
// distinct date ahead of that date's records, formatting reset first so no
// residual styles survive the overwrite.
func (s *syncService) exportDetailed(ctx context.Context) error {
	data, err := s.dm.Attendance().ListAll()
	if err != nil {
		return fmt.Errorf("failed to load attendance view: %w", err)
	}
	if len(data) == 0 {
		log.Println("Sync: no attendance data to export")
		return nil
	}

	if err := s.sheets.EnsureWorksheet(ctx, domain.SheetDetailed); err != nil {
		return fmt.Errorf("failed to open detailed sheet: %w", err)
	}

	rows := [][]string{{"Fecha", "Nombre Completo", "Entrada", "Salida", "Horas Sesión", "Estado"}}
	var datePositions []int // 1-indexed sheet rows holding date headers

	lastDate := ""
	for _, record := range data {
		if record.Date != lastDate {
			rows = append(rows, []string{spanishDateLabel(record.Date), "", "", "", "", ""})
			datePositions = append(datePositions, len(rows))
			lastDate = record.Date
		}

		session := "-"
		if record.EntryTime != nil && record.ExitTime != nil {
			session = timeutil.FormatClock(sessionSeconds(*record.EntryTime, *record.ExitTime))
		}

		rows = append(rows, []string{
			record.Date,
			record.FullName,
			clockOrDash(record.EntryTime),
			clockOrDash(record.ExitTime),
			session,
			record.Status,
		})
	}

	if err := s.sheets.Clear(ctx, domain.SheetDetailed); err != nil {
		return fmt.Errorf("failed to clear detailed sheet: %w", err)
	}

	white := &entity.RGB{Red: 1.0, Green: 1.0, Blue: 1.0}
	black := &entity.RGB{Red: 0.0, Green: 0.0, Blue: 0.0}
	reset := entity.CellStyle{Bold: false, FontSize: 10, Background: white, Foreground: black}
	if err := s.sheets.FormatRange(ctx, domain.SheetDetailed, "A1:Z1000", reset); err != nil {
		return fmt.Errorf("failed to reset detailed sheet format: %w", err)
	}

	if err := s.sheets.WriteRange(ctx, domain.SheetDetailed, "A1", rows); err != nil {
		return fmt.Errorf("failed to write detailed sheet: %w", err)
	}

	dateStyle := entity.CellStyle{
		Bold:       true,
		FontSize:   11,
		Background: &entity.RGB{Red: 0.85, Green: 0.92, Blue: 1.0},
	}
	for _, pos := range datePositions {
		cellRange := fmt.Sprintf("A%d:F%d", pos, pos)
		if err := s.sheets.FormatRange(ctx, domain.SheetDetailed, cellRange, dateStyle); err != nil {
			return fmt.Errorf("failed to style date header: %w", err)
		}
	}

	headerStyle := entity.CellStyle{
		Bold:       true,
		FontSize:   10,
		Background: &entity.RGB{Red: 0.2, Green: 0.2, Blue: 0.2},
		Foreground: white,
	}
	if err := s.sheets.FormatRange(ctx, domain.SheetDetailed, "A1:F1", headerStyle); err != nil {
		return fmt.Errorf("failed to style main header: %w", err)
	}

	log.Printf("Sync: detailed report exported, %d rows", len(data))
	return nil
}

// summaryGoal is the accumulated-hours target shown on the rollup sheet.
const summaryGoal = "480:00:00"

func (s *syncService) exportSummary(ctx context.Context) error {
	persons, err := s.dm.Person().List()
	if err != nil {
		return fmt.Errorf("failed to list persons: %w", err)
	}
	sessions, err := s.dm.Attendance().ListClosed()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	workedByPerson := make(map[int64]int)
	for _, session := range sessions {
		workedByPerson[session.PersonID] += sessionSeconds(session.EntryTime, session.ExitTime)
	}

	type summaryRow struct {
		name   string
		base   int
		worked int
		total  int
	}

	var summaries []summaryRow
	for _, person := range persons {
		base, err := timeutil.ParseClock(timeutil.NormalizeDuration(person.BaseHours))
		if err != nil {
			base = 0
		}
		worked := workedByPerson[person.ID]
		summaries = append(summaries, summaryRow{
			name:   person.FullName,
			base:   base,
			worked: worked,
			total:  base + worked,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].total > summaries[j].total
	})

	rows := [][]string{{"Nombre Completo", "Horas Base (Anteriores)", "Horas Bot (Nuevas)", "TOTAL ACUMULADO", "Meta (480h)"}}
	for _, summary := range summaries {
		rows = append(rows, []string{
			summary.name,
			timeutil.FormatClock(summary.base),
			timeutil.FormatClock(summary.worked),
			timeutil.FormatClock(summary.total),
			summaryGoal,
		})
	}

	if err := s.sheets.EnsureWorksheet(ctx, domain.SheetSummary); err != nil {
		return fmt.Errorf("failed to open summary sheet: %w", err)
	}
	if err := s.sheets.Clear(ctx, domain.SheetSummary); err != nil {
		return fmt.Errorf("failed to clear summary sheet: %w", err)
	}
	if err := s.sheets.WriteRange(ctx, domain.SheetSummary, "A1", rows); err != nil {
		return fmt.Errorf("failed to write summary sheet: %w", err)
	}

	log.Printf("Sync: summary exported, %d persons", len(summaries))
	return nil
}

// reconcileOvertime reads the incidents worksheet, applies every row a human
// marked OK through the overtime policy, then rewrites the worksheet from the
// store. Marks are re-applied every cycle until the pending duration reaches
// zero because the sheet is cleared and rebuilt unconditionally; any
// annotation other than OK written between the read and the clear is lost
// (kept as-is from the original system).
func (s *syncService) reconcileOvertime(ctx context.Context) error {
	if err := s.sheets.EnsureWorksheet(ctx, domain.SheetOvertime); err != nil {
		return fmt.Errorf("failed to open overtime sheet: %w", err)
	}

	s.applyValidations(ctx)

	incidents, err := s.dm.Attendance().ListOvertimeIncidents()
	if err != nil {
		return fmt.Errorf("failed to list overtime incidents: %w", err)
	}

	rows := [][]string{{"ID", "Nombre Completo", "Fecha", "Horas Extra (No Contadas)", "Salida Automática", "Validado (X/OK)"}}
	for _, incident := range incidents {
		rows = append(rows, []string{
			strconv.FormatInt(incident.ExternalID, 10),
			incident.FullName,
			incident.Date,
			incident.OvertimePending,
			clockOrDash(incident.ExitTime),
			"", // left for human validation
		})
	}

	if err := s.sheets.Clear(ctx, domain.SheetOvertime); err != nil {
		return fmt.Errorf("failed to clear overtime sheet: %w", err)
	}
	if err := s.sheets.WriteRange(ctx, domain.SheetOvertime, "A1", rows); err != nil {
		return fmt.Errorf("failed to write overtime sheet: %w", err)
	}

	log.Printf("Sync: overtime report exported, %d pending incidents", len(incidents))
	return nil
}

func (s *syncService) applyValidations(ctx context.Context) {
	current, err := s.sheets.ReadAll(ctx, domain.SheetOvertime)
	if err != nil {
		log.Printf("Sync: could not read overtime validations: %v", err)
		return
	}
	if len(current) < 2 {
		return
	}

	headers := lowercased(current[0])
	idxID := findColumn(headers, "id", "discord")
	idxDate := findColumn(headers, "fecha")
	idxMark := findColumn(headers, "validado")
	if idxID < 0 || idxDate < 0 || idxMark < 0 {
		log.Printf("Sync: overtime sheet columns not recognized, skipping validations: %v", domain.ErrSchemaMismatch)
		return
	}

	for _, row := range current[1:] {
		if idxMark >= len(row) || idxID >= len(row) || idxDate >= len(row) {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(row[idxMark]), domain.OvertimeValidatedMark) {
			continue
		}

		externalID, ok := extractNumericID(strings.TrimSpace(row[idxID]))
		if !ok {
			continue
		}
		date := strings.TrimSpace(row[idxDate])
		if date == "" {
			continue
		}

		if err := s.overtime.Validate(ctx, externalID, date); err != nil {
			log.Printf("Sync: overtime validation for %d on %s failed: %v", externalID, date, err)
		}
	}
}

func lowercased(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = strings.ToLower(cell)
	}
	return out
}

// findColumn returns the index of the first header containing any of the
// needles (case-insensitive substring match), or -1.
func findColumn(lowerHeaders []string, needles ...string) int {
	for i, header := range lowerHeaders {
		for _, needle := range needles {
			if strings.Contains(header, needle) {
				return i
			}
		}
	}
	return -1
}

// findIdentifierColumn locates the roster id column. The qualified name wins;
// on the bare fallback the surname header is excluded because "apellido" also
// contains "id".
func findIdentifierColumn(lowerHeaders []string) int {
	if idx := findColumn(lowerHeaders, "discord"); idx >= 0 {
		return idx
	}
	for i, header := range lowerHeaders {
		if strings.Contains(header, "id") && !strings.Contains(header, "apellido") {
			return i
		}
	}
	return -1
}

// extractNumericID turns a roster identifier cell into a numeric id.
// Decimal-looking values truncate ("123.0" -> 123); otherwise non-digits are
// stripped; a cell with nothing usable is rejected.
func extractNumericID(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}

	if strings.Contains(raw, ".") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return int64(f), true
		}
	}

	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}

	id, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func spanishDateLabel(date string) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return timeutil.SpanishDate(t)
}
