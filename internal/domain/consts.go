package domain

// Attendance status names. They mirror the seeded rows of the
// attendance_status table; comparisons elsewhere go through the lookup table,
// these constants exist for defaults and user-facing text.
const (
	StatusPresente           = "Presente"
	StatusTardanza           = "Tardanza"
	StatusFaltaInjustificada = "Falta Injustificada"
	StatusFaltaRecuperada    = "Falta Recuperada"
	StatusPermiso            = "Permiso"
)

// StatusNames lists every valid status in enumeration order.
var StatusNames = []string{
	StatusPresente,
	StatusTardanza,
	StatusFaltaInjustificada,
	StatusFaltaRecuperada,
	StatusPermiso,
}

// ZeroDuration is the canonical zero value for stored durations.
const ZeroDuration = "00:00:00"

// DateLayout is the calendar-date format used in the store and the sheets.
const DateLayout = "2006-01-02"

// ClockLayout is the time-of-day format used in the store.
const ClockLayout = "15:04:05"

// Worksheet names of the exported report sheets.
const (
	SheetDetailed = "Reporte Detallado"
	SheetSummary  = "Resumen General"
	SheetOvertime = "Reporte Anti-Farming"
)

// OvertimeValidatedMark is the cell value a human writes in the incidents
// sheet to approve pending overtime.
const OvertimeValidatedMark = "OK"

// DefaultAdminRole is the team role assigned when none is given.
const DefaultAdminRole = "Developer"
