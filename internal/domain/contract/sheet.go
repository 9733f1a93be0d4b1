package contract

import (
	"context"

	"github.com/teamtrack/attendance-bot/internal/domain/entity"
)

// SheetAPI is the spreadsheet capability consumed by the synchronizer. The
// synchronizer only ever reads whole worksheets and rewrites whole ranges, so
// the surface stays small enough to fake in tests.
type SheetAPI interface {
	// EnsureWorksheet opens the named worksheet, creating it when missing.
	EnsureWorksheet(ctx context.Context, name string) error

	// ReadAll returns every row of the worksheet as strings.
	ReadAll(ctx context.Context, sheet string) ([][]string, error)

	// Clear removes all values from the worksheet.
	Clear(ctx context.Context, sheet string) error

	// WriteRange writes a 2-D block of strings starting at origin (e.g. "A1").
	WriteRange(ctx context.Context, sheet, origin string, values [][]string) error

	// FormatRange applies a style to a cell range (e.g. "A1:F1").
	FormatRange(ctx context.Context, sheet, cellRange string, style entity.CellStyle) error
}
