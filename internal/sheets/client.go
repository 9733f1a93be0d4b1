package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/teamtrack/attendance-bot/internal/domain/entity"
)

// Client talks to one Google spreadsheet. Worksheet ids are cached after the
// first lookup; EnsureWorksheet refreshes the cache when it creates a tab.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string

	mu       sync.Mutex
	sheetIDs map[string]int64
}

func New(ctx context.Context, credentialsFile, spreadsheetID string) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetIDs:      make(map[string]int64),
	}, nil
}

// EnsureWorksheet creates the named tab when it does not exist yet.
func (c *Client) EnsureWorksheet(ctx context.Context, name string) error {
	if _, err := c.sheetID(ctx, name); err == nil {
		return nil
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: name},
			},
		}},
	}
	resp, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to create worksheet %s: %w", name, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, reply := range resp.Replies {
		if reply.AddSheet != nil && reply.AddSheet.Properties != nil {
			c.sheetIDs[name] = reply.AddSheet.Properties.SheetId
		}
	}
	return nil
}

// ReadAll returns every populated cell of the worksheet as strings.
func (c *Client) ReadAll(ctx context.Context, name string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, quoteRange(name, "")).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %s: %w", name, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *Client) Clear(ctx context.Context, name string) error {
	_, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, quoteRange(name, ""), &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear worksheet %s: %w", name, err)
	}
	return nil
}

// WriteRange writes the values block with origin as its top-left cell.
func (c *Client) WriteRange(ctx context.Context, name, origin string, values [][]string) error {
	raw := make([][]interface{}, len(values))
	for i, row := range values {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		raw[i] = cells
	}

	vr := &sheets.ValueRange{Values: raw}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, quoteRange(name, origin), vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write worksheet %s: %w", name, err)
	}
	return nil
}

// FormatRange applies the style to every cell of the A1 range.
func (c *Client) FormatRange(ctx context.Context, name, cellRange string, style entity.CellStyle) error {
	sheetID, err := c.sheetID(ctx, name)
	if err != nil {
		return err
	}

	grid, err := parseA1Range(sheetID, cellRange)
	if err != nil {
		return err
	}

	format := &sheets.CellFormat{
		TextFormat: &sheets.TextFormat{
			Bold:     style.Bold,
			FontSize: style.FontSize,
		},
	}
	if style.Background != nil {
		format.BackgroundColor = toColor(style.Background)
	}
	if style.Foreground != nil {
		format.TextFormat.ForegroundColor = toColor(style.Foreground)
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			RepeatCell: &sheets.RepeatCellRequest{
				Range:  grid,
				Cell:   &sheets.CellData{UserEnteredFormat: format},
				Fields: "userEnteredFormat(backgroundColor,textFormat)",
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to format worksheet %s: %w", name, err)
	}
	return nil
}

func (c *Client) sheetID(ctx context.Context, name string) (int64, error) {
	c.mu.Lock()
	if id, ok := c.sheetIDs[name]; ok {
		c.mu.Unlock()
		return id, nil
	}
	c.mu.Unlock()

	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("failed to load spreadsheet metadata: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, sheet := range meta.Sheets {
		if sheet.Properties != nil {
			c.sheetIDs[sheet.Properties.Title] = sheet.Properties.SheetId
		}
	}
	if id, ok := c.sheetIDs[name]; ok {
		return id, nil
	}
	return 0, fmt.Errorf("worksheet %s not found", name)
}

func toColor(rgb *entity.RGB) *sheets.Color {
	return &sheets.Color{
		Red:   rgb.Red,
		Green: rgb.Green,
		Blue:  rgb.Blue,
	}
}

func quoteRange(name, cells string) string {
	if cells == "" {
		return fmt.Sprintf("'%s'", name)
	}
	return fmt.Sprintf("'%s'!%s", name, cells)
}

// parseA1Range converts a range like "A2:F2" into a half-open grid range.
func parseA1Range(sheetID int64, cellRange string) (*sheets.GridRange, error) {
	parts := strings.SplitN(cellRange, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid cell range %q", cellRange)
	}

	startCol, startRow, err := parseA1Cell(parts[0])
	if err != nil {
		return nil, err
	}
	endCol, endRow, err := parseA1Cell(parts[1])
	if err != nil {
		return nil, err
	}

	return &sheets.GridRange{
		SheetId:          sheetID,
		StartColumnIndex: startCol,
		EndColumnIndex:   endCol + 1,
		StartRowIndex:    startRow,
		EndRowIndex:      endRow + 1,
	}, nil
}

func parseA1Cell(cell string) (col, row int64, err error) {
	i := 0
	for i < len(cell) && cell[i] >= 'A' && cell[i] <= 'Z' {
		col = col*26 + int64(cell[i]-'A'+1)
		i++
	}
	if col == 0 || i == len(cell) {
		return 0, 0, fmt.Errorf("invalid cell reference %q", cell)
	}
	for ; i < len(cell); i++ {
		if cell[i] < '0' || cell[i] > '9' {
			return 0, 0, fmt.Errorf("invalid cell reference %q", cell)
		}
		row = row*10 + int64(cell[i]-'0')
	}
	if row == 0 {
		return 0, 0, fmt.Errorf("invalid cell reference %q", cell)
	}
	return col - 1, row - 1, nil
}
