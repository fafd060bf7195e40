package sheet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var (
	ErrConnection = errors.New("sheet: connection failed")
	ErrWrite      = errors.New("sheet: write rejected")
)

// Row is one data row of the spreadsheet. Values are keyed by the header
// row's cell text, not by the registry, so reads tolerate header drift.
// Index is the 1-based sheet row (the header is row 1).
type Row struct {
	Index  int
	Values map[string]string
}

// Cell targets one registry column of a row for a batched patch.
type Cell struct {
	Col   int
	Value string
}

// Client is a thin synchronous wrapper over the Sheets API. Connect is
// idempotent and the service handle is cached; callers impose timeouts
// through ctx.
type Client struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsFile string

	mu  sync.Mutex
	svc *sheets.Service
}

func NewClient(spreadsheetID, credentialsFile string) *Client {
	return &Client{
		SpreadsheetID:   spreadsheetID,
		SheetName:       "Sheet1",
		CredentialsFile: credentialsFile,
	}
}

// Connect authorizes against the service-account key and caches the
// handle. Safe to call repeatedly.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.svc != nil {
		return nil
	}

	key, err := os.ReadFile(c.CredentialsFile)
	if err != nil {
		return fmt.Errorf("%w: reading credentials: %v", ErrConnection, err)
	}

	conf, err := google.JWTConfigFromJSON(key, sheets.SpreadsheetsScope)
	if err != nil {
		return fmt.Errorf("%w: parsing credentials: %v", ErrConnection, err)
	}

	svc, err := sheets.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	c.svc = svc
	return nil
}

func (c *Client) service(ctx context.Context) (*sheets.Service, error) {
	if err := c.Connect(ctx); err != nil {
		return nil, err
	}
	return c.svc, nil
}

// ReadAll scans the whole sheet and returns every data row keyed by the
// header. Full scan is fine here: the dataset is human-scale (one row per
// client), there is no index to use.
func (c *Client) ReadAll(ctx context.Context) ([]Row, error) {
	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Spreadsheets.Values.Get(c.SpreadsheetID, c.SheetName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	header := make([]string, len(resp.Values[0]))
	for i, h := range resp.Values[0] {
		header[i] = fmt.Sprint(h)
	}

	rows := make([]Row, 0, len(resp.Values)-1)
	for i, raw := range resp.Values[1:] {
		values := make(map[string]string, len(header))
		for j, name := range header {
			if j < len(raw) {
				values[name] = fmt.Sprint(raw[j])
			} else {
				values[name] = ""
			}
		}
		rows = append(rows, Row{Index: i + 2, Values: values})
	}
	return rows, nil
}

// Append adds one row at the end of the sheet. Not transactional: on error
// the row state is unknown and the caller must re-read before retrying.
func (c *Client) Append(ctx context.Context, values []string) error {
	svc, err := c.service(ctx)
	if err != nil {
		return err
	}

	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}

	_, err = svc.Spreadsheets.Values.
		Append(c.SpreadsheetID, c.SheetName, &sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: append: %v", ErrWrite, err)
	}
	return nil
}

// WriteCells patches the named columns of one row in a single
// values.batchUpdate round trip, so a concurrent patch to different
// columns of the same row cannot interleave with ours.
func (c *Client) WriteCells(ctx context.Context, rowIndex int, cells []Cell) error {
	if len(cells) == 0 {
		return nil
	}

	svc, err := c.service(ctx)
	if err != nil {
		return err
	}

	data := make([]*sheets.ValueRange, len(cells))
	for i, cell := range cells {
		data[i] = &sheets.ValueRange{
			Range:  fmt.Sprintf("%s!%s%d", c.SheetName, columnName(cell.Col), rowIndex),
			Values: [][]interface{}{{cell.Value}},
		}
	}

	_, err = svc.Spreadsheets.Values.
		BatchUpdate(c.SpreadsheetID, &sheets.BatchUpdateValuesRequest{
			ValueInputOption: "RAW",
			Data:             data,
		}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: batch update row %d: %v", ErrWrite, rowIndex, err)
	}
	return nil
}

// columnName converts a zero-based column index to A1 letters.
func columnName(col int) string {
	name := ""
	for col >= 0 {
		name = string(rune('A'+col%26)) + name
		col = col/26 - 1
	}
	return name
}
