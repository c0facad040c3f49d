package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/bengalbay/payserver/internal/config"
)

const ordersSheetTitle = "Orders"

// googleRowStore implements rowStore against the Google Sheets API using
// service-account JWT credentials.
type googleRowStore struct {
	svc           *gsheets.Service
	spreadsheetID string
}

func newGoogleRowStore(ctx context.Context, cfg *config.Config) (*googleRowStore, error) {
	jwtCfg := &jwt.Config{
		Email:      cfg.GoogleClientEmail,
		PrivateKey: []byte(cfg.GooglePrivateKey),
		Scopes:     []string{"https://www.googleapis.com/auth/spreadsheets"},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &googleRowStore{svc: svc, spreadsheetID: cfg.GoogleSheetID}, nil
}

// load fetches spreadsheet metadata and ensures the Orders sheet exists with
// its header row. Returns the spreadsheet title.
func (s *googleRowStore) load(ctx context.Context) (string, error) {
	doc, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("load spreadsheet: %w", err)
	}

	for _, sheet := range doc.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == ordersSheetTitle {
			return doc.Properties.Title, nil
		}
	}

	_, err = s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			AddSheet: &gsheets.AddSheetRequest{
				Properties: &gsheets.SheetProperties{Title: ordersSheetTitle},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create orders sheet: %w", err)
	}

	if err := s.appendRow(ctx, headerRow); err != nil {
		return "", fmt.Errorf("write header row: %w", err)
	}

	return doc.Properties.Title, nil
}

func (s *googleRowStore) appendRow(ctx context.Context, row []string) error {
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.dataRange(), &gsheets.ValueRange{
		Values: [][]interface{}{toCells(row)},
	}).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

func (s *googleRowStore) readRows(ctx context.Context) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, fmt.Sprintf("%s!A2:L", ordersSheetTitle)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, cells := range resp.Values {
		row := make([]string, 0, len(cells))
		for _, cell := range cells {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *googleRowStore) updateRow(ctx context.Context, index int, row []string) error {
	// Data rows start below the header at sheet row 2.
	target := fmt.Sprintf("%s!A%d:L%d", ordersSheetTitle, index+2, index+2)
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, target, &gsheets.ValueRange{
		Values: [][]interface{}{toCells(row)},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update row: %w", err)
	}
	return nil
}

func (s *googleRowStore) dataRange() string {
	return fmt.Sprintf("%s!A:L", ordersSheetTitle)
}

func toCells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}
