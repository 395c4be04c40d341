package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type Client struct {
	service *sheets.Service
}

type Config struct {
	CredentialsPath string
	CredentialsJSON []byte
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var opts []option.ClientOption

	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	} else if len(cfg.CredentialsJSON) > 0 {
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	} else {
		return nil, fmt.Errorf("sheets: credentials path or JSON is required")
	}
	opts = append(opts, option.WithScopes(sheets.SpreadsheetsScope))

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to create service: %w", err)
	}

	return &Client{
		service: service,
	}, nil
}

// AppendRows appends rows after the last non-empty row of tab
func (c *Client) AppendRows(ctx context.Context, spreadsheetID, tab string, rows [][]interface{}) error {
	if c.service == nil {
		return fmt.Errorf("sheets: service is nil")
	}
	if len(rows) == 0 {
		return nil
	}

	valueRange := &sheets.ValueRange{
		Values: rows,
	}

	_, err := c.service.Spreadsheets.Values.Append(spreadsheetID, A1(tab, "A1"), valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: append to %q: %w", tab, err)
	}

	return nil
}

// ClearTab removes every value from tab, keeping formatting
func (c *Client) ClearTab(ctx context.Context, spreadsheetID, tab string) error {
	if c.service == nil {
		return fmt.Errorf("sheets: service is nil")
	}

	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, A1(tab, "A1:Z"), &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: clear %q: %w", tab, err)
	}

	return nil
}

// A1 builds a quoted A1 range for tab, defaulting to Sheet1
func A1(tab, cells string) string {
	if tab == "" {
		tab = "Sheet1"
	}
	return fmt.Sprintf("'%s'!%s", tab, cells)
}
