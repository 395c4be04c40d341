// Package report exports command results as rows of a Google Sheets tab.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jobease/jobease-admin/pkg/sheets"
)

// Mode selects how a table is written to its destination
type Mode int

const (
	// ModeReplace clears the tab and writes the header followed by the rows
	ModeReplace Mode = iota
	// ModeAppend adds the rows after existing content, without a header
	ModeAppend
)

// Table is a header plus rows of cell values
type Table struct {
	Header []string
	Rows   [][]any
}

// Result describes a finished export
type Result struct {
	Destination string
	WrittenRows int
	CompletedAt time.Time
	Message     string
}

// Exporter writes a table somewhere operators can read it
type Exporter interface {
	Export(ctx context.Context, table Table, mode Mode) (Result, error)
	Enabled() bool
}

type sheetWriter interface {
	ClearTab(ctx context.Context, spreadsheetID, tab string) error
	AppendRows(ctx context.Context, spreadsheetID, tab string, rows [][]interface{}) error
}

var _ sheetWriter = (*sheets.Client)(nil)

// SheetsExporter writes tables to one tab of a spreadsheet
type SheetsExporter struct {
	writer        sheetWriter
	spreadsheetID string
	tab           string
	now           func() time.Time
}

// NewSheetsExporter binds a Sheets client to a spreadsheet tab
func NewSheetsExporter(client *sheets.Client, spreadsheetID, tab string) *SheetsExporter {
	return &SheetsExporter{
		writer:        client,
		spreadsheetID: spreadsheetID,
		tab:           tab,
		now:           time.Now,
	}
}

func (e *SheetsExporter) Enabled() bool { return true }

func (e *SheetsExporter) Export(ctx context.Context, table Table, mode Mode) (Result, error) {
	result := Result{
		Destination: fmt.Sprintf("%s/%s", e.spreadsheetID, e.tab),
		CompletedAt: e.now().UTC(),
	}

	if mode == ModeReplace {
		if err := e.writer.ClearTab(ctx, e.spreadsheetID, e.tab); err != nil {
			return result, fmt.Errorf("report: clear tab: %w", err)
		}
	}

	values := make([][]interface{}, 0, len(table.Rows)+1)
	if mode == ModeReplace && len(table.Header) > 0 {
		header := make([]interface{}, len(table.Header))
		for i, h := range table.Header {
			header[i] = h
		}
		values = append(values, header)
	}
	for _, row := range table.Rows {
		values = append(values, row)
	}

	if len(values) == 0 {
		result.Message = "no rows to export"
		return result, nil
	}

	if err := e.writer.AppendRows(ctx, e.spreadsheetID, e.tab, values); err != nil {
		return result, fmt.Errorf("report: write rows: %w", err)
	}

	result.WrittenRows = len(table.Rows)
	result.Message = fmt.Sprintf("exported %d row(s)", result.WrittenRows)
	return result, nil
}

// Nop is used when no report destination is configured
type Nop struct{}

func (Nop) Enabled() bool { return false }

func (Nop) Export(context.Context, Table, Mode) (Result, error) {
	return Result{Message: "report destination not configured"}, nil
}
