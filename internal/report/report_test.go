package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	calls    []string
	appended [][]interface{}
	clearErr error
}

func (w *recordingWriter) ClearTab(_ context.Context, spreadsheetID, tab string) error {
	w.calls = append(w.calls, "clear "+spreadsheetID+"/"+tab)
	return w.clearErr
}

func (w *recordingWriter) AppendRows(_ context.Context, spreadsheetID, tab string, rows [][]interface{}) error {
	w.calls = append(w.calls, "append "+spreadsheetID+"/"+tab)
	w.appended = append(w.appended, rows...)
	return nil
}

func newTestExporter(w sheetWriter) *SheetsExporter {
	return &SheetsExporter{
		writer:        w,
		spreadsheetID: "sheet-1",
		tab:           "Report",
		now:           func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func TestReplaceClearsThenWritesHeader(t *testing.T) {
	w := &recordingWriter{}
	e := newTestExporter(w)

	res, err := e.Export(context.Background(), Table{
		Header: []string{"name", "count"},
		Rows:   [][]any{{"jobType", 5}, {"workMode", 6}},
	}, ModeReplace)
	require.NoError(t, err)

	assert.Equal(t, []string{"clear sheet-1/Report", "append sheet-1/Report"}, w.calls)
	require.Len(t, w.appended, 3)
	assert.Equal(t, []interface{}{"name", "count"}, w.appended[0])
	assert.Equal(t, 2, res.WrittenRows)
	assert.Equal(t, "sheet-1/Report", res.Destination)
}

func TestAppendSkipsHeaderAndClear(t *testing.T) {
	w := &recordingWriter{}
	e := newTestExporter(w)

	_, err := e.Export(context.Background(), Table{Header: []string{"id"}, Rows: [][]any{{"c1"}}}, ModeAppend)
	require.NoError(t, err)

	assert.Equal(t, []string{"append sheet-1/Report"}, w.calls)
	assert.Equal(t, [][]interface{}{{"c1"}}, w.appended)
}

func TestEmptyAppendWritesNothing(t *testing.T) {
	w := &recordingWriter{}
	res, err := newTestExporter(w).Export(context.Background(), Table{}, ModeAppend)
	require.NoError(t, err)
	assert.Empty(t, w.calls)
	assert.Equal(t, "no rows to export", res.Message)
}

func TestClearFailureStopsExport(t *testing.T) {
	w := &recordingWriter{clearErr: errors.New("quota")}
	_, err := newTestExporter(w).Export(context.Background(), Table{Rows: [][]any{{"x"}}}, ModeReplace)
	require.Error(t, err)
	assert.Len(t, w.calls, 1)
}

func TestNopIsDisabled(t *testing.T) {
	var e Exporter = Nop{}
	assert.False(t, e.Enabled())
	_, err := e.Export(context.Background(), Table{Rows: [][]any{{"x"}}}, ModeReplace)
	assert.NoError(t, err)
}
