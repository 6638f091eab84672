package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
	"github.com/diillson/dfc-dashboard-go/internal/shared/types"
)

type fakeDfcRepo struct {
	rows    []entity.DfcFlatRow
	err     error
	queries []entity.Query
}

func (f *fakeDfcRepo) Execute(_ context.Context, q entity.Query) ([]entity.DfcFlatRow, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

type fakeWriter struct {
	saved   int
	calls   int
	failAt  int
	failErr error
}

func (f *fakeWriter) Save(_ context.Context, rows []entity.DfcFlatRow) (int, error) {
	f.calls++
	if f.failAt > 0 && f.calls == f.failAt {
		return 0, f.failErr
	}
	f.saved += len(rows)
	return len(rows), nil
}

type fakeCleaningWriter struct {
	fakeWriter
	deleted []string
	resets  int
	err     error
}

func (f *fakeCleaningWriter) DeleteEmpresa(_ context.Context, empresaID string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.deleted = append(f.deleted, empresaID)
	return 1, nil
}

func (f *fakeCleaningWriter) Reset(_ context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.resets++
	return nil
}

type fakePrefsRepo struct {
	data    map[string]entity.ReportPreferences
	saves   int
	loadErr error
}

func newFakePrefsRepo() *fakePrefsRepo {
	return &fakePrefsRepo{data: make(map[string]entity.ReportPreferences)}
}

func (f *fakePrefsRepo) Load(key entity.PreferencesKey) (entity.ReportPreferences, error) {
	if f.loadErr != nil {
		return entity.ReportPreferences{}, f.loadErr
	}
	return f.data[key.String()], nil
}

func (f *fakePrefsRepo) Save(key entity.PreferencesKey, prefs entity.ReportPreferences) error {
	f.saves++
	f.data[key.String()] = prefs
	return nil
}

var errBoom = errors.New("boom")

// fakeConsole grava tudo o que seria exibido.
type fakeConsole struct {
	out      strings.Builder
	warnings []string
	errors   []string
	tables   []*fakeTable
	trend    []types.MonthlyValue
	paired   []types.PairedValue
	progress *fakeProgress
}

func (c *fakeConsole) Print(a ...interface{})                  { fmt.Fprint(&c.out, a...) }
func (c *fakeConsole) Printf(format string, a ...interface{})  { fmt.Fprintf(&c.out, format, a...) }
func (c *fakeConsole) Println(a ...interface{})                { fmt.Fprintln(&c.out, a...) }
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {}
func (c *fakeConsole) Status(message string) types.StatusHandle   { return fakeStatus{} }
func (c *fakeConsole) ProgressWithTotal(total int, title string) types.ProgressHandle {
	c.progress = &fakeProgress{total: total}
	return c.progress
}
func (c *fakeConsole) CreateTable() types.TableInterface {
	t := &fakeTable{}
	c.tables = append(c.tables, t)
	return t
}
func (c *fakeConsole) DisplayTrendBars(title string, values []types.MonthlyValue) {
	c.trend = values
}
func (c *fakeConsole) DisplayPairedBars(title string, values []types.PairedValue) {
	c.paired = values
}

type fakeStatus struct{}

func (fakeStatus) Update(string) {}
func (fakeStatus) Stop()         {}

type fakeProgress struct {
	total, count int
	stopped      bool
}

func (p *fakeProgress) Increment() { p.count++ }
func (p *fakeProgress) Stop()      { p.stopped = true }

type fakeTable struct {
	columns []string
	rows    [][]string
}

func (t *fakeTable) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

func (t *fakeTable) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = fmt.Sprint(c)
	}
	t.rows = append(t.rows, row)
}

func (t *fakeTable) Render() string {
	return strings.Join(t.columns, "|")
}
