package mocks

import (
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// StaticRows is a pgx.Rows over fixed values. Each row holds one value per
// scanned column, typed exactly like the Scan destination it fills.
type StaticRows struct {
	Data   [][]any
	Failed error
	pos    int
	closed bool
}

var _ pgx.Rows = (*StaticRows)(nil)

func NewStaticRows(rows ...[]any) *StaticRows {
	return &StaticRows{Data: rows}
}

func (r *StaticRows) Close() { r.closed = true }
func (r *StaticRows) Err() error { return r.Failed }
func (r *StaticRows) CommandTag() pgconn.CommandTag { return pgconn.NewCommandTag("SELECT") }
func (r *StaticRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *StaticRows) RawValues() [][]byte { return nil }
func (r *StaticRows) Conn() *pgx.Conn { return nil }

func (r *StaticRows) Next() bool {
	if r.closed || r.pos >= len(r.Data) {
		return false
	}
	r.pos++
	return true
}

func (r *StaticRows) Values() ([]any, error) {
	if r.pos == 0 {
		return nil, fmt.Errorf("no current row")
	}
	return r.Data[r.pos-1], nil
}

func (r *StaticRows) Scan(dest ...any) error {
	if r.pos == 0 {
		return fmt.Errorf("no current row")
	}
	return assign(r.Data[r.pos-1], dest)
}

// StaticRow is a pgx.Row returning Values, or Failed when set.
type StaticRow struct {
	Values []any
	Failed error
}

func (r StaticRow) Scan(dest ...any) error {
	if r.Failed != nil {
		return r.Failed
	}
	return assign(r.Values, dest)
}

func assign(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values into %d destinations", len(values), len(dest))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(values[i])
		if !v.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("scan column %d: %s is not assignable to %s", i, v.Type(), target.Type())
		}
		target.Set(v)
	}
	return nil
}
