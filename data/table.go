package data

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/table"
)

// FromTable turns the rows of a column oriented go-gg table into Records.
// Every column of t becomes a field of each record.
func FromTable(t *table.Table) (Records, error) {
	if t == nil {
		return Records{}, nil
	}
	n := t.Len()
	rs := make(Records, n)
	for i := range rs {
		rs[i] = make(Record, len(t.Columns()))
	}
	for _, name := range t.Columns() {
		col := reflect.ValueOf(t.Column(name))
		if col.Kind() != reflect.Slice {
			return nil, fmt.Errorf("column %q: not a slice but %s", name, col.Kind())
		}
		if col.Len() != n {
			return nil, fmt.Errorf("column %q: %d values, want %d", name, col.Len(), n)
		}
		for i := 0; i < n; i++ {
			rs[i][name] = col.Index(i).Interface()
		}
	}
	return rs, nil
}
