package tably

// KeyValue is a single column-value association.
type KeyValue struct {
	Key   string
	Value string
}

// Record is an ordered set of column-value pairs for one logical row.
// Within a record the last value written for a key wins, but the key keeps
// its original position.
type Record []KeyValue

// Has reports whether the record contains key.
func (r Record) Has(key string) bool {
	for _, kv := range r {
		if kv.Key == key {
			return true
		}
	}
	return false
}

// Get returns the value for key. When the record carries duplicate keys the
// last occurrence wins.
func (r Record) Get(key string) (string, bool) {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i].Key == key {
			return r[i].Value, true
		}
	}
	return "", false
}

// set updates the value for an existing key in place, or appends the pair.
func (r Record) set(key, value string) Record {
	for i := range r {
		if r[i].Key == key {
			r[i].Value = value
			return r
		}
	}
	return append(r, KeyValue{Key: key, Value: value})
}

// Table is an ordered sequence of records plus the unified column order.
// Columns accumulate in first-seen order as records are appended; a record
// lacking a column renders it as an empty string.
type Table struct {
	columns []string
	seen    map[string]struct{}
	records []Record
	skipped int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{seen: make(map[string]struct{})}
}

// Append adds a record, folding any new keys into the column order.
func (t *Table) Append(rec Record) {
	for _, kv := range rec {
		t.addColumn(kv.Key)
	}
	t.records = append(t.records, rec)
}

func (t *Table) addColumn(name string) {
	if _, ok := t.seen[name]; ok {
		return
	}
	t.seen[name] = struct{}{}
	t.columns = append(t.columns, name)
}

// Columns returns the unified column order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Rows materializes every record against the unified column order.
// Missing cells are empty strings.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.records))
	for i, rec := range t.records {
		row := make([]string, len(t.columns))
		for j, col := range t.columns {
			if v, ok := rec.Get(col); ok {
				row[j] = v
			}
		}
		rows[i] = row
	}
	return rows
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// Empty reports whether the table has neither columns nor records.
func (t *Table) Empty() bool { return len(t.columns) == 0 && len(t.records) == 0 }

// Skipped returns the number of malformed units dropped while parsing:
// unparseable JSON Lines entries, delimited rows whose field count does not
// match the header, and kv lines without a separator.
func (t *Table) Skipped() int { return t.skipped }

func (t *Table) skip() { t.skipped++ }
