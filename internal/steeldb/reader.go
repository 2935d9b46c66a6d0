// Package steeldb reads and writes the structural steel SQLite database.
package steeldb

import (
	"database/sql"
	"fmt"
	"reflect"
	"strings"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
)

// Reader loads named tables from a SQLite database into struct instances.
type Reader struct {
	*sql.DB
}

// OpenReader opens the database file at path for reading.
func OpenReader(path string) (*Reader, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return &Reader{DB: db}, nil
}

// NewReaderWithDB creates a Reader over an existing database handle.
func NewReaderWithDB(db *sql.DB) *Reader {
	return &Reader{DB: db}
}

// Tables returns the names of all tables present in the database.
func (r *Reader) Tables() ([]string, error) {
	rows, err := r.Query(
		"SELECT name FROM sqlite_master WHERE type='table' ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}

	return tables, rows.Err()
}

// ReadTable scans every row of a table into new instances of the sample
// struct type, matching columns to fields by name. The match is
// case-insensitive since legacy databases use lower-case column names.
// Columns without a matching field are ignored.
func (r *Reader) ReadTable(tableName string, sample any) ([]any, error) {
	structType := reflect.TypeOf(sample)

	rows, err := r.Query("SELECT * FROM " + tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	fieldMap := make(map[string]int)
	for i := 0; i < structType.NumField(); i++ {
		fieldMap[strings.ToLower(structType.Field(i).Name)] = i
	}

	var results []any
	for rows.Next() {
		structPtr := reflect.New(structType)
		structVal := structPtr.Elem()
		scanTargets := make([]any, len(columns))

		for i, colName := range columns {
			if fieldIdx, ok := fieldMap[strings.ToLower(colName)]; ok {
				scanTargets[i] = structVal.Field(fieldIdx).Addr().Interface()
			} else {
				var placeholder any
				scanTargets[i] = &placeholder
			}
		}

		if err := rows.Scan(scanTargets...); err != nil {
			return nil, err
		}

		results = append(results, structPtr.Interface())
	}

	return results, rows.Err()
}
