package steeldb

import (
	"database/sql"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/structs"
)

// Writer creates and populates tables in a new steel database. Entries are
// buffered and written in one transaction per Flush.
type Writer struct {
	*sql.DB

	tables     map[string]*table
	batchSize  int
	entryCount int
}

type table struct {
	entries []any
}

// Create creates the database file at path. It refuses to overwrite an
// existing file.
func Create(path string) (*Writer, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("file %s already exists", path)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	// sql.Open is lazy; ping so the file exists on return
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	return &Writer{
		DB:        db,
		tables:    make(map[string]*table),
		batchSize: 10000,
	}, nil
}

// NewWriterWithDB creates a Writer over an existing database handle.
func NewWriterWithDB(db *sql.DB) *Writer {
	return &Writer{
		DB:        db,
		tables:    make(map[string]*table),
		batchSize: 10000,
	}
}

// CreateTable creates a table with one column per field of the sample
// struct.
func (w *Writer) CreateTable(tableName string, sample any) error {
	fields := strings.Join(structs.Names(sample), ", \n\t")

	createTableSQL := `CREATE TABLE ` + tableName +
		` (` + "\n\t" + fields + "\n" + `);`
	if _, err := w.Exec(createTableSQL); err != nil {
		return fmt.Errorf("creating table %s: %w", tableName, err)
	}

	w.tables[tableName] = &table{}

	return nil
}

// Insert buffers an entry for a table created with CreateTable.
func (w *Writer) Insert(tableName string, entry any) error {
	t, exists := w.tables[tableName]
	if !exists {
		return fmt.Errorf("table %s does not exist", tableName)
	}

	t.entries = append(t.entries, entry)

	w.entryCount++
	if w.entryCount >= w.batchSize {
		return w.Flush()
	}

	return nil
}

// Flush writes all buffered entries into the database in one transaction.
func (w *Writer) Flush() error {
	if w.entryCount == 0 {
		return nil
	}

	tx, err := w.Begin()
	if err != nil {
		return err
	}

	for tableName, t := range w.tables {
		if len(t.entries) == 0 {
			continue
		}

		stmt, err := prepareInsert(tx, tableName, t.entries[0])
		if err != nil {
			tx.Rollback()
			return err
		}

		for _, entry := range t.entries {
			values := reflect.ValueOf(entry)
			v := make([]any, 0, values.NumField())
			for i := 0; i < values.NumField(); i++ {
				v = append(v, values.Field(i).Interface())
			}

			if _, err := stmt.Exec(v...); err != nil {
				stmt.Close()
				tx.Rollback()
				return err
			}
		}

		t.entries = nil
		stmt.Close()
	}

	w.entryCount = 0

	return tx.Commit()
}

func prepareInsert(tx *sql.Tx, tableName string, sample any) (*sql.Stmt, error) {
	n := structs.Names(sample)
	for i := range n {
		n[i] = "?"
	}

	sqlStr := "INSERT INTO " + tableName +
		" VALUES (" + strings.Join(n, ", ") + ")"

	return tx.Prepare(sqlStr)
}
