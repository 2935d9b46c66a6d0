package steeldb_test

import (
	"path/filepath"
	"testing"

	"github.com/PedroBiel/EN-10025/internal/steeldb"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type steelRow struct {
	Calidad string
	Tmax    int
	Fy      int
	Fu      int
}

func setupTestDB(t *testing.T) (*steeldb.Writer, string) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	writer, err := steeldb.Create(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { writer.Close() })

	return writer, dbPath
}

func TestCreate_RefusesExistingFile(t *testing.T) {
	_, dbPath := setupTestDB(t)

	_, err := steeldb.Create(dbPath)
	assert.Error(t, err, "creating over an existing file should fail")
}

func TestWriter_CreateTable(t *testing.T) {
	writer, _ := setupTestDB(t)

	require.NoError(t, writer.CreateTable("steel", steelRow{}))

	var tableName string
	err := writer.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='steel';").
		Scan(&tableName)
	require.NoError(t, err, "Table should be created")
	assert.Equal(t, "steel", tableName)
}

func TestWriter_InsertUnknownTable(t *testing.T) {
	writer, _ := setupTestDB(t)

	err := writer.Insert("missing", steelRow{})
	assert.Error(t, err)
}

func TestWriter_FlushAndReadBack(t *testing.T) {
	writer, dbPath := setupTestDB(t)

	require.NoError(t, writer.CreateTable("steel", steelRow{}))
	require.NoError(t, writer.Insert("steel", steelRow{"S 235 JR", 16, 235, 360}))
	require.NoError(t, writer.Insert("steel", steelRow{"S 235 JR", 40, 225, 360}))
	require.NoError(t, writer.Flush())
	require.NoError(t, writer.Close())

	reader, err := steeldb.OpenReader(dbPath)
	require.NoError(t, err)
	defer reader.Close()

	tables, err := reader.Tables()
	require.NoError(t, err)
	assert.Contains(t, tables, "steel")

	entries, err := reader.ReadTable("steel", steelRow{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0].(*steelRow)
	assert.Equal(t, "S 235 JR", first.Calidad)
	assert.Equal(t, 16, first.Tmax)
	assert.Equal(t, 235, first.Fy)
	assert.Equal(t, 360, first.Fu)
}

func TestReader_LegacyLowerCaseColumns(t *testing.T) {
	writer, dbPath := setupTestDB(t)

	_, err := writer.Exec(
		"CREATE TABLE EN_10025_2_2004 (Calidad, tmax, fy, fu);")
	require.NoError(t, err)
	_, err = writer.Exec(
		"INSERT INTO EN_10025_2_2004 VALUES ('S 355 J2', 63, 345, 470);")
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader, err := steeldb.OpenReader(dbPath)
	require.NoError(t, err)
	defer reader.Close()

	entries, err := reader.ReadTable("EN_10025_2_2004", steelRow{})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	row := entries[0].(*steelRow)
	assert.Equal(t, "S 355 J2", row.Calidad)
	assert.Equal(t, 63, row.Tmax)
	assert.Equal(t, 345, row.Fy)
	assert.Equal(t, 470, row.Fu)
}

func TestReader_IgnoresUnknownColumns(t *testing.T) {
	writer, dbPath := setupTestDB(t)

	_, err := writer.Exec("CREATE TABLE steel (Calidad, tmax, fy, fu, norma);")
	require.NoError(t, err)
	_, err = writer.Exec(
		"INSERT INTO steel VALUES ('S 275 JR', 40, 265, 410, 'EN 10025-2');")
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader, err := steeldb.OpenReader(dbPath)
	require.NoError(t, err)
	defer reader.Close()

	entries, err := reader.ReadTable("steel", steelRow{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 265, entries[0].(*steelRow).Fy)
}
