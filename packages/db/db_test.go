package db

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	client, err := NewClient("sqlite://" + dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Exec(`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, age INTEGER)`))
	require.NoError(t, client.Exec(`INSERT INTO users (name, age) VALUES ('Alice', 30), ('Bob', 25)`))
	return client
}

func TestNewClient_SQLitePrefixes(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	client, err := NewClient("sqlite:" + dbPath)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Exec(`CREATE TABLE t (id INTEGER)`))
}

func TestNewClient_UnsupportedScheme(t *testing.T) {
	_, err := NewClient("oracle://host/db")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database scheme")
}

func TestQuery_Rows(t *testing.T) {
	client := newTestClient(t)

	result, err := client.Query("SELECT name, age FROM users ORDER BY age")
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "age"}, result.Columns)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "Bob", result.Rows[0]["name"])
	assert.Equal(t, int64(25), result.Rows[0]["age"])
}

func TestQuery_Count(t *testing.T) {
	client := newTestClient(t)

	result, err := client.Query("SELECT COUNT(*) as count FROM users")
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, int64(2), result.Rows[0]["count"])
}

// recordingReporter collects failures instead of failing the test.
type recordingReporter struct {
	failures []string
}

func (r *recordingReporter) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestExpect_RowCount(t *testing.T) {
	client := newTestClient(t)
	r := &recordingReporter{}

	Expect(r, client, "SELECT * FROM users").RowCount(2)
	assert.Empty(t, r.failures)

	Expect(r, client, "SELECT * FROM users").RowCount(5)
	require.Len(t, r.failures, 1)
	assert.Contains(t, r.failures[0], "expected 5 rows, got 2")
}

func TestExpect_Empty(t *testing.T) {
	client := newTestClient(t)
	r := &recordingReporter{}

	Expect(r, client, "SELECT * FROM users WHERE age > 100").Empty()

	assert.Empty(t, r.failures)
}

func TestExpect_Value(t *testing.T) {
	client := newTestClient(t)
	r := &recordingReporter{}

	Expect(r, client, "SELECT name, age FROM users ORDER BY name").
		Value(0, "name", "Alice").
		Value(0, "age", 30).
		Value(1, "name", "Bob")

	assert.Empty(t, r.failures)
}

func TestExpect_ValueMismatch(t *testing.T) {
	client := newTestClient(t)
	r := &recordingReporter{}

	Expect(r, client, "SELECT name FROM users ORDER BY name").Value(0, "name", "Zed")

	require.Len(t, r.failures, 1)
	assert.Contains(t, r.failures[0], "expected Zed, got Alice")
}

func TestExpect_QueryErrorShortCircuits(t *testing.T) {
	client := newTestClient(t)
	r := &recordingReporter{}

	Expect(r, client, "SELECT * FROM nope").RowCount(1).Value(0, "x", 1)

	assert.Len(t, r.failures, 1)
}

func TestExpect_WithArgs(t *testing.T) {
	client := newTestClient(t)
	r := &recordingReporter{}

	Expect(r, client, "SELECT * FROM users WHERE age > ?", 28).RowCount(1)

	assert.Empty(t, r.failures)
}
