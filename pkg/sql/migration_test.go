package sql

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayforge/hotel-booking-service/pkg/log"
)

func TestMigrator_Execute_RunsOnSingleSession(t *testing.T) {
	drv := &recordingDriver{}
	sqlDB := sql.OpenDB(recordingConnector{driver: drv})
	sqlDB.SetMaxIdleConns(0) // no idle reuse, pooled calls would land on fresh sessions
	db := &database{DB: sqlx.NewDb(sqlDB, "postgres"), logger: log.NewStub()}
	defer db.Close(context.Background())

	migrations := fstest.MapFS{
		"001_create_hotel.sql": &fstest.MapFile{Data: []byte(`CREATE TABLE hotel (id bigserial PRIMARY KEY)`)},
	}

	err := NewMigrator(db, log.NewStub()).Execute(context.Background(), FSMigrations(migrations))
	require.NoError(t, err)

	queries := drv.recordedQueries()
	require.NotEmpty(t, queries)
	assert.Contains(t, queries[0].query, "pg_advisory_lock")
	assert.Contains(t, queries[len(queries)-1].query, "pg_advisory_unlock")

	var migrationApplied bool
	for _, q := range queries {
		assert.Equal(t, queries[0].connID, q.connID, q.query)
		if strings.Contains(q.query, "CREATE TABLE hotel") {
			migrationApplied = true
		}
	}
	assert.True(t, migrationApplied)
}

type recordedQuery struct {
	connID int
	query  string
}

type recordingDriver struct {
	mu      sync.Mutex
	conns   int
	queries []recordedQuery
}

func (d *recordingDriver) Open(string) (driver.Conn, error) {
	return d.connect()
}

func (d *recordingDriver) connect() (driver.Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.conns++
	return &recordingConn{driver: d, id: d.conns}, nil
}

func (d *recordingDriver) record(connID int, query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queries = append(d.queries, recordedQuery{connID: connID, query: query})
}

func (d *recordingDriver) recordedQueries() []recordedQuery {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]recordedQuery(nil), d.queries...)
}

type recordingConnector struct {
	driver *recordingDriver
}

func (c recordingConnector) Connect(context.Context) (driver.Conn, error) {
	return c.driver.connect()
}

func (c recordingConnector) Driver() driver.Driver {
	return c.driver
}

type recordingConn struct {
	driver *recordingDriver
	id     int
}

func (c *recordingConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepared statements are not supported")
}

func (c *recordingConn) Close() error {
	return nil
}

func (c *recordingConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions are not supported")
}

func (c *recordingConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	c.driver.record(c.id, query)
	return driver.RowsAffected(1), nil
}

func (c *recordingConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	c.driver.record(c.id, query)
	switch {
	case strings.Contains(query, "pg_advisory_unlock"):
		return &staticRows{columns: []string{"pg_advisory_unlock"}, values: [][]driver.Value{{true}}}, nil
	case strings.Contains(query, "FROM migration"):
		return &staticRows{columns: []string{"id"}}, nil
	default:
		return &staticRows{}, nil
	}
}

type staticRows struct {
	columns []string
	values  [][]driver.Value
	pos     int
}

func (r *staticRows) Columns() []string {
	return r.columns
}

func (r *staticRows) Close() error {
	return nil
}

func (r *staticRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.values) {
		return io.EOF
	}
	copy(dest, r.values[r.pos])
	r.pos++
	return nil
}
