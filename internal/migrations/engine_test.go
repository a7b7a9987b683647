package migrations

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func testDefs() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_widgets",
			Up: func(ctx context.Context, tx *sqlx.Tx) error {
				_, err := tx.ExecContext(ctx, `CREATE TABLE widgets (id SERIAL PRIMARY KEY)`)
				return err
			},
			Down: func(ctx context.Context, tx *sqlx.Tx) error {
				_, err := tx.ExecContext(ctx, `DROP TABLE widgets`)
				return err
			},
		},
		{
			Version: 2,
			Name:    "create_gadgets",
			Up: func(ctx context.Context, tx *sqlx.Tx) error {
				_, err := tx.ExecContext(ctx, `CREATE TABLE gadgets (id SERIAL PRIMARY KEY)`)
				return err
			},
			Down: func(ctx context.Context, tx *sqlx.Tx) error {
				_, err := tx.ExecContext(ctx, `DROP TABLE gadgets`)
				return err
			},
		},
	}
}

func newMockEngine(t *testing.T, defs []Migration) (*Engine, sqlmock.Sqlmock, func()) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "pgx")

	engine, err := New(db, defs)
	require.NoError(t, err)

	return engine, mock, func() { mockDB.Close() }
}

func expectCurrentVersion(mock sqlmock.Sqlmock, version int64) {
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS migrations`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(version\), 0\) FROM migrations`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(version))
}

func TestNew_RejectsUnorderedVersions(t *testing.T) {
	defs := []Migration{
		{Version: 2, Name: "second"},
		{Version: 1, Name: "first"},
	}

	engine, err := New(nil, defs)
	assert.Error(t, err)
	assert.Nil(t, engine)

	engine, err = New(nil, []Migration{
		{Version: 1, Name: "one"},
		{Version: 1, Name: "dup"},
	})
	assert.Error(t, err)
	assert.Nil(t, engine)
}

func TestEngine_MigrateAppliesEachStepInOneTransaction(t *testing.T) {
	engine, mock, closeDB := newMockEngine(t, testDefs())
	defer closeDB()

	expectCurrentVersion(mock, 0)

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE widgets`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO migrations \(version, name\) VALUES \(\$1, \$2\)`).
		WithArgs(int64(1), "create_widgets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE gadgets`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO migrations \(version, name\) VALUES \(\$1, \$2\)`).
		WithArgs(int64(2), "create_gadgets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	applied, err := engine.Migrate(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngine_MigrateSkipsAppliedVersions(t *testing.T) {
	engine, mock, closeDB := newMockEngine(t, testDefs())
	defer closeDB()

	expectCurrentVersion(mock, 1)

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE gadgets`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO migrations`).
		WithArgs(int64(2), "create_gadgets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	applied, err := engine.Migrate(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngine_MigrateIsIdempotentWhenNothingPending(t *testing.T) {
	engine, mock, closeDB := newMockEngine(t, testDefs())
	defer closeDB()

	expectCurrentVersion(mock, 2)

	applied, err := engine.Migrate(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngine_MigrateRollsBackFailedStep(t *testing.T) {
	defs := testDefs()
	defs[1].Up = func(ctx context.Context, tx *sqlx.Tx) error {
		return errors.New("syntax error")
	}

	engine, mock, closeDB := newMockEngine(t, defs)
	defer closeDB()

	expectCurrentVersion(mock, 0)

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE widgets`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO migrations`).
		WithArgs(int64(1), "create_widgets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// The failing step never reaches the ledger and its transaction is
	// rolled back; the step committed before it stays applied.
	mock.ExpectBegin()
	mock.ExpectRollback()

	applied, err := engine.Migrate(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migration 2 (create_gadgets) up")
	assert.Equal(t, 1, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngine_RollbackRevertsDownToTarget(t *testing.T) {
	engine, mock, closeDB := newMockEngine(t, testDefs())
	defer closeDB()

	expectCurrentVersion(mock, 2)

	mock.ExpectBegin()
	mock.ExpectExec(`DROP TABLE gadgets`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM migrations WHERE version = \$1`).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reverted, err := engine.Rollback(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, reverted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngine_RollbackAtOrAboveCurrentIsNoop(t *testing.T) {
	engine, mock, closeDB := newMockEngine(t, testDefs())
	defer closeDB()

	expectCurrentVersion(mock, 1)

	reverted, err := engine.Rollback(context.Background(), 1)
	assert.NoError(t, err)
	assert.Zero(t, reverted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestEngine_Lifecycle runs the real migration set against a
// throwaway Postgres: apply everything, rerun, inspect the ledger,
// roll all the way back.
func TestEngine_Lifecycle(t *testing.T) {
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer container.Terminate(ctx)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")
	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	defer db.Close()

	engine, err := New(db, Definitions())
	require.NoError(t, err)

	countTables := func() int {
		var n int
		err := db.Get(&n, `
			SELECT COUNT(*)
			FROM information_schema.tables
			WHERE table_schema = 'public'
			  AND table_name IN ('users', 'vault_items', 'user_sessions')`)
		require.NoError(t, err)
		return n
	}

	applied, err := engine.Migrate(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, applied)
	assert.Equal(t, 3, countTables())

	version, err := engine.CurrentVersion(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), version)

	status, err := engine.Status(ctx)
	assert.NoError(t, err)
	if assert.Len(t, status, 2) {
		assert.Equal(t, int64(1), status[0].Version)
		assert.Equal(t, "create_initial_tables", status[0].Name)
		assert.Equal(t, int64(2), status[1].Version)
		assert.Equal(t, "create_indexes", status[1].Name)
	}

	// A second run has nothing to do.
	applied, err = engine.Migrate(ctx)
	assert.NoError(t, err)
	assert.Zero(t, applied)

	reverted, err := engine.Rollback(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, reverted)

	version, err = engine.CurrentVersion(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), version)
	assert.Equal(t, 3, countTables())

	reverted, err = engine.Rollback(ctx, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, reverted)
	assert.Zero(t, countTables())

	status, err = engine.Status(ctx)
	assert.NoError(t, err)
	assert.Empty(t, status)
}
