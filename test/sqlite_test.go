package test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/hyraxx/diwata"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestValueThroughSQLite(t *testing.T) {
	db := openDB(t)

	_, err := db.Exec(`CREATE TABLE items (
		id    INTEGER,
		name  TEXT,
		price REAL,
		data  BLOB,
		note  TEXT
	)`)
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO items (id, name, price, data, note) VALUES (?, ?, ?, ?, ?)`,
		diwata.Bigint(1),
		diwata.Text("flux capacitor"),
		diwata.Double(129.95),
		diwata.Blob([]byte{1, 2, 255}),
		diwata.Nil(),
	)
	require.NoError(t, err)

	var (
		id, price, data, note diwata.Value
		name                  string
	)
	err = db.QueryRow(`SELECT id, name, price, data, note FROM items`).
		Scan(&id, &name, &price, &data, &note)
	require.NoError(t, err)

	require.Equal(t, diwata.Bigint(1), id)
	require.Equal(t, "flux capacitor", name)
	require.Equal(t, diwata.Double(129.95), price)
	require.Equal(t, diwata.Blob([]byte{1, 2, 255}), data)
	require.True(t, note.IsNil())
}

func TestTimestampThroughSQLite(t *testing.T) {
	db := openDB(t)

	_, err := db.Exec(`CREATE TABLE events (at TIMESTAMP)`)
	require.NoError(t, err)

	at := time.Date(2021, time.March, 4, 5, 6, 7, 890000000, time.UTC)
	_, err = db.Exec(`INSERT INTO events (at) VALUES (?)`, diwata.Timestamp(at))
	require.NoError(t, err)

	var got diwata.Value
	require.NoError(t, db.QueryRow(`SELECT at FROM events`).Scan(&got))
	require.Equal(t, diwata.KindTimestamp, got.Kind())

	ts, err := diwata.As[time.Time](got)
	require.NoError(t, err)
	require.True(t, ts.Equal(at))
}

func TestStructThroughSQLite(t *testing.T) {
	db := openDB(t)

	_, err := db.Exec(`CREATE TABLE accounts (id INTEGER, email TEXT, balance REAL)`)
	require.NoError(t, err)

	type account struct {
		ID      int64   `dao:"id"`
		Email   string  `dao:"email"`
		Balance float64 `dao:"balance"`
	}

	in := account{ID: 7, Email: "a@b.c", Balance: 12.5}
	rec, err := diwata.ToRecord(in)
	require.NoError(t, err)

	id, _ := rec.Value("id")
	email, _ := rec.Value("email")
	balance, _ := rec.Value("balance")
	_, err = db.Exec(`INSERT INTO accounts (id, email, balance) VALUES (?, ?, ?)`, id, email, balance)
	require.NoError(t, err)

	var (
		vid      int64
		vemail   string
		vbalance float64
	)
	require.NoError(t, db.QueryRow(`SELECT id, email, balance FROM accounts`).
		Scan(&vid, &vemail, &vbalance))

	out := diwata.NewRecord()
	require.NoError(t, out.Set("id", vid))
	require.NoError(t, out.Set("email", vemail))
	require.NoError(t, out.Set("balance", vbalance))

	got, err := diwata.Into[account](out)
	require.NoError(t, err)
	require.Equal(t, in, got)
}
