package storage

import (
	"database/sql"

	_ "github.com/lib/pq"

	"podo/pkg/utils"
)

// Postgres stores key-value documents in a postgres table, for setups
// where the data should live in an existing database instead of a
// local file.
type Postgres struct {
	db *sql.DB
}

// OpenPostgres connects using a lib/pq connection string.
func OpenPostgres(dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	utils.Log("Opened postgres store")

	return &Postgres{db: db}, nil
}

func (p *Postgres) Read(key string) ([]byte, bool, error) {
	var value []byte
	err := p.db.QueryRow("SELECT value FROM kv WHERE key = $1", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (p *Postgres) Write(key string, value []byte) error {
	_, err := p.db.Exec(
		`INSERT INTO kv (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (p *Postgres) Delete(key string) error {
	_, err := p.db.Exec("DELETE FROM kv WHERE key = $1", key)
	return err
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
