// Package storage provides the key-value store the app persists its
// collections into. Each logical key holds one JSON document.
package storage

import "fmt"

// Store is a synchronous key-value store scoped to one user/device.
type Store interface {
	// Read returns the value for key, or ok=false if the key is absent.
	Read(key string) (value []byte, ok bool, err error)
	// Write replaces the value for key.
	Write(key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	Close() error
}

// Open creates a store for the configured driver.
func Open(driver, path, dsn string) (Store, error) {
	switch driver {
	case "", "sqlite":
		return OpenSQLite(path)
	case "postgres":
		return OpenPostgres(dsn)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", driver)
	}
}
