// Package uuid generates time-ordered identifiers for database records.
package uuid

import googleuuid "github.com/google/uuid"

// New returns a UUIDv7 string. The millisecond timestamp prefix keeps
// primary keys roughly insertion-ordered in the index.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// NewV7 only fails if the random source does; fall back to v4.
		return googleuuid.New().String()
	}
	return id.String()
}
