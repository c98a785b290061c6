// Package uuid generates the time-ordered identifiers used for users,
// activity entries and recurrence groups.
package uuid

import googleuuid "github.com/google/uuid"

// New returns a UUIDv7 string. Ids created later sort after earlier ones.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.NewString()
	}
	return id.String()
}

// IsValid reports whether s is a UUID in any version.
func IsValid(s string) bool {
	return googleuuid.Validate(s) == nil
}
