package model

import (
	"database/sql"
	"time"
)

// NullStringPtr converts a database/sql nullable string into the *string
// shape gocql expects for a nullable CQL column.
func NullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

// NullTimePtr converts a database/sql nullable timestamp into *time.Time.
func NullTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

// NullInt32Ptr converts a database/sql nullable int32 into *int32.
func NullInt32Ptr(v sql.NullInt32) *int32 {
	if !v.Valid {
		return nil
	}
	n := v.Int32
	return &n
}
