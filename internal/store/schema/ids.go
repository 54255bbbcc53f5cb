package schema

import (
	"github.com/oklog/ulid/v2"
)

// NewID returns a new row identifier.
// ULIDs sort by creation time, which keeps "ORDER BY id" stable for rows
// created within the same timestamp.
func NewID() string {
	return ulid.Make().String()
}
