package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an update targets an identifier with no stored
// record.
var ErrNotFound = errors.New("record not found")

// DecodeError reports an identifier string whose tag does not match the
// variant the caller can accept. It is fatal: the stored value cannot be
// interpreted by this build.
type DecodeError struct {
	Tag  string
	Want Kind // zero when any variant would have been accepted
}

func (e *DecodeError) Error() string {
	if e.Want != "" {
		return fmt.Sprintf("identifier type %q where %q is required", e.Tag, e.Want)
	}
	return fmt.Sprintf("unknown identifier type %q", e.Tag)
}

// SchemaError reports a store whose persisted schema version is ahead of what
// this build supports. There is no downgrade path; opening aborts.
type SchemaError struct {
	Have int
	Want int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("store schema version %d is newer than supported version %d", e.Have, e.Want)
}
