package errorvalues

import "errors"

var (
	ErrHabitNotFound    = errors.New("habit doesn't exist")
	ErrUnknownEnumValue = errors.New("unknown enumeration value")
	ErrUnknownDialect   = errors.New("unsupported database dialect")
	ErrNotReady         = errors.New("service is not ready yet")
)
