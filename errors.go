package actionkit

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every *ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("actionkit: invalid configuration")

// ConfigurationError reports a malformed actions map or malformed arguments.
// Type names the offending top-level action type; it is empty when the
// arguments themselves are at fault.
type ConfigurationError struct {
	Type   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("actionkit: %s", e.Reason)
	}
	return fmt.Sprintf("actionkit: %s for %q", e.Reason, e.Type)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func NewConfigurationError(actionType, reason string) *ConfigurationError {
	return &ConfigurationError{
		Type:   actionType,
		Reason: reason,
	}
}

func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

const (
	reasonInvalidArguments = "expected optional actions map followed by string action types"
	reasonInvalidValue     = "expected function, or array with payload and meta functions"
)
