package rotation

import "github.com/pkg/errors"

var (
	// ErrRoleInvariantViolation is returned when a role table does not hold
	// exactly one settings owner and exactly one alias target.
	ErrRoleInvariantViolation = errors.New("role invariant violation")

	// ErrRoleNotFound is returned when reporting cannot match a role to exactly
	// one provisioned endpoint. Reaching it means a logic defect upstream.
	ErrRoleNotFound = errors.New("role not found")
)
