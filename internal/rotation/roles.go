package rotation

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// PoolSize is the number of endpoint slots kept provisioned.
const PoolSize = 3

// Default slot assignment of the three-slot topology.
const (
	DefaultSettingsSlot = 0
	DefaultAliasSlot    = 1
)

// EndpointRole holds the role flags of one slot.
type EndpointRole struct {
	Index int
	// SettingsOwner holds the certificate and the alternate domain name.
	SettingsOwner bool
	// AliasTarget is the slot whose addresses are published by the alias record.
	AliasTarget bool
	// ReceivesDomain attaches the domain spec to the slot. A spare slot may
	// receive it without any effect.
	ReceivesDomain bool
}

// IsSpare reports whether the slot holds neither role.
func (r EndpointRole) IsSpare() bool {
	return !r.SettingsOwner && !r.AliasTarget
}

// RoleTable is the ordered role assignment of a pool, one entry per slot.
type RoleTable []EndpointRole

// RolesFor returns the default table for a pool of poolSize slots: slot 0 owns
// the settings, slot 1 is the alias target and the rest are spares. Every slot
// receives the domain. Pools smaller than two slots cannot satisfy the role
// invariant, so the returned table fails ValidateRoles.
func RolesFor(poolSize int) RoleTable {
	roles := make(RoleTable, 0, poolSize)
	for i := 0; i < poolSize; i++ {
		roles = append(roles, EndpointRole{
			Index:          i,
			SettingsOwner:  i == DefaultSettingsSlot,
			AliasTarget:    i == DefaultAliasSlot,
			ReceivesDomain: true,
		})
	}
	return roles
}

// ValidateRoles checks that slots are indexed 0..N-1 in order and that exactly
// one slot owns the settings and exactly one is the alias target.
func ValidateRoles(roles RoleTable) error {
	for i, r := range roles {
		if r.Index != i {
			return errors.Wrapf(ErrRoleInvariantViolation, "slot at position %d has index %d", i, r.Index)
		}
	}

	owners := lo.CountBy(roles, func(r EndpointRole) bool { return r.SettingsOwner })
	if owners != 1 {
		return errors.Wrapf(ErrRoleInvariantViolation, "want exactly one settings owner, got %d", owners)
	}

	targets := lo.CountBy(roles, func(r EndpointRole) bool { return r.AliasTarget })
	if targets != 1 {
		return errors.Wrapf(ErrRoleInvariantViolation, "want exactly one alias target, got %d", targets)
	}

	return nil
}

// RotateAlias returns a copy of roles with the alias target moved to slot.
// The settings owner is left untouched. Moving the alias onto the settings
// owner is rejected to keep the two roles on different slots.
func RotateAlias(roles RoleTable, slot int) (RoleTable, error) {
	if slot < 0 || slot >= len(roles) {
		return nil, errors.Wrapf(ErrRoleInvariantViolation, "alias slot %d outside pool of %d", slot, len(roles))
	}
	if roles[slot].SettingsOwner {
		return nil, errors.Wrapf(ErrRoleInvariantViolation, "alias slot %d already owns the settings", slot)
	}

	rotated := make(RoleTable, len(roles))
	for i, r := range roles {
		r.AliasTarget = i == slot
		rotated[i] = r
	}
	return rotated, nil
}

// SettingsSlot returns the index of the settings owner, or -1.
func (t RoleTable) SettingsSlot() int {
	_, idx, ok := lo.FindIndexOf(t, func(r EndpointRole) bool { return r.SettingsOwner })
	if !ok {
		return -1
	}
	return idx
}

// AliasSlot returns the index of the alias target, or -1.
func (t RoleTable) AliasSlot() int {
	_, idx, ok := lo.FindIndexOf(t, func(r EndpointRole) bool { return r.AliasTarget })
	if !ok {
		return -1
	}
	return idx
}
