package rotation

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Handle is a provisioned endpoint as seen by the planner: the slot it was
// created for and the provider-assigned identifier.
type Handle struct {
	Slot int
	ID   string
}

// Topology is the operator-facing summary of a provisioned pool.
type Topology struct {
	Domain         string
	AliasSlotID    string
	SettingsSlotID string
}

// Report looks up the identifiers of the alias-target and settings-owner
// slots among handles. domain is the composed name of the pool, empty when no
// domain is bound.
func Report(plans []EndpointPlan, handles []Handle, domain string) (Topology, error) {
	aliasID, err := handleFor(plans, handles, "alias target", func(p EndpointPlan) bool {
		return p.Role.AliasTarget
	})
	if err != nil {
		return Topology{}, err
	}

	settingsID, err := handleFor(plans, handles, "settings owner", func(p EndpointPlan) bool {
		return p.Role.SettingsOwner
	})
	if err != nil {
		return Topology{}, err
	}

	return Topology{
		Domain:         domain,
		AliasSlotID:    aliasID,
		SettingsSlotID: settingsID,
	}, nil
}

func handleFor(plans []EndpointPlan, handles []Handle, role string, match func(EndpointPlan) bool) (string, error) {
	matched := lo.Filter(plans, func(p EndpointPlan, _ int) bool { return match(p) })
	if len(matched) != 1 {
		return "", errors.Wrapf(ErrRoleNotFound, "want one %s slot, got %d", role, len(matched))
	}

	slot := matched[0].Role.Index
	found := lo.Filter(handles, func(h Handle, _ int) bool { return h.Slot == slot })
	if len(found) != 1 {
		return "", errors.Wrapf(ErrRoleNotFound, "want one endpoint for %s slot %d, got %d", role, slot, len(found))
	}
	return found[0].ID, nil
}
