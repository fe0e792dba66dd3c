package rotation

// EndpointPlan is the fully resolved configuration of one slot.
type EndpointPlan struct {
	Role EndpointRole
	// Domain is the binding attached to this slot; Unbound when the slot does
	// not receive the domain or no domain is configured.
	Domain DomainBinding
	// FullDomainName is empty when Domain is Unbound.
	FullDomainName      string
	RequiresCertificate bool
	RequiresAliasRecord bool
}

// DomainNames returns the alternate domain names the slot's endpoint serves.
// Only the certificate holder carries one.
func (p EndpointPlan) DomainNames() []string {
	if !p.RequiresCertificate {
		return nil
	}
	return []string{p.FullDomainName}
}

// Plan resolves every slot of roles against binding. It fails before emitting
// anything when roles violate the role invariant. The output depends only on
// its arguments, so re-planning unchanged inputs yields the same pool.
func Plan(binding DomainBinding, roles RoleTable) ([]EndpointPlan, error) {
	if err := ValidateRoles(roles); err != nil {
		return nil, err
	}

	plans := make([]EndpointPlan, 0, len(roles))
	for _, role := range roles {
		plans = append(plans, planSlot(binding, role))
	}
	return plans, nil
}

func planSlot(binding DomainBinding, role EndpointRole) EndpointPlan {
	domain := Unbound()
	if role.ReceivesDomain {
		domain = binding
	}

	fqdn, _ := domain.FullDomainName()
	return EndpointPlan{
		Role:                role,
		Domain:              domain,
		FullDomainName:      fqdn,
		RequiresCertificate: NeedsCertificate(role, domain),
		RequiresAliasRecord: NeedsAliasRecord(role, domain.RecordName()),
	}
}
