package rotation

// NeedsCertificate reports whether a certificate must be requested for the
// slot. Only the settings owner binds a hostname, and only when a domain is
// bound: issuing without one would fail validation on the provider side.
func NeedsCertificate(role EndpointRole, domain DomainBinding) bool {
	return role.SettingsOwner && domain.IsBound()
}

// NeedsAliasRecord reports whether the DNS alias record must point at the
// slot. The record always has the same name and type; only its target moves
// when the alias role is rotated.
func NeedsAliasRecord(role EndpointRole, recordName string) bool {
	return role.AliasTarget && recordName != ""
}
