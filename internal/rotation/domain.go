// Package rotation computes the role assignment and derived configuration of a
// fixed pool of CloudFront endpoints bound to one public domain.
//
// Everything in this package is pure: plans are data, and the constructs under
// lib/constructs read them to declare resources.
package rotation

// ApexRecord is the record name denoting the zone apex.
const ApexRecord = "@"

// DomainSpec is the zone and record pair a pool is bound to.
type DomainSpec struct {
	ZoneName   string
	RecordName string
}

// FullDomainName returns the apex when RecordName is empty or "@", and
// RecordName.ZoneName otherwise.
func (s DomainSpec) FullDomainName() string {
	fqdn, _ := ComposeDomainName(s.ZoneName, s.RecordName)
	return fqdn
}

// ComposeDomainName joins a zone and a record into a fully-qualified domain
// name. It reports false when zoneName is empty, meaning no domain is bound.
func ComposeDomainName(zoneName, recordName string) (string, bool) {
	if zoneName == "" {
		return "", false
	}
	if recordName == "" || recordName == ApexRecord {
		return zoneName, true
	}
	return recordName + "." + zoneName, true
}

// DomainBinding is either Bound to a DomainSpec or Unbound.
// The zero value is Unbound.
type DomainBinding struct {
	spec  DomainSpec
	bound bool
}

// Bound binds spec. A spec without a zone yields an Unbound binding, since no
// domain-dependent step could run against it.
func Bound(spec DomainSpec) DomainBinding {
	if spec.ZoneName == "" {
		return Unbound()
	}
	return DomainBinding{spec: spec, bound: true}
}

// Unbound returns the binding that skips every domain step.
func Unbound() DomainBinding {
	return DomainBinding{}
}

// Spec returns the bound spec, or false when the binding is Unbound.
func (b DomainBinding) Spec() (DomainSpec, bool) {
	return b.spec, b.bound
}

// IsBound reports whether b carries a DomainSpec.
func (b DomainBinding) IsBound() bool {
	return b.bound
}

// FullDomainName returns the composed name, or false when Unbound.
func (b DomainBinding) FullDomainName() (string, bool) {
	if !b.bound {
		return "", false
	}
	return ComposeDomainName(b.spec.ZoneName, b.spec.RecordName)
}

// RecordName returns the bound record name, empty when Unbound.
func (b DomainBinding) RecordName() string {
	if !b.bound {
		return ""
	}
	return b.spec.RecordName
}
