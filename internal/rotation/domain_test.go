package rotation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func genLabel() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z][a-z0-9-]{0,14}`)
}

func genZone() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		labels := rapid.SliceOfN(genLabel(), 1, 3).Draw(t, "labels")
		return strings.Join(labels, ".")
	})
}

func TestComposeDomainName(t *testing.T) {
	for _, tc := range []struct {
		name   string
		zone   string
		record string
		want   string
		bound  bool
	}{
		{"subdomain", "example.com", "app", "app.example.com", true},
		{"apex marker", "example.com", "@", "example.com", true},
		{"empty record", "example.com", "", "example.com", true},
		{"no zone", "", "app", "", false},
		{"nothing", "", "", "", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ComposeDomainName(tc.zone, tc.record)
			require.Equal(t, tc.bound, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestComposeDomainName_ApexProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		zone := genZone().Draw(t, "zone")

		apex, ok := ComposeDomainName(zone, ApexRecord)
		if !ok || apex != zone {
			t.Fatalf("compose(%q, @) = %q, %v", zone, apex, ok)
		}
		empty, ok := ComposeDomainName(zone, "")
		if !ok || empty != zone {
			t.Fatalf("compose(%q, \"\") = %q, %v", zone, empty, ok)
		}
	})
}

func TestComposeDomainName_SubdomainProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		zone := genZone().Draw(t, "zone")
		record := genLabel().Draw(t, "record")

		got, ok := ComposeDomainName(zone, record)
		if !ok || got != record+"."+zone {
			t.Fatalf("compose(%q, %q) = %q, %v", zone, record, got, ok)
		}
	})
}

func TestDomainBinding(t *testing.T) {
	var zero DomainBinding
	require.False(t, zero.IsBound())

	u := Unbound()
	_, ok := u.Spec()
	require.False(t, ok)
	require.Equal(t, zero, u)
	_, ok = u.FullDomainName()
	require.False(t, ok)
	require.Empty(t, u.RecordName())

	b := Bound(DomainSpec{ZoneName: "example.com", RecordName: "app"})
	spec, ok := b.Spec()
	require.True(t, ok)
	require.Equal(t, "app", spec.RecordName)
	fqdn, ok := b.FullDomainName()
	require.True(t, ok)
	require.Equal(t, "app.example.com", fqdn)
	require.Equal(t, "app.example.com", spec.FullDomainName())

	// a zone-less spec cannot be bound
	require.Equal(t, Unbound(), Bound(DomainSpec{RecordName: "app"}))
}
