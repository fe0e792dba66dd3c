package rotation

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPlan_Subdomain(t *testing.T) {
	binding := Bound(DomainSpec{ZoneName: "example.com", RecordName: "app"})

	plans, err := Plan(binding, RolesFor(PoolSize))
	require.NoError(t, err)
	require.Len(t, plans, PoolSize)

	settings := plans[0]
	require.True(t, settings.RequiresCertificate)
	require.False(t, settings.RequiresAliasRecord)
	require.Equal(t, "app.example.com", settings.FullDomainName)
	require.Equal(t, []string{"app.example.com"}, settings.DomainNames())

	alias := plans[1]
	require.False(t, alias.RequiresCertificate)
	require.True(t, alias.RequiresAliasRecord)
	require.Nil(t, alias.DomainNames())

	spare := plans[2]
	require.False(t, spare.RequiresCertificate)
	require.False(t, spare.RequiresAliasRecord)
	// the spare carries the domain spec without effect
	require.True(t, spare.Domain.IsBound())
}

func TestPlan_AliasSlotWithoutDomain(t *testing.T) {
	binding := Bound(DomainSpec{ZoneName: "example.com", RecordName: "app"})
	roles := RolesFor(PoolSize)
	roles[1].ReceivesDomain = false

	plans, err := Plan(binding, roles)
	require.NoError(t, err)
	require.False(t, plans[1].RequiresAliasRecord)
	require.False(t, plans[1].Domain.IsBound())
	require.Empty(t, plans[1].FullDomainName)
	require.True(t, plans[0].RequiresCertificate)
}

func TestPlan_Apex(t *testing.T) {
	plans, err := Plan(Bound(DomainSpec{ZoneName: "example.com", RecordName: ApexRecord}), RolesFor(PoolSize))
	require.NoError(t, err)
	require.Equal(t, "example.com", plans[0].FullDomainName)
	require.True(t, plans[1].RequiresAliasRecord)
}

func TestPlan_Unbound(t *testing.T) {
	plans, err := Plan(Unbound(), RolesFor(PoolSize))
	require.NoError(t, err)
	for _, p := range plans {
		require.False(t, p.RequiresCertificate)
		require.False(t, p.RequiresAliasRecord)
		require.Empty(t, p.FullDomainName)
	}
}

func TestPlan_InvalidRolesEmitNothing(t *testing.T) {
	roles := RolesFor(PoolSize)
	roles[2].AliasTarget = true

	plans, err := Plan(Bound(DomainSpec{ZoneName: "example.com", RecordName: "app"}), roles)
	require.ErrorIs(t, err, ErrRoleInvariantViolation)
	require.Nil(t, plans)
}

func TestPlan_AfterRotation(t *testing.T) {
	roles, err := RotateAlias(RolesFor(PoolSize), 2)
	require.NoError(t, err)

	plans, err := Plan(Bound(DomainSpec{ZoneName: "example.com", RecordName: "app"}), roles)
	require.NoError(t, err)
	require.True(t, plans[0].RequiresCertificate)
	require.False(t, plans[1].RequiresAliasRecord)
	require.True(t, plans[2].RequiresAliasRecord)
}

func genBinding() *rapid.Generator[DomainBinding] {
	return rapid.Custom(func(t *rapid.T) DomainBinding {
		return Bound(DomainSpec{
			ZoneName:   rapid.SampledFrom([]string{"", "example.com", "a.b.example.org"}).Draw(t, "zone"),
			RecordName: rapid.SampledFrom([]string{"", ApexRecord, "app", "api"}).Draw(t, "record"),
		})
	})
}

func genRoles() *rapid.Generator[RoleTable] {
	return rapid.Custom(func(t *rapid.T) RoleTable {
		n := rapid.IntRange(2, 6).Draw(t, "poolSize")
		settings := rapid.IntRange(0, n-1).Draw(t, "settings")
		alias := rapid.IntRange(0, n-1).Filter(func(i int) bool { return i != settings }).Draw(t, "alias")
		roles := make(RoleTable, n)
		for i := range roles {
			roles[i] = EndpointRole{
				Index:          i,
				SettingsOwner:  i == settings,
				AliasTarget:    i == alias,
				ReceivesDomain: rapid.Bool().Draw(t, "receives"),
			}
		}
		return roles
	})
}

func TestPlan_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		binding := genBinding().Draw(t, "binding")
		roles := genRoles().Draw(t, "roles")

		first, err := Plan(binding, roles)
		if err != nil {
			t.Fatalf("plan: %v", err)
		}
		second, err := Plan(binding, roles)
		if err != nil {
			t.Fatalf("replan: %v", err)
		}
		require.Equal(t, first, second)
	})
}

func TestPlan_SpareNeverActs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		binding := genBinding().Draw(t, "binding")
		roles := genRoles().Draw(t, "roles")

		plans, err := Plan(binding, roles)
		if err != nil {
			t.Fatalf("plan: %v", err)
		}
		for _, p := range plans {
			if p.Role.IsSpare() && (p.RequiresCertificate || p.RequiresAliasRecord) {
				t.Fatalf("spare slot %d acts: %+v", p.Role.Index, p)
			}
		}
	})
}
