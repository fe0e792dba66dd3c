package edge_pool

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/trufnetwork/ip-rotation/internal/rotation"
	"github.com/trufnetwork/ip-rotation/lib/constructs/fronting"
)

// Construct IDs that must not change across rotations: changing them would
// replace the certificate or the record instead of updating it.
const (
	zoneConstructID        = "HostedZone"
	certificateConstructID = "Certificate"
	aliasRecordConstructID = "AliasRecord"
)

// EdgePoolProps holds inputs for creating an EdgePool.
// HostedZoneID is required once any plan needs a certificate or an alias record.
type EdgePoolProps struct {
	Api          awsapigateway.RestApi
	HostedZoneID string
	Plans        []rotation.EndpointPlan
	// CertManager issues the settings certificate. Its SANs are also served
	// as alternate domain names by the settings distribution.
	CertManager *fronting.CertManager // optional
}

// EdgePool declares one CloudFront distribution per planned slot, the
// certificate of the settings owner and the alias record of the alias target.
type EdgePool struct {
	constructs.Construct

	Zone          awsroute53.IHostedZone             // nil when no domain step runs
	Certificate   awscertificatemanager.ICertificate // nil when no slot requires one
	AliasRecord   awsroute53.ARecord                 // nil when no slot requires one
	Distributions []awscloudfront.Distribution       // indexed by slot
}

// EndpointConstructID is the construct ID of the distribution in slot.
func EndpointConstructID(slot int) string {
	return fmt.Sprintf("Endpoint-%d", slot)
}

// DistributionName is the human-readable name of the distribution in slot.
func DistributionName(slot int) string {
	if slot == 0 {
		return "IP-Rotation-0-Root"
	}
	return fmt.Sprintf("IP-Rotation-%d", slot)
}

// NewEdgePool applies plans. Slots are created in plan order; a slot's
// certificate is declared before its distribution, and the alias record after
// every distribution exists.
func NewEdgePool(scope constructs.Construct, id string, props *EdgePoolProps) *EdgePool {
	node := constructs.NewConstruct(scope, jsii.String(id))
	pool := &EdgePool{Construct: node}

	certManager := props.CertManager
	if certManager == nil {
		certManager = fronting.NewCertManager()
	}

	pool.Distributions = make([]awscloudfront.Distribution, len(props.Plans))
	for i, plan := range props.Plans {
		if plan.Role.Index != i {
			panic(fmt.Sprintf("plan at position %d is for slot %d", i, plan.Role.Index))
		}

		distProps := &fronting.EdgeDistributionProps{
			Api:  props.Api,
			Name: DistributionName(i),
		}
		if plan.RequiresCertificate {
			cert := certManager.GetEdge(node, certificateConstructID, pool.zone(props, plan), plan.FullDomainName)
			pool.Certificate = cert
			distProps.Certificate = cert
			distProps.DomainNames = append(plan.DomainNames(), certManager.SubjectAlternativeNames...)
		}

		pool.Distributions[i] = fronting.NewEdgeDistribution(node, EndpointConstructID(i), distProps)
		pool.annotateInfo("Slot %d (%s): settings=%t alias=%t certificate=%t domain=%q",
			i, DistributionName(i), plan.Role.SettingsOwner, plan.Role.AliasTarget, plan.RequiresCertificate, plan.FullDomainName)
	}

	for i, plan := range props.Plans {
		if !plan.RequiresAliasRecord {
			continue
		}
		pool.AliasRecord = fronting.NewAliasRecord(node, aliasRecordConstructID, pool.zone(props, plan), plan.Domain.RecordName(), pool.Distributions[i])
		pool.annotateInfo("Alias record %q targets slot %d", plan.Domain.RecordName(), i)
	}

	return pool
}

// Handles returns the provisioned endpoints for reporting.
func (p *EdgePool) Handles() []rotation.Handle {
	handles := make([]rotation.Handle, 0, len(p.Distributions))
	for i, d := range p.Distributions {
		handles = append(handles, rotation.Handle{Slot: i, ID: *d.DistributionId()})
	}
	return handles
}

// zone imports the hosted zone on first use.
func (p *EdgePool) zone(props *EdgePoolProps, plan rotation.EndpointPlan) awsroute53.IHostedZone {
	if p.Zone != nil {
		return p.Zone
	}
	spec, ok := plan.Domain.Spec()
	if !ok {
		panic(fmt.Sprintf("slot %d needs a hosted zone but has no domain", plan.Role.Index))
	}
	if props.HostedZoneID == "" {
		panic("HostedZoneID is empty")
	}
	p.Zone = fronting.LookupZone(p.Construct, zoneConstructID, props.HostedZoneID, spec.ZoneName)
	return p.Zone
}

func (p *EdgePool) annotateInfo(format string, args ...interface{}) {
	awscdk.Annotations_Of(p.Construct).AddInfo(jsii.Sprintf(format, args...))
}
