package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/trufnetwork/ip-rotation/config"
	"github.com/trufnetwork/ip-rotation/internal/rotation"
	"github.com/trufnetwork/ip-rotation/lib/constructs/backend"
	edge_pool "github.com/trufnetwork/ip-rotation/lib/constructs/edge_pool"
)

// RotationStackProps holds inputs for creating a RotationStack. Backend is
// passed through to the backend construct; a zero value bundles lambdas/hello.
type RotationStackProps struct {
	awscdk.StackProps
	Inputs  config.Inputs
	Backend backend.BackendProps
	Logger  *zap.Logger // optional
}

// RotationStack is the synthesized stack plus what was planned for it.
type RotationStack struct {
	awscdk.Stack

	Plans    []rotation.EndpointPlan // nil in destroy mode
	Topology rotation.Topology
}

// NewRotationStack declares the backend and the edge pool for props.Inputs
// and outputs which distributions hold the alias and settings roles. Planning
// errors are returned before the stack is created. In destroy mode only the
// empty named stack is created.
func NewRotationStack(scope constructs.Construct, id string, props *RotationStackProps) (*RotationStack, error) {
	logger := props.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sprops := props.StackProps
	inputs := props.Inputs
	if inputs.Destroy {
		logger.Info("destroy mode, skipping planning", zap.String("stack", id))
		return &RotationStack{Stack: awscdk.NewStack(scope, jsii.String(id), &sprops)}, nil
	}

	roles, err := rotation.RotateAlias(rotation.RolesFor(rotation.PoolSize), inputs.AliasSlot)
	if err != nil {
		return nil, errors.Wrap(err, "assign roles")
	}

	binding := inputs.Binding()
	plans, err := rotation.Plan(binding, roles)
	if err != nil {
		return nil, errors.Wrap(err, "plan endpoints")
	}

	for _, p := range plans {
		logger.Info("planned endpoint",
			zap.Int("slot", p.Role.Index),
			zap.Bool("settingsOwner", p.Role.SettingsOwner),
			zap.Bool("aliasTarget", p.Role.AliasTarget),
			zap.Bool("requiresCertificate", p.RequiresCertificate),
			zap.Bool("requiresAliasRecord", p.RequiresAliasRecord),
			zap.String("domain", p.FullDomainName),
		)
	}

	stack := awscdk.NewStack(scope, jsii.String(id), &sprops)
	rs := &RotationStack{Stack: stack, Plans: plans}

	be := backend.NewBackend(stack, "Backend", &props.Backend)

	pool := edge_pool.NewEdgePool(stack, "EdgePool", &edge_pool.EdgePoolProps{
		Api:          be.Api,
		HostedZoneID: inputs.HostedZoneID,
		Plans:        plans,
	})

	domain, _ := binding.FullDomainName()
	topology, err := rotation.Report(plans, pool.Handles(), domain)
	if err != nil {
		return nil, errors.Wrap(err, "report topology")
	}
	rs.Topology = topology

	awscdk.NewCfnOutput(stack, jsii.String("Domain"), &awscdk.CfnOutputProps{
		Value:       jsii.String(topology.Domain),
		Description: jsii.String("Domain name"),
	})
	awscdk.NewCfnOutput(stack, jsii.String("DistroForAlias"), &awscdk.CfnOutputProps{
		Value:       jsii.String(topology.AliasSlotID),
		Description: jsii.String("Distribution used for Alias (IP addresses)"),
	})
	awscdk.NewCfnOutput(stack, jsii.String("DistroForSettings"), &awscdk.CfnOutputProps{
		Value:       jsii.String(topology.SettingsSlotID),
		Description: jsii.String("Distribution used for Settings (CNAME + Certificate)"),
	})

	return rs, nil
}
