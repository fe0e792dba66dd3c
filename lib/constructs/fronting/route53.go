package fronting

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53targets"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/trufnetwork/ip-rotation/internal/rotation"
)

// LookupZone imports an existing hosted zone by ID and name. No AWS call is
// made at synth time.
func LookupZone(scope constructs.Construct, id string, zoneID, zoneName string) awsroute53.IHostedZone {
	return awsroute53.HostedZone_FromHostedZoneAttributes(scope, jsii.String(id), &awsroute53.HostedZoneAttributes{
		HostedZoneId: jsii.String(zoneID),
		ZoneName:     jsii.String(zoneName),
	})
}

// NewAliasRecord creates an A alias record for recordName in zone pointing at
// the distribution's addresses. "@" maps to the zone apex.
func NewAliasRecord(
	scope constructs.Construct,
	id string,
	zone awsroute53.IHostedZone,
	recordName string,
	distribution awscloudfront.IDistribution,
) awsroute53.ARecord {
	var name *string
	if recordName != rotation.ApexRecord {
		name = jsii.String(recordName)
	}

	return awsroute53.NewARecord(scope, jsii.String(id), &awsroute53.ARecordProps{
		Zone:       zone,
		RecordName: name,
		Target:     awsroute53.RecordTarget_FromAlias(awsroute53targets.NewCloudFrontTarget(distribution)),
	})
}
