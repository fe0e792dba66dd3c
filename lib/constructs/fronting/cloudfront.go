package fronting

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// EdgeDistributionProps configures one CloudFront distribution in front of a
// REST API.
type EdgeDistributionProps struct {
	Api  awsapigateway.RestApi
	Name string
	// Certificate and DomainNames are set together, on the slot that owns the
	// hostname. Both nil otherwise.
	Certificate awscertificatemanager.ICertificate
	DomainNames []string
}

// NewEdgeDistribution creates an uncached, HTTPS-only distribution proxying
// GET/HEAD/OPTIONS to the REST API.
func NewEdgeDistribution(scope constructs.Construct, id string, props *EdgeDistributionProps) awscloudfront.Distribution {
	if props.Api == nil {
		panic("EdgeDistribution requires an Api origin")
	}

	var domainNames *[]*string
	if len(props.DomainNames) > 0 {
		domainNames = jsii.Strings(props.DomainNames...)
	}

	return awscloudfront.NewDistribution(scope, jsii.String(id), &awscloudfront.DistributionProps{
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			Origin:         awscloudfrontorigins.NewRestApiOrigin(props.Api, nil),
			AllowedMethods: awscloudfront.AllowedMethods_ALLOW_GET_HEAD_OPTIONS(),
			CachedMethods:  awscloudfront.CachedMethods_CACHE_GET_HEAD_OPTIONS(),
			Compress:       jsii.Bool(true),
			CachePolicy:    awscloudfront.CachePolicy_CACHING_DISABLED(),
			// API Gateway rejects requests carrying the viewer's Host header
			OriginRequestPolicy:  awscloudfront.OriginRequestPolicy_ALL_VIEWER_EXCEPT_HOST_HEADER(),
			ViewerProtocolPolicy: awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
		},
		HttpVersion: awscloudfront.HttpVersion_HTTP2_AND_3,
		Comment:     jsii.String("CloudFront distribution for " + props.Name),
		Enabled:     jsii.Bool(true),
		Certificate: props.Certificate,
		DomainNames: domainNames,
	})
}
