package fronting

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// CertManager centralizes certificate issuance for the edge pool.
type CertManager struct {
	// SubjectAlternativeNames are added to every certificate it issues.
	SubjectAlternativeNames []string
}

// NewCertManager creates a CertManager without extra SANs.
func NewCertManager() *CertManager {
	return &CertManager{}
}

// GetEdge issues a DNS-validated ACM certificate for fqdn in zone. CloudFront
// only accepts certificates from us-east-1, so the owning stack must be
// deployed there.
func (c *CertManager) GetEdge(
	scope constructs.Construct,
	id string,
	zone awsroute53.IHostedZone,
	fqdn string,
) awscertificatemanager.ICertificate {
	if zone == nil || fqdn == "" {
		panic("edge certificate requires a hosted zone and a domain name")
	}

	var sans *[]*string
	if len(c.SubjectAlternativeNames) > 0 {
		sans = jsii.Strings(c.SubjectAlternativeNames...)
	}

	return awscertificatemanager.NewCertificate(scope, jsii.String(id), &awscertificatemanager.CertificateProps{
		DomainName:              jsii.String(fqdn),
		SubjectAlternativeNames: sans,
		Validation:              awscertificatemanager.CertificateValidation_FromDns(zone),
	})
}
