package backend

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdklambdagoalpha/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// DefaultEntry is the Go package served by the backend, relative to the app root.
const DefaultEntry = "lambdas/hello"

// BackendProps holds inputs for creating a Backend.
// Code is optional; when nil the function is bundled from Entry.
type BackendProps struct {
	Entry string
	Code  awslambda.Code
}

// Backend is the origin every endpoint of the pool forwards to.
type Backend struct {
	constructs.Construct

	Function awslambda.IFunction
	Api      awsapigateway.RestApi
}

// NewBackend provisions the hello world function behind a regional REST API.
func NewBackend(scope constructs.Construct, id string, props *BackendProps) *Backend {
	if props == nil {
		props = &BackendProps{}
	}
	node := constructs.NewConstruct(scope, jsii.String(id))
	b := &Backend{Construct: node}

	b.Function = newFunction(node, props)

	b.Api = awsapigateway.NewRestApi(node, jsii.String("HelloWorldApi"), &awsapigateway.RestApiProps{
		RestApiName:   jsii.String("Hello World API"),
		Description:   jsii.String("API for Hello World application"),
		EndpointTypes: &[]awsapigateway.EndpointType{awsapigateway.EndpointType_REGIONAL},
		DeployOptions: &awsapigateway.StageOptions{
			StageName:      jsii.String("prod"),
			MetricsEnabled: jsii.Bool(true),
			LoggingLevel:   awsapigateway.MethodLoggingLevel_INFO,
		},
		DefaultCorsPreflightOptions: &awsapigateway.CorsOptions{
			AllowOrigins: awsapigateway.Cors_ALL_ORIGINS(),
			AllowMethods: awsapigateway.Cors_ALL_METHODS(),
		},
	})
	b.Api.Root().AddMethod(jsii.String("ANY"), awsapigateway.NewLambdaIntegration(b.Function, nil), nil)

	awscdk.NewCfnOutput(node, jsii.String("ApiUrl"), &awscdk.CfnOutputProps{
		Value:       b.Api.Url(),
		Description: jsii.String("URL of the API Gateway"),
	})

	return b
}

func newFunction(scope constructs.Construct, props *BackendProps) awslambda.IFunction {
	const (
		id          = "HelloWorldFunction"
		description = "A simple hello world Lambda function"
		memoryMB    = 128
		timeoutSec  = 10
	)

	if props.Code != nil {
		return awslambda.NewFunction(scope, jsii.String(id), &awslambda.FunctionProps{
			Runtime:     awslambda.Runtime_PROVIDED_AL2023(),
			Handler:     jsii.String("bootstrap"),
			Code:        props.Code,
			MemorySize:  jsii.Number(memoryMB),
			Timeout:     awscdk.Duration_Seconds(jsii.Number(timeoutSec)),
			Description: jsii.String(description),
		})
	}

	entry := props.Entry
	if entry == "" {
		entry = DefaultEntry
	}
	return awscdklambdagoalpha.NewGoFunction(scope, jsii.String(id), &awscdklambdagoalpha.GoFunctionProps{
		Entry:       jsii.String(entry),
		Runtime:     awslambda.Runtime_PROVIDED_AL2023(),
		MemorySize:  jsii.Number(memoryMB),
		Timeout:     awscdk.Duration_Seconds(jsii.Number(timeoutSec)),
		Description: jsii.String(description),
	})
}
