package config

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// DeployEnvironmentVariables selects the account and region the stack is
// deployed to. The CDK_DEPLOY_* pair wins when both are set.
type DeployEnvironmentVariables struct {
	DeployAccount  string `env:"CDK_DEPLOY_ACCOUNT"`
	DeployRegion   string `env:"CDK_DEPLOY_REGION"`
	DefaultAccount string `env:"CDK_DEFAULT_ACCOUNT"`
	DefaultRegion  string `env:"CDK_DEFAULT_REGION"`
}

// RotationEnvironmentVariables are process-level switches of the app.
type RotationEnvironmentVariables struct {
	// Destroy is an alternative to the `destroy` context key, for pipelines
	// that cannot pass context to `cdk destroy`.
	Destroy bool `env:"IP_ROTATION_DESTROY"`
}

// GetEnvironmentVariables parses T from the process environment.
func GetEnvironmentVariables[T any]() (T, error) {
	vars, err := env.ParseAs[T]()
	if err != nil {
		return vars, errors.Wrap(err, "parse environment variables")
	}
	return vars, nil
}

// Environment determines the AWS environment (account+region) in which the
// stack is to be deployed.
func Environment() (*awscdk.Environment, error) {
	vars, err := GetEnvironmentVariables[DeployEnvironmentVariables]()
	if err != nil {
		return nil, err
	}

	account, region := vars.DeployAccount, vars.DeployRegion
	if len(account) == 0 || len(region) == 0 {
		account, region = vars.DefaultAccount, vars.DefaultRegion
	}

	return &awscdk.Environment{
		Account: jsii.String(account),
		Region:  jsii.String(region),
	}, nil
}
