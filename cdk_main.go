package main

import (
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/trufnetwork/ip-rotation/config"
	"github.com/trufnetwork/ip-rotation/stacks"
)

func main() {
	defer zap.L().Sync()

	app := awscdk.NewApp(nil)

	inputs, err := config.LoadInputs(app)
	if errors.Is(err, config.ErrMissingRequiredInput) {
		zap.L().Error("Missing required context parameters", zap.Error(err))
		os.Stderr.WriteString(config.Usage())
		os.Exit(1)
	}
	if err != nil {
		zap.L().Fatal("Failed to load inputs", zap.Error(err))
	}

	env, err := config.Environment()
	if err != nil {
		zap.L().Fatal("Failed to resolve deploy environment", zap.Error(err))
	}

	_, err = stacks.NewRotationStack(app, config.StackName(app), &stacks.RotationStackProps{
		StackProps: awscdk.StackProps{
			Env: env,
		},
		Inputs: inputs,
		Logger: zap.L(),
	})
	if err != nil {
		zap.L().Fatal("Failed to build stack", zap.Error(err))
	}

	app.Synth(nil)
}

func init() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
}
