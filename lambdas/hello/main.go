package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

func main() {
	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()

	h := &handler{logger: logger}
	lambda.Start(h.HandleRequest)
}
