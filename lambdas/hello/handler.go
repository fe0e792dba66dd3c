package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

type helloResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
	Method  string `json:"method"`
}

type handler struct {
	logger *zap.Logger
}

func (h *handler) HandleRequest(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.Info("request",
		zap.String("method", req.HTTPMethod),
		zap.String("path", req.Path),
		zap.String("requestId", req.RequestContext.RequestID),
	)

	body, err := json.Marshal(helloResponse{
		Message: "Hello World!",
		Path:    req.Path,
		Method:  req.HTTPMethod,
	})
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}, nil
}
