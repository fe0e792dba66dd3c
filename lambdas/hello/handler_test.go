package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleRequest(t *testing.T) {
	h := &handler{logger: zap.NewNop()}

	resp, err := h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "GET",
		Path:       "/",
	})
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	require.Equal(t, "application/json", resp.Headers["Content-Type"])

	var body helloResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	require.Equal(t, helloResponse{Message: "Hello World!", Path: "/", Method: "GET"}, body)
}
