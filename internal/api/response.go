package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/transitkit/opendata-go/pkg/transport"
)

type APIResponse struct {
	ResponseType string `json:"responseType"`
}

type ErrorResponse struct {
	APIResponse
	Error string `json:"error"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		APIResponse: APIResponse{ResponseType: "error"},
		Error:       message,
	}
}

func headers() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

// Payload passes an upstream body through unchanged
func Payload(body []byte) (events.APIGatewayProxyResponse, error) {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    headers(),
		Body:       string(body),
	}, nil
}

func Error(message string, statusCode int) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(NewErrorResponse(message))

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    headers(),
		Body:       string(body),
	}, nil
}

// StatusFor maps client errors onto proxy status codes
func StatusFor(err error) int {
	switch {
	case errors.Is(err, transport.ErrInvalidParameters), errors.Is(err, transport.ErrInvalidURL):
		return http.StatusBadRequest
	case errors.Is(err, transport.ErrNetworkFailure):
		var timeout interface{ Timeout() bool }
		if errors.As(err, &timeout) && timeout.Timeout() {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Failure renders err with the status StatusFor picks
func Failure(err error) (events.APIGatewayProxyResponse, error) {
	return Error(err.Error(), StatusFor(err))
}
