package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/mfaraji/manager-assistant/internal/logging"
)

var responseHeaders = map[string]string{
	"Content-Type": "application/json",
}

// errorBody is the error envelope shared by every entry point.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Trace   string `json:"trace,omitempty"`
}

// respond serializes body into an API Gateway response with the given
// status.
func respond(status int, body any) events.APIGatewayProxyResponse {
	encoded, err := json.Marshal(body)
	if err != nil {
		logging.Error("failed to encode response body", "error", err)
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    responseHeaders,
			Body:       `{"error": "failed to encode response body"}`,
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    responseHeaders,
		Body:       string(encoded),
	}
}

// badRequest reports a client input error. Message is optional detail.
func badRequest(errText, message string) events.APIGatewayProxyResponse {
	return respond(http.StatusBadRequest, errorBody{
		Error:   errText,
		Message: message,
	})
}

// serverError reports an upstream or configuration failure.
func serverError(err error) events.APIGatewayProxyResponse {
	return respond(http.StatusInternalServerError, errorBody{
		Error: err.Error(),
	})
}

// serverErrorWithTrace reports a failure along with diagnostic detail.
func serverErrorWithTrace(err error, trace string) events.APIGatewayProxyResponse {
	return respond(http.StatusInternalServerError, errorBody{
		Error: err.Error(),
		Trace: trace,
	})
}

// errTrace formats the diagnostic trace attached to caught errors: the
// concrete error type plus its message.
func errTrace(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%T: %v", err, err)
}
