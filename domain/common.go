package domain

import "errors"

var (
	MessageServerRunning        = "Server is running"
	MessageDataReceived         = "Data received successfully"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageInternalServerError  = "Internal server error"
	MessageFailedProcessRequest = "failed to process request"

	ErrNothingToUpdate = errors.New("no updatable fields in request")
)

type DataEchoResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}
