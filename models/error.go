package models

// ErrorMessageResponse is the JSON body written for failed non-HTML requests
type ErrorMessageResponse struct {
	Response MessageError
}

// MessageError contains the inner details for the error message response
type MessageError struct {
	Message string
	Error   string
}
