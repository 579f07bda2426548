package client

import (
	"encoding/json"
	"net/http"
)

// envelopeResponse mirrors the primary API wrapper for test servers.
type envelopeResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data,omitempty"`
	NextPage *string     `json:"next_page,omitempty"`
	Error    interface{} `json:"error,omitempty"`
}

// WriteSuccess writes a SUCCESS envelope. A non-nil nextPage is included even
// when it points at an empty string.
func WriteSuccess(writer http.ResponseWriter, data interface{}, nextPage *string) {
	writer.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(writer).Encode(envelopeResponse{
		Status:   "SUCCESS",
		Data:     data,
		NextPage: nextPage,
	})
}

// WriteFailure writes a FAILURE envelope with a structured error under the
// given HTTP status.
func WriteFailure(writer http.ResponseWriter, httpStatus, code int, message string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(httpStatus)
	_ = json.NewEncoder(writer).Encode(envelopeResponse{
		Status: "FAILURE",
		Error:  map[string]interface{}{"code": code, "message": message},
	})
}
