package response

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

type ackResponse struct {
	OK bool `json:"ok"`
}

type problemResponse struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

// RenderAck acknowledges a webhook regardless of the business outcome, so
// the upstream gateway never retries on business-logic rejections.
func RenderAck(rw http.ResponseWriter) {
	Render(rw, ackResponse{OK: true}, http.StatusOK)
}

func RenderNotFound(rw http.ResponseWriter) {
	Render(rw, problemResponse{Status: http.StatusNotFound, Title: "Not Found"}, http.StatusNotFound)
}

func RenderInternalError(rw http.ResponseWriter, detail string) {
	Render(
		rw,
		problemResponse{Status: http.StatusInternalServerError, Title: "Internal Server Error", Detail: detail},
		http.StatusInternalServerError,
	)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
