package server

import (
	"encoding/json"
	"net/http"

	"github.com/gclaussn/go-lcu/http/common"
)

func encodeJSONErrorResponseBody(w http.ResponseWriter, status int, message string) {
	encodeJSONResponseBody(w, common.NewErrorRes(status, message), status)
}

func encodeJSONResponseBody(w http.ResponseWriter, v any, status int) {
	b, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set(common.HeaderContentType, common.ContentTypeJson)
	w.WriteHeader(status)
	w.Write(b)
}
