package main

import (
	"encoding/json"
	"net/http"
)

func errorBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

func sendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return 0, err
	}
	return w.Write(payload)
}

func sendJSONOrLog(w http.ResponseWriter, v any) {
	if _, err := sendJSON(w, v); err != nil {
		log.Error("unable to send JSON response: ", err)
	}
}
