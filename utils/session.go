package utils

import (
	"net/http"

	"shoaib/globals"
)

func GetSessionIDFromRequest(r *http.Request) string {
	sessionID, ok := r.Context().Value(globals.SessionIDKey).(string)
	if !ok {
		return ""
	}
	return sessionID
}
