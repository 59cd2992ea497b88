package handler

import (
	"encoding/json"
	"net/http"
)

// Client-facing message strings kept compatible with the existing frontend.
const (
	msgWrongID      = "Sorry, wrong ID, Please input the right ID"
	msgServerError  = "internal server error"
	msgBadBody      = "invalid request body"
	msgBodyTooLarge = "request body too large"
	msgIncomplete   = "Incorrect submission"
	msgEmailTaken   = "Email already registered"
	msgBadLogin     = "Incorrect Username or Password!"
	msgTaskUpdated  = "Document updated successfully"
	msgTaskDeleted  = "Document deleted successfully"
	msgNameUpdated  = "Name updated successfully"
	msgStoreActive  = "Server and Database Activated"
	msgStoreDown    = "database unavailable"
	msgUnauthorized = "unauthorized"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func messageResponse(msg string) map[string]string {
	return map[string]string{"message": msg}
}

func messageWithID(msg, id string) map[string]string {
	return map[string]string{"message": msg, "id": id}
}
