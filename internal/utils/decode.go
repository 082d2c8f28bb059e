package utils

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON parses the request body into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
