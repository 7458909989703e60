package files

import (
	"encoding/json"
)

// Response is the JSON envelope of the HTTP file API. On success Data holds
// the listing or the file contents; on failure Error is set and Data holds one
// of the sentinel error messages.
type Response struct {
	Error bool            `json:"error,omitempty"`
	Data  json.RawMessage `json:"data"`
}

// Route prefixes of the HTTP file API.
const (
	ListRoute = "/api/files/"
	ReadRoute = "/api/file/"
)
