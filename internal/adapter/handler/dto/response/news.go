package response

import "encoding/json"

// NewsResponse wraps the provider payload verbatim.
type NewsResponse struct {
	Message string          `json:"message"`
	News    json.RawMessage `json:"news"`
}
