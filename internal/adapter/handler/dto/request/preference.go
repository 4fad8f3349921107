package request

// UpdatePreferencesRequest binds preferences through a pointer so that a
// missing key, null, or non-array value all fail the bind, while an empty
// array passes.
type UpdatePreferencesRequest struct {
	Preferences *[]string `json:"preferences" binding:"required"`
}
