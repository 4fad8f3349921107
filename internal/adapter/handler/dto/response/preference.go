package response

type PreferencesResponse struct {
	Preferences []string `json:"preferences"`
}
