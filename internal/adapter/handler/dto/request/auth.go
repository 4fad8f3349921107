package request

// SignupRequest carries no binding tags: field checks happen in the handler
// and entity layer so each failure surfaces its declared message.
type SignupRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Preferences []string `json:"preferences"`
}

// LoginRequest has no required bindings either; a missing email simply
// fails the lookup and yields the generic 401.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
