package entity

// User is the identity decoded from the id_token.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

// Session is the authenticated staff session. IsAuthenticated is true iff a
// non-empty token is held.
type Session struct {
	User            *User
	Token           string
	IsAuthenticated bool
}
