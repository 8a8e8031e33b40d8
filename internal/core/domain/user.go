package domain

// User models a registered traveler account.
//
// PasswordHash always holds a bcrypt hash, never the plaintext. Tokens is the
// server-side list of currently valid session tokens: it grows on signup/login
// and is emptied in full on logout, which is what makes logout effective on
// every device at once.
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Age          int      `json:"age"`
	Address      string   `json:"address"`
	PasswordHash string   `json:"-"`
	Tokens       []string `json:"-"`
}

// HasToken reports whether token is in the user's server-side session list.
// A structurally valid JWT that is absent here has been revoked by logout.
func (u *User) HasToken(token string) bool {
	for _, t := range u.Tokens {
		if t == token {
			return true
		}
	}
	return false
}
