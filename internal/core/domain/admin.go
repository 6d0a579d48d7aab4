package domain

// Admin is a content-management account. Passwords are stored as bcrypt
// hashes; the hash never leaves the server.
type Admin struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
