package domain

// Owner is a credentialed principal. PasswordHash holds a bcrypt hash.
type Owner struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}
