package models

// Credential is the stored secret of one active user. Value is either a
// bcrypt token or, for records that predate hashing, the plaintext itself.
type Credential struct {
	UserID int64
	Email  string
	Value  string
}
