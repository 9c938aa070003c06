package models

// Session is the credential issued after a verified login.
type Session struct {
	ID    string
	Token string
}
