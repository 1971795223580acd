package model

// Change is a single changelog entry that references a pull request.
type Change struct {
	Message  string
	Number   string
	Text     string
	LinkText string
	URL      string
}
