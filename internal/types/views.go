package types

// AuthenticatedUser is what the session middleware stores on the request.
type AuthenticatedUser struct {
	ID        uint
	FirstName string
	Email     string
}

// NoteView is what the list and detail templates render for one note.
type NoteView struct {
	ID    uint
	Title string
	Body  string
	Date  string
	Mine  bool
}
