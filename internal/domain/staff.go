package domain

// StaffMember is a public-facing staff directory entry.
type StaffMember struct {
	ID       int64
	Name     string
	Position string
	Email    string
	PhotoURL string
}
