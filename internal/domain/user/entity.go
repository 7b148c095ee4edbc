package user

// ProfileUpdate is the set of user fields the client can change. Email and
// Phone are validated by the use case before submission; IsAdmin is only
// honored on the admin path.
type ProfileUpdate struct {
	Name    string
	Email   string
	Phone   string
	IsAdmin *bool
}
