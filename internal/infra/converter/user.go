package converter

// UserWire mirrors the backend's user document.
type UserWire struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsAdmin   bool   `json:"isAdmin"`
	CreatedAt string `json:"createdAt"`
}

// AuthResponseWire is what the login/register endpoints return: a bearer
// token plus the profile fields the client keeps in its session.
type AuthResponseWire struct {
	Token   string `json:"token"`
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// UpdateUserWire is the profile/admin update payload.
type UpdateUserWire struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	IsAdmin *bool  `json:"isAdmin,omitempty"`
}
