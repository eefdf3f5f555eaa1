package domain

// User roles known to the storefront.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the profile the backend returns on login and registration.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Session is the persisted token and user pair representing login state.
// A present token means logged in; the user profile is display metadata.
type Session struct {
	Token string
	User  User
}

// IsLoggedIn reports whether a token is present.
func (s Session) IsLoggedIn() bool {
	return s.Token != ""
}

// IsAdmin reports whether the session user carries the admin role.
func (s Session) IsAdmin() bool {
	return s.IsLoggedIn() && s.User.Role == RoleAdmin
}
