package domain

// StoreSettings is the admin-maintained store profile. It lives only in the
// local state store and is never sent to the backend.
type StoreSettings struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
