package entity

// Identity is the minimal projection of a user exposed to downstream
// handlers after session verification. It never includes the password
// hash or the reset token fields.
type Identity struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IdentityOf builds the projection for a user.
func IdentityOf(u *User) *Identity {
	return &Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
