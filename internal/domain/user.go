package domain

// User is an authenticated principal.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// UserPatch is a partial User. Nil fields are left as they are.
type UserPatch struct {
	ID     *string
	Email  *string
	Name   *string
	Role   *Role
	Avatar *string
}

// Apply returns u with the non-nil fields of p copied over.
func (p UserPatch) Apply(u User) User {
	if p.ID != nil {
		u.ID = *p.ID
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	return u
}

// IsEmpty reports whether the patch carries no fields.
func (p UserPatch) IsEmpty() bool {
	return p.ID == nil && p.Email == nil && p.Name == nil && p.Role == nil && p.Avatar == nil
}

// Credential is one credential-table entry.
type Credential struct {
	Password string
	User     User
}
