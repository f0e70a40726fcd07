// Package account manages user records and the current session.
package account

// Role is the kind of account.
type Role string

const (
	RoleStudent Role = "student"
	RoleMentor  Role = "mentor"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleMentor
}

// User is the redacted projection of an account. It never carries the
// password or its hash.
type User struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Role      Role         `json:"role"`
	Age       int          `json:"age,omitempty"`
	Phone     string       `json:"phone,omitempty"`
	Country   string       `json:"country,omitempty"`
	Education string       `json:"education,omitempty"`
	Interests string       `json:"interests,omitempty"`
	Avatar    AvatarConfig `json:"avatar"`
}

// IsMentor reports whether the user has the mentor role.
func (u *User) IsMentor() bool {
	return u != nil && u.Role == RoleMentor
}

// Profile is the registration form.
type Profile struct {
	Name      string `validate:"required"`
	Email     string `validate:"required,email"`
	Role      Role   `validate:"required,oneof=student mentor"`
	Age       int    `validate:"omitempty,min=1,max=120"`
	Phone     string
	Country   string
	Education string
	Interests string

	// Avatar is optional; empty fields are defaulted.
	Avatar AvatarConfig

	// AccessCode gates mentor registration.
	AccessCode string
}

// record is the authoritative stored account.
type record struct {
	User
	PasswordHash string `json:"passwordHash"`
}

func (r record) redacted() *User {
	u := r.User
	return &u
}
