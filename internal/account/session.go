package account

import "context"

type sessionKey struct{}

// WithSession returns a context carrying the logged-in user.
func WithSession(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, sessionKey{}, u)
}

// SessionFrom returns the user stored by WithSession, or nil.
func SessionFrom(ctx context.Context) *User {
	u, _ := ctx.Value(sessionKey{}).(*User)
	return u
}

// RequireUser returns the session user or ErrNotAuthenticated.
func RequireUser(ctx context.Context) (*User, error) {
	u := SessionFrom(ctx)
	if u == nil {
		return nil, ErrNotAuthenticated
	}
	return u, nil
}

// RequireRole is RequireUser plus a role check.
func RequireRole(ctx context.Context, role Role) (*User, error) {
	u, err := RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if u.Role != role {
		return nil, ErrForbidden
	}
	return u, nil
}
