package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/impa-jovem/impa/internal/logging"
	"github.com/impa-jovem/impa/internal/store"
)

// Options configures a Service.
type Options struct {
	// MentorAccessCode must be presented to register as a mentor.
	MentorAccessCode  string
	MinPasswordLength int
}

// Service is the account store. Accounts live under the "accounts" key and
// the persisted session under "session".
type Service struct {
	kv       store.KV
	hasher   PasswordHasher
	opts     Options
	log      *logging.Logger
	validate *validator.Validate
}

func NewService(kv store.KV, hasher PasswordHasher, opts Options, log *logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	if opts.MinPasswordLength < 1 {
		opts.MinPasswordLength = 1
	}
	return &Service{
		kv:       kv,
		hasher:   hasher,
		opts:     opts,
		log:      log,
		validate: validator.New(),
	}
}

// Register creates an account and logs it in.
func (s *Service) Register(ctx context.Context, p Profile, password string) (*User, error) {
	if err := s.validateProfile(p, password); err != nil {
		return nil, err
	}
	if p.Role == RoleMentor && p.AccessCode != s.opts.MentorAccessCode {
		return nil, ErrInvalidAccessCode
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	rec := record{
		User: User{
			ID:        uuid.NewString(),
			Name:      p.Name,
			Email:     p.Email,
			Role:      p.Role,
			Age:       p.Age,
			Phone:     p.Phone,
			Country:   p.Country,
			Education: p.Education,
			Interests: p.Interests,
			Avatar:    p.Avatar.WithDefaults(),
		},
		PasswordHash: hash,
	}

	var accounts []record
	err = s.kv.Update(ctx, store.KeyAccounts, &accounts, func(bool) (bool, error) {
		for _, a := range accounts {
			if a.Email == rec.Email {
				return false, ErrDuplicateEmail
			}
		}
		accounts = append(accounts, rec)
		return true, nil
	})
	if errors.Is(err, ErrDuplicateEmail) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("save account: %w", err)
	}

	u := rec.redacted()
	if err := s.kv.Put(ctx, store.KeySession, u); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.log.Info("account registered", "userID", u.ID, "role", u.Role)
	return u, nil
}

// Login checks credentials and persists the session.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, a := range accounts {
		if a.Email != email {
			continue
		}
		if !s.hasher.Check(password, a.PasswordHash) {
			break
		}
		u := a.redacted()
		if err := s.kv.Put(ctx, store.KeySession, u); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
		s.log.Info("logged in", "userID", u.ID)
		return u, nil
	}

	s.log.Debug("login rejected")
	return nil, ErrInvalidCredentials
}

// Logout clears the persisted session. It is idempotent.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, store.KeySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// CurrentUser returns the persisted session, or nil when logged out.
func (s *Service) CurrentUser(ctx context.Context) (*User, error) {
	var u User
	found, err := s.kv.Get(ctx, store.KeySession, &u)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &u, nil
}

// UpdateAvatar replaces the avatar of the session user in both the account
// record and the persisted session. Without a session it does nothing and
// returns nil.
func (s *Service) UpdateAvatar(ctx context.Context, cfg AvatarConfig) (*User, error) {
	sess := SessionFrom(ctx)
	if sess == nil {
		return nil, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.WithDefaults()

	var (
		accounts []record
		updated  *User
	)
	err := s.kv.Update(ctx, store.KeyAccounts, &accounts, func(bool) (bool, error) {
		for i := range accounts {
			if accounts[i].ID == sess.ID {
				accounts[i].Avatar = cfg
				updated = accounts[i].redacted()
				return true, nil
			}
		}
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("save avatar: %w", err)
	}
	if updated == nil {
		// Session points at an account that no longer exists.
		return nil, nil
	}

	if err := s.kv.Put(ctx, store.KeySession, updated); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return updated, nil
}

// ListStudents returns every student account in registration order.
func (s *Service) ListStudents(ctx context.Context) ([]User, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []User
	for _, a := range accounts {
		if a.Role == RoleStudent {
			out = append(out, a.User)
		}
	}
	return out, nil
}

// Get returns the account with the given id, or nil.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.ID == id {
			return a.redacted(), nil
		}
	}
	return nil, nil
}

func (s *Service) load(ctx context.Context) ([]record, error) {
	var accounts []record
	if _, err := s.kv.Get(ctx, store.KeyAccounts, &accounts); err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	return accounts, nil
}

const maxPasswordBytes = 72

func (s *Service) validateProfile(p Profile, password string) error {
	if err := s.validate.Struct(p); err != nil {
		return profileError(err)
	}
	if err := p.Avatar.Validate(); err != nil {
		return err
	}
	if err := s.validate.Var(password, fmt.Sprintf("min=%d", s.opts.MinPasswordLength)); err != nil {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidProfile, s.opts.MinPasswordLength)
	}
	// bcrypt rejects input past 72 bytes; validator's max counts runes.
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidProfile, maxPasswordBytes)
	}
	return nil
}

func profileError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, "email is not a valid address")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s is out of range", field))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidProfile, strings.Join(msgs, "; "))
}
