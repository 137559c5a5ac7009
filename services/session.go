package services

import (
	"fmt"

	"go.uber.org/zap"

	"lms/flagstore"
	"lms/models"
	"lms/store"
)

const loggedInFlag = "lms_logged_in"

// SessionService is the local login gate. It is deliberately trivial: any
// non-empty email with a password of at least four characters is accepted,
// and the only session state is a boolean flag held outside the record
// store so it survives re-seeding.
type SessionService struct {
	store *store.Store
	flags *flagstore.Store
	log   *zap.SugaredLogger
}

func NewSessionService(st *store.Store, flags *flagstore.Store, log *zap.SugaredLogger) *SessionService {
	return &SessionService{store: st, flags: flags, log: log}
}

type loginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required,min=4"`
}

// Login checks the placeholder policy, rewrites the stored user's email to
// the one just entered and marks the session logged-in. On a policy
// failure the session stays logged out and nothing is written.
func (ss *SessionService) Login(email, password string) (*models.User, error) {
	if err := validate.Struct(loginInput{Email: email, Password: password}); err != nil {
		return nil, fmt.Errorf("%w: email and a password of at least 4 characters are required", ErrValidation)
	}
	user, err := ss.store.FirstUser()
	if err != nil {
		return nil, err
	}
	user.Email = email
	if err := ss.store.PutUser(user); err != nil {
		return nil, err
	}
	if err := ss.flags.Set(loggedInFlag, true); err != nil {
		return nil, err
	}
	ss.log.Infow("logged in", "email", email)
	return user, nil
}

// Logout clears the session flag only; the user record is untouched.
func (ss *SessionService) Logout() error {
	if err := ss.flags.Set(loggedInFlag, false); err != nil {
		return err
	}
	ss.log.Infow("logged out")
	return nil
}

// IsLoggedIn is a pure read of the session flag.
func (ss *SessionService) IsLoggedIn() bool {
	return ss.flags.Get(loggedInFlag)
}

// CurrentUser returns the stored user while a session is active.
func (ss *SessionService) CurrentUser() (*models.User, error) {
	if !ss.IsLoggedIn() {
		return nil, fmt.Errorf("no active session: %w", store.ErrNotFound)
	}
	return ss.store.FirstUser()
}

// UpdateUser writes profile edits through to the store.
func (ss *SessionService) UpdateUser(u *models.User) error {
	return ss.store.PutUser(u)
}
