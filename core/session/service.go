package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

var (
	nowFunc = time.Now // mockable

	// errors
	ErrLoginFailed  = errors.New("Login failed")
	ErrSignupFailed = errors.New("Signup failed")
)

type (
	// Storage is a keyed string store persisted across runs
	// (the browser-localStorage analogue).
	Storage interface {
		Get(key string) (string, bool)
		// Set writes all entries or none.
		Set(entries map[string]string) error
		Delete(keys ...string) error
	}

	// AuthResult is what the auth API returns on login/signup.
	AuthResult struct {
		Token    string `json:"token"`
		Employee *User  `json:"employee"`
	}

	// Client is the auth service this session store talks to.
	Client interface {
		Login(ctx context.Context, email, password string) (AuthResult, error)
		SignUp(ctx context.Context, name, email, password, dob string) (AuthResult, error)
	}

	Service struct {
		client Client
		store  Storage
		curr   *Session
	}
)

func NewService(client Client, store Storage) *Service {
	return &Service{client: client, store: store}
}

// Current returns the active session, if any.
func (s *Service) Current() (Session, bool) {
	if s.curr == nil {
		return Session{}, false
	}
	return *s.curr, true
}

// Token returns the active session's API token, or "" when signed out.
func (s *Service) Token() string {
	if s.curr == nil {
		return ""
	}
	return s.curr.Token
}

func (s *Service) IsAdmin() bool {
	return s.curr != nil && s.curr.User.IsAdmin()
}

// Restore rebuilds the session from persisted state. Corrupt or partial
// state is treated as "not signed in", never an error. A token whose JWT
// expiry has passed is rejected; tokens that are not JWTs stay opaque and
// are kept.
func (s *Service) Restore() (Session, bool) {
	token, okT := s.store.Get(TokenKey)
	raw, okU := s.store.Get(UserKey)
	if !okT || !okU || token == "" {
		return Session{}, false
	}
	var usr User
	if err := json.Unmarshal([]byte(raw), &usr); err != nil {
		return Session{}, false
	}
	if tokenExpired(token) {
		return Session{}, false
	}
	sess := Session{Token: token, User: usr}
	s.curr = &sess
	return sess, true
}

// Login authenticates with the given credentials and persists the session.
// A response without a token (or without an employee) is ErrLoginFailed;
// transport errors propagate as-is so their message can be surfaced.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	res, err := s.client.Login(ctx, email, password)
	if err != nil {
		return Session{}, err
	}
	return s.establish(res, ErrLoginFailed)
}

// SignUp creates an employee account and persists the resulting session.
func (s *Service) SignUp(ctx context.Context, form SignUpForm) (Session, error) {
	res, err := s.client.SignUp(ctx, form.Name, form.Email, form.Password, form.DOB)
	if err != nil {
		return Session{}, err
	}
	return s.establish(res, ErrSignupFailed)
}

// EstablishLogin applies a raw login response: validates it, persists the
// session and makes it current. Interactive callers run the mutation off the
// event loop and establish on it.
func (s *Service) EstablishLogin(res AuthResult) (Session, error) {
	return s.establish(res, ErrLoginFailed)
}

// EstablishSignUp applies a raw signup response; see EstablishLogin.
func (s *Service) EstablishSignUp(res AuthResult) (Session, error) {
	return s.establish(res, ErrSignupFailed)
}

// SignOut clears the persisted state and the in-memory session.
func (s *Service) SignOut() error {
	s.curr = nil
	return errors.Wrap(s.store.Delete(TokenKey, UserKey), "clearing persisted session")
}

func (s *Service) establish(res AuthResult, failure error) (Session, error) {
	if res.Token == "" || res.Employee == nil {
		return Session{}, failure
	}
	sess := Session{Token: res.Token, User: *res.Employee}

	raw, err := json.Marshal(sess.User)
	if err != nil {
		return Session{}, errors.Wrap(err, "encoding session user")
	}
	entries := map[string]string{TokenKey: sess.Token, UserKey: string(raw)}
	if err := s.store.Set(entries); err != nil {
		return Session{}, errors.Wrap(err, "persisting session")
	}

	s.curr = &sess
	return sess, nil
}

// tokenExpired parses the token as a JWT without verifying its signature
// (the client holds no key) and checks the exp claim. Anything that does
// not parse is treated as an opaque, non-expiring token.
func tokenExpired(token string) bool {
	claims := jwt.StandardClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == 0 {
		return false
	}
	return nowFunc().Unix() > claims.ExpiresAt
}
