package store

import (
	"errors"
	"signalalert/model"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmailTaken      = errors.New("email already exists")
)

// UserStore keeps the accounts allowed to sign in.
type UserStore struct {
	mu     sync.RWMutex
	users  map[string]model.User
	nextID int
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]model.User), nextID: 1}
}

// Register hashes the password and stores a new account keyed by email.
func (s *UserStore) Register(username, email, password, role string) (model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}
	key := strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[key]; exists {
		return model.User{}, ErrEmailTaken
	}
	user := model.User{
		UserID:         s.nextID,
		Username:       username,
		Email:          key,
		HashedPassword: string(hashed),
		Role:           role,
	}
	s.users[key] = user
	s.nextID++
	return user, nil
}

// Authenticate returns the account matching email and password.
func (s *UserStore) Authenticate(email, password string) (model.User, error) {
	s.mu.RLock()
	user, ok := s.users[strings.ToLower(strings.TrimSpace(email))]
	s.mu.RUnlock()
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return model.User{}, ErrInvalidPassword
	}
	return user, nil
}

func (s *UserStore) ByID(id int) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.UserID == id {
			return u, true
		}
	}
	return model.User{}, false
}
