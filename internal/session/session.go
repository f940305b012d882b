// Package session mantiene el usuario con sesión iniciada y lo persiste en el
// almacén clave/valor.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"storefront/internal/models"
	"storefront/internal/storage"
)

const (
	// DefaultKey es la clave del registro de sesión
	DefaultKey = "dripzoid_user"

	HomePath  = "/"
	LoginPath = "/login"
)

// State es el estado de la sesión
type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	if s == LoggedIn {
		return "loggedIn"
	}
	return "loggedOut"
}

// Navigator pide una navegación completa a una ruta fija
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapta una función a Navigator
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) {
	f(path)
}

type Store struct {
	mu   sync.RWMutex
	kv   storage.KV
	key  string
	nav  Navigator
	user *models.UserSession
}

// New crea el store y carga la sesión guardada. Un registro que no se puede
// leer se borra y la sesión queda cerrada.
func New(ctx context.Context, kv storage.KV, key string, nav Navigator) (*Store, error) {
	if nav == nil {
		nav = NavigatorFunc(func(string) {})
	}
	s := &Store{kv: kv, key: key, nav: nav}

	data, err := kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", key, err)
	}

	var user models.UserSession
	if err := json.Unmarshal(data, &user); err != nil {
		log.Printf("⚠️ Discarding unreadable session %s: %v", key, err)
		if err := kv.Delete(ctx, key); err != nil {
			return nil, fmt.Errorf("clear session %s: %w", key, err)
		}
		return s, nil
	}

	s.user = &user
	return s, nil
}

// Login guarda el usuario como sesión actual
func (s *Store) Login(ctx context.Context, user models.UserSession) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.user = &user
	return nil
}

// Logout cierra la sesión, borra el registro y navega al inicio
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	err := s.kv.Delete(ctx, s.key)
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("erase session: %w", err)
	}
	s.nav.Navigate(HomePath)
	return nil
}

// RequireAuth retorna true si hay sesión. Si no, navega al login y retorna false.
func (s *Store) RequireAuth() bool {
	if s.IsLoggedIn() {
		return true
	}
	s.nav.Navigate(LoginPath)
	return false
}

func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Store) State() State {
	if s.IsLoggedIn() {
		return LoggedIn
	}
	return LoggedOut
}

// Current retorna el usuario actual, false si no hay sesión
func (s *Store) Current() (models.UserSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.UserSession{}, false
	}
	return *s.user, true
}
