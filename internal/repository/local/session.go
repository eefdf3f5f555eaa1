package local

import (
	"context"
	"errors"
	"fmt"

	"github.com/serikkalibeknur/project-clothesstore/internal/domain"
	"github.com/serikkalibeknur/project-clothesstore/internal/storage"
)

// SessionRepository implements repository.SessionRepository over the state
// store. The token and user profile live under separate keys, like the
// browser state this replaces.
type SessionRepository struct {
	store storage.Store
}

// NewSessionRepository creates a session repository on the given store.
func NewSessionRepository(store storage.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Get loads the session. An absent token loads as a logged-out session; a
// malformed user profile loads as an empty profile.
func (r *SessionRepository) Get(ctx context.Context) (domain.Session, error) {
	var session domain.Session

	token, err := r.store.Get(keyToken)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return session, nil
		}
		return session, fmt.Errorf("load token: %w", err)
	}
	session.Token = string(token)

	if _, err := loadJSON(r.store, keyUser, &session.User); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

// Save persists the token and user profile together.
func (r *SessionRepository) Save(ctx context.Context, session domain.Session) error {
	if err := r.store.Put(keyToken, []byte(session.Token)); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return saveJSON(r.store, keyUser, session.User)
}

// Clear wipes the token and user profile.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(keyToken); err != nil {
		return err
	}
	return r.store.Delete(keyUser)
}
