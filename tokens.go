package jobly

import (
	"database/sql"
	"errors"
	"time"

	"github.com/tinywasm/unixid"
)

// SQLTokenStore keeps a single token row in a local database.
type SQLTokenStore struct {
	exec Executor
}

func NewSQLTokenStore(exec Executor) (*SQLTokenStore, error) {
	if err := runMigrations(exec); err != nil {
		return nil, err
	}
	return &SQLTokenStore{exec: exec}, nil
}

// Load returns "" when no token has been saved.
func (s *SQLTokenStore) Load() (string, error) {
	var token string
	err := s.exec.QueryRow("SELECT token FROM jobly_tokens ORDER BY created_at DESC, id DESC LIMIT 1").Scan(&token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return token, nil
}

func (s *SQLTokenStore) Save(token string) error {
	if err := s.Clear(); err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	u, err := unixid.NewUnixID()
	if err != nil {
		return err
	}

	return s.exec.Exec(
		"INSERT INTO jobly_tokens (id, token, created_at) VALUES (?, ?, ?)",
		u.GetNewID(), token, time.Now().Unix(),
	)
}

func (s *SQLTokenStore) Clear() error {
	return s.exec.Exec("DELETE FROM jobly_tokens")
}
