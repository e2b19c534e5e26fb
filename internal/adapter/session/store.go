package session

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"postdesk/internal/core/domain"
	"postdesk/internal/core/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS session (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  token TEXT NOT NULL,
  actor_id INTEGER NOT NULL,
  email TEXT NOT NULL,
  saved_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS uploads (
  task_id INTEGER PRIMARY KEY,
  count INTEGER NOT NULL
);
`

// Store persists the authenticated session in a single-file sqlite
// database so the credential survives between runs.
type Store struct {
	db *sqlx.DB
}

var _ ports.SessionStore = (*Store)(nil)

func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, errors.Join(err, closeErr)
		}
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

type sessionRow struct {
	Token   string    `db:"token"`
	ActorID uint64    `db:"actor_id"`
	Email   string    `db:"email"`
	SavedAt time.Time `db:"saved_at"`
}

func (s *Store) Save(ctx context.Context, session domain.Session) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO session (id, token, actor_id, email, saved_at)
VALUES (1, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
  token = excluded.token,
  actor_id = excluded.actor_id,
  email = excluded.email,
  saved_at = excluded.saved_at;
`, session.Token, session.ActorID, session.Email, time.Now().UTC())
	if err != nil {
		return err
	}
	// a fresh login starts a fresh session, so prior upload counts no
	// longer apply
	_, err = s.db.ExecContext(ctx, "DELETE FROM uploads")
	return err
}

func (s *Store) Load(ctx context.Context) (domain.Session, error) {
	var row sessionRow
	err := s.db.GetContext(ctx, &row, "SELECT token, actor_id, email, saved_at FROM session WHERE id = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, domain.ErrNotAuthenticated
	}
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{
		Token:   row.Token,
		ActorID: row.ActorID,
		Email:   row.Email,
		SavedAt: row.SavedAt,
	}, nil
}

func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM session WHERE id = 1"); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, "DELETE FROM uploads")
	return err
}

// RecordUpload bumps the deliverable count for the task in the current
// session. The count outlives the process, so a later invocation still
// sees a design deliverable that was uploaded earlier in the session.
func (s *Store) RecordUpload(ctx context.Context, taskID uint64) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO uploads (task_id, count)
VALUES (?, 1)
ON CONFLICT (task_id) DO UPDATE SET count = count + 1;
`, taskID)
	return err
}

func (s *Store) UploadCounts(ctx context.Context) (map[uint64]int, error) {
	rows := []struct {
		TaskID uint64 `db:"task_id"`
		Count  int    `db:"count"`
	}{}
	if err := s.db.SelectContext(ctx, &rows, "SELECT task_id, count FROM uploads"); err != nil {
		return nil, err
	}
	counts := make(map[uint64]int, len(rows))
	for _, row := range rows {
		counts[row.TaskID] = row.Count
	}
	return counts, nil
}
