package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ruudy-sib/taskkeeper/internal/domain/entity"
	"github.com/ruudy-sib/taskkeeper/internal/port/secondary"
)

const selectColumns = `SELECT id, title, description, status, user_id, created_at FROM tasks`

// Store implements secondary.TaskStore on SQLite.
type Store struct {
	db     *sql.DB
	now    func() time.Time
	logger *zap.Logger
}

// NewStore wraps an opened database.
func NewStore(db *sql.DB, logger *zap.Logger) *Store {
	return &Store{
		db:     db,
		now:    time.Now,
		logger: logger.Named("sqlite-store"),
	}
}

var _ secondary.TaskStore = (*Store)(nil)

// List returns the user's tasks matching filter ordered by id.
func (s *Store) List(ctx context.Context, filter entity.TaskFilter, user entity.User) ([]*entity.Task, error) {
	query := selectColumns + ` WHERE user_id = ?`
	args := []any{user.ID}

	if filter.HasStatus() {
		query += ` AND status = ?`
		args = append(args, string(filter.Status))
	}
	if filter.HasSearch() {
		pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(filter.Search))) + "%"
		query += ` AND (` + foldFunc + `(title) LIKE ? ESCAPE '\' OR ` + foldFunc + `(description) LIKE ? ESCAPE '\')`
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}
	return out, nil
}

// FindOne returns the task matching id and user id, or nil when none does.
func (s *Store) FindOne(ctx context.Context, query entity.TaskQuery) (*entity.Task, error) {
	row := s.db.QueryRowContext(ctx,
		selectColumns+` WHERE id = ? AND user_id = ?`,
		query.Where.ID, query.Where.UserID,
	)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return t, nil
}

// Create inserts a new OPEN task owned by user.
func (s *Store) Create(ctx context.Context, input entity.CreateTaskInput, user entity.User) (*entity.Task, error) {
	t := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      entity.TaskStatusOpen,
		UserID:      user.ID,
		CreatedAt:   s.now().UTC(),
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, status, user_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		t.Title, t.Description, string(t.Status), t.UserID, t.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read inserted task id: %w", err)
	}
	t.ID = id

	s.logger.Debug("task inserted", zap.Int64("task_id", t.ID), zap.Int64("user_id", t.UserID))
	return t, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*entity.Task, error) {
	var (
		t         entity.Task
		status    string
		createdAt string
	)
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &status, &t.UserID, &createdAt); err != nil {
		return nil, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	t.Status = entity.TaskStatus(status)
	t.CreatedAt = ts
	return &t, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return r.Replace(s)
}
