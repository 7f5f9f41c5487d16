package postgresstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ruudy-sib/taskkeeper/internal/domain/entity"
	"github.com/ruudy-sib/taskkeeper/internal/port/secondary"
)

const selectColumns = `SELECT id, title, description, status, user_id, created_at FROM tasks`

// Store implements secondary.TaskStore on PostgreSQL.
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewStore creates a PostgreSQL-backed task store.
func NewStore(pool *pgxpool.Pool, logger *zap.Logger) *Store {
	return &Store{
		pool:   pool,
		logger: logger.Named("postgres-store"),
	}
}

var _ secondary.TaskStore = (*Store)(nil)

// List returns the user's tasks matching filter ordered by id.
func (s *Store) List(ctx context.Context, filter entity.TaskFilter, user entity.User) ([]*entity.Task, error) {
	query, args := buildListQuery(filter, user)

	rows, err := s.pool.Query(ctx, query, args...)
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
	row := s.pool.QueryRow(ctx,
		selectColumns+` WHERE id=$1 AND user_id=$2`,
		query.Where.ID, query.Where.UserID,
	)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// Create inserts a new OPEN task owned by user.
func (s *Store) Create(ctx context.Context, input entity.CreateTaskInput, user entity.User) (*entity.Task, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO tasks (title, description, status, user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, title, description, status, user_id, created_at`,
		input.Title,
		input.Description,
		string(entity.TaskStatusOpen),
		user.ID,
		time.Now().UTC(),
	)
	t, err := scanTask(row)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	s.logger.Debug("task inserted", zap.Int64("task_id", t.ID), zap.Int64("user_id", t.UserID))
	return t, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func buildListQuery(filter entity.TaskFilter, user entity.User) (string, []any) {
	var sb strings.Builder
	sb.WriteString(selectColumns)
	sb.WriteString(` WHERE user_id=$1`)
	args := []any{user.ID}

	if filter.HasStatus() {
		args = append(args, string(filter.Status))
		fmt.Fprintf(&sb, ` AND status=$%d`, len(args))
	}
	if filter.HasSearch() {
		args = append(args, "%"+escapeLike(strings.TrimSpace(filter.Search))+"%")
		n := len(args)
		fmt.Fprintf(&sb, ` AND (title ILIKE $%d OR description ILIKE $%d)`, n, n)
	}
	sb.WriteString(` ORDER BY id ASC`)

	return sb.String(), args
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var (
		t      entity.Task
		status string
	)
	if err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&status,
		&t.UserID,
		&t.CreatedAt,
	); err != nil {
		return nil, err
	}
	t.Status = entity.TaskStatus(status)
	return &t, nil
}

// escapeLike escapes LIKE wildcards using the default backslash escape.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return r.Replace(s)
}
