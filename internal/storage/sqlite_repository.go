package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTimeLayout = time.RFC3339Nano

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateTask(ctx context.Context, in Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, name, done, deadline, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		in.ID, in.Name, boolToInt(in.Done), nullTime(in.Deadline), mustTime(in.CreatedAt),
	)
	return err
}

func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, done, deadline, created_at
		FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, err
	}
	return task, nil
}

func (r *SQLiteRepository) UpdateTask(ctx context.Context, in Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET name = ?, done = ?, deadline = ?
		WHERE id = ?`,
		in.Name, boolToInt(in.Done), nullTime(in.Deadline), in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListTasks(ctx context.Context, filter TaskListFilter) ([]Task, error) {
	query := `SELECT id, name, done, deadline, created_at FROM tasks`
	args := make([]any, 0, 3)
	if filter.Done != nil {
		query += ` WHERE done = ?`
		args = append(args, boolToInt(*filter.Done))
	}
	query += ` ORDER BY created_at ASC, id ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) LoadSettings(ctx context.Context) (Settings, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_name, emoji_style, show_progress_bar, enable_glow
		FROM settings WHERE id = 1`)
	var out Settings
	var showBar, glow int
	err := row.Scan(&out.UserName, &out.EmojiStyle, &showBar, &glow)
	if errors.Is(err, sql.ErrNoRows) {
		return Settings{EmojiStyle: "native", ShowProgressBar: true, EnableGlow: true}, nil
	}
	if err != nil {
		return Settings{}, err
	}
	out.ShowProgressBar = showBar == 1
	out.EnableGlow = glow == 1
	return out, nil
}

func (r *SQLiteRepository) SaveSettings(ctx context.Context, in Settings) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (id, user_name, emoji_style, show_progress_bar, enable_glow)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_name = excluded.user_name,
			emoji_style = excluded.emoji_style,
			show_progress_bar = excluded.show_progress_bar,
			enable_glow = excluded.enable_glow`,
		in.UserName, in.EmojiStyle, boolToInt(in.ShowProgressBar), boolToInt(in.EnableGlow),
	)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (Task, error) {
	var out Task
	var done int
	var deadline sql.NullString
	var created string
	if err := s.Scan(&out.ID, &out.Name, &done, &deadline, &created); err != nil {
		return Task{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return Task{}, err
	}
	out.Done = done == 1
	// Unparseable deadlines degrade to nil so the task simply never
	// matches the due-today filter.
	out.Deadline = parseLenientTime(deadline)
	out.CreatedAt = createdAt
	return out, nil
}

func applyPagination(args *[]any, limit, offset int) string {
	clause := ""
	if limit > 0 {
		clause += ` LIMIT ?`
		*args = append(*args, limit)
		if offset > 0 {
			clause += ` OFFSET ?`
			*args = append(*args, offset)
		}
	}
	return clause
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(sqliteTimeLayout)
}

func mustTime(t time.Time) string {
	return t.Format(sqliteTimeLayout)
}

func parseRequiredTime(raw string) (time.Time, error) {
	out, err := time.Parse(sqliteTimeLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", raw, err)
	}
	return out, nil
}

func parseLenientTime(raw sql.NullString) *time.Time {
	if !raw.Valid || raw.String == "" {
		return nil
	}
	out, err := time.Parse(sqliteTimeLayout, raw.String)
	if err != nil {
		return nil
	}
	return &out
}
