package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "dashd-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func TestTaskCRUDAndList(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	deadline := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	task := Task{
		ID:        "task-1",
		Name:      "Write schema",
		Deadline:  &deadline,
		CreatedAt: created,
	}
	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	got, err := repo.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Name != task.Name || got.Done {
		t.Fatalf("unexpected task get result: %#v", got)
	}
	if got.Deadline == nil || !got.Deadline.Equal(deadline) {
		t.Fatalf("unexpected deadline: %v", got.Deadline)
	}

	task.Name = "Write schema v2"
	task.Done = true
	if err := repo.UpdateTask(ctx, task); err != nil {
		t.Fatalf("update task: %v", err)
	}

	done := true
	completed, err := repo.ListTasks(ctx, TaskListFilter{Done: &done})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != task.ID {
		t.Fatalf("unexpected completed list: %#v", completed)
	}

	if err := repo.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if _, err := repo.GetTask(ctx, task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}
}

func TestListTasksPreservesCreationOrder(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)

	for i, name := range []string{"first", "second", "third"} {
		err := repo.CreateTask(ctx, Task{
			ID:        name,
			Name:      name,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	got, err := repo.ListTasks(ctx, TaskListFilter{})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(got) != 3 || got[0].ID != "first" || got[2].ID != "third" {
		t.Fatalf("unexpected order: %#v", got)
	}
}

func TestUpdateMissingTaskReturnsNotFound(t *testing.T) {
	repo := setupRepo(t)
	err := repo.UpdateTask(context.Background(), Task{ID: "ghost", Name: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestUnparseableDeadlineScansToNil(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO tasks (id, name, done, deadline, created_at)
		VALUES ('bad-deadline', 'corrupt row', 0, 'not-a-timestamp', ?)`,
		mustTime(time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)),
	)
	if err != nil {
		t.Fatalf("insert corrupt row: %v", err)
	}

	got, err := repo.GetTask(ctx, "bad-deadline")
	if err != nil {
		t.Fatalf("get task with corrupt deadline: %v", err)
	}
	if got.Deadline != nil {
		t.Fatalf("expected nil deadline for corrupt value, got %v", got.Deadline)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	defaults, err := repo.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("load default settings: %v", err)
	}
	if !defaults.ShowProgressBar || !defaults.EnableGlow {
		t.Fatalf("unexpected defaults: %+v", defaults)
	}

	in := Settings{UserName: "Ada", EmojiStyle: "apple", ShowProgressBar: false, EnableGlow: true}
	if err := repo.SaveSettings(ctx, in); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	got, err := repo.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if got != in {
		t.Fatalf("settings round trip mismatch: got %+v want %+v", got, in)
	}

	// Second save is an upsert, not a second row.
	in.ShowProgressBar = true
	if err := repo.SaveSettings(ctx, in); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err = repo.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("reload settings: %v", err)
	}
	if !got.ShowProgressBar {
		t.Fatal("expected updated ShowProgressBar true")
	}
}
