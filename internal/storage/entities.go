package storage

import "time"

type Task struct {
	ID        string
	Name      string
	Done      bool
	Deadline  *time.Time
	CreatedAt time.Time
}

type Settings struct {
	UserName        string
	EmojiStyle      string
	ShowProgressBar bool
	EnableGlow      bool
}

type TaskListFilter struct {
	Done   *bool
	Limit  int
	Offset int
}
