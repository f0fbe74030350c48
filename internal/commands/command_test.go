package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add pay rent tomorrow", TypeAdd},
		{"done task-3", TypeDone},
		{"deadline task-3 2026-09-01", TypeDeadline},
		{"/hide stats", TypeHide},
		{"show stats", TypeShow},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestParseInvalidArguments(t *testing.T) {
	cases := []string{
		"add",
		"done",
		"deadline task-1",
		"hide",
		"hide sidebar",
		"",
	}
	for _, in := range cases {
		_, err := Parse(in)
		if err == nil {
			t.Fatalf("expected error for %q", in)
		}
		var ce *CommandError
		if !errors.As(err, &ce) {
			t.Fatalf("expected CommandError for %q, got %v", in, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Name != "write docs" {
				t.Fatalf("unexpected name: %q", a.Name)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteDeadlineArgs(t *testing.T) {
	cmd, err := Parse("deadline task-7 next monday")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{
		Deadline: func(a DeadlineArgs) (Result, error) {
			if a.Ref != "task-7" || a.When != "next monday" {
				t.Fatalf("unexpected args: %+v", a)
			}
			return Result{}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("hide stats")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
