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
		{"/add pay rent due:2025-07-24", TypeAdd},
		{"done 4f2a", TypeDone},
		{"/delete 4f2a", TypeDelete},
		{"show upcoming", TypeShow},
		{"/sync", TypeSync},
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

func TestParseAddExtractsDueAndTags(t *testing.T) {
	cmd, err := Parse("/add water the plants due:2025-07-24 tag:home tag:garden")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Name != "water the plants" {
		t.Fatalf("unexpected name: %q", cmd.Add.Name)
	}
	if cmd.Add.Due != "2025-07-24" {
		t.Fatalf("unexpected due: %q", cmd.Add.Due)
	}
	if len(cmd.Add.Tags) != 2 || cmd.Add.Tags[0] != "home" || cmd.Add.Tags[1] != "garden" {
		t.Fatalf("unexpected tags: %#v", cmd.Add.Tags)
	}
}

func TestParseAddWithoutName(t *testing.T) {
	_, err := Parse("/add due:2025-07-24")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestParseShowRejectsUnknownSubject(t *testing.T) {
	_, err := Parse("show everything")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
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

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/done 4f2a")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Done: func(a DoneArgs) (Result, error) {
			called = true
			if a.Target != "4f2a" {
				t.Fatalf("unexpected target: %q", a.Target)
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

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("sync")
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
