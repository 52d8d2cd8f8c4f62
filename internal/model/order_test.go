package model

import (
	"errors"
	"testing"
)

func TestReorderAssignsDenseSequence(t *testing.T) {
	day := int64(1753238400000)
	tasks := []Task{
		{ID: "a", DueDate: day},
		{ID: "b", DueDate: day},
	}

	out, err := Reorder(tasks, []string{"b", "a"})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(out))
	}
	if out[0].ID != "b" || out[0].Order != 1 {
		t.Fatalf("unexpected first task: %#v", out[0])
	}
	if out[1].ID != "a" || out[1].Order != 2 {
		t.Fatalf("unexpected second task: %#v", out[1])
	}
}

func TestReorderIsIdempotent(t *testing.T) {
	tasks := []Task{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}
	ids := []string{"c", "a", "b"}

	first, err := Reorder(tasks, ids)
	if err != nil {
		t.Fatalf("first reorder: %v", err)
	}
	second, err := Reorder(first, ids)
	if err != nil {
		t.Fatalf("second reorder: %v", err)
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Order != second[i].Order {
			t.Fatalf("reorder not idempotent: %#v vs %#v", first[i], second[i])
		}
	}
}

func TestReorderSkipsUnreferencedTasks(t *testing.T) {
	tasks := []Task{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	out, err := Reorder(tasks, []string{"b"})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if len(out) != 1 || out[0].ID != "b" || out[0].Order != 1 {
		t.Fatalf("unexpected result: %#v", out)
	}
}

func TestReorderUnknownIDFails(t *testing.T) {
	tasks := []Task{{ID: "a"}}
	out, err := Reorder(tasks, []string{"a", "ghost"})
	if !errors.Is(err, ErrUnknownTaskID) {
		t.Fatalf("expected ErrUnknownTaskID, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected no partial result, got %#v", out)
	}
}
