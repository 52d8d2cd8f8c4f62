package scheduler

import (
	"testing"
	"time"
)

func TestEngineEmitsInTriggerOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(RefreshEvent{ID: "later", TriggerAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(RefreshEvent{ID: "sooner", TriggerAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.ID != "sooner" || second.ID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.ID, second.ID)
	}
}

func TestScheduleReplacesDuplicateIDs(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	for i := 0; i < 10; i++ {
		ev := TaskDueEvent("abc", now.Add(30*time.Millisecond))
		if err := engine.Schedule(ev); err != nil {
			t.Fatalf("schedule: %v", err)
		}
	}

	waitEvent(t, engine.C(), time.Second)
	select {
	case ev := <-engine.C():
		t.Fatalf("expected a single event for the re-armed trigger, got extra %s", ev.ID)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	now := time.Now().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Schedule(RefreshEvent{
			ID:        string(rune('a' + i)),
			TriggerAt: now,
		}); err != nil {
			t.Fatalf("schedule event: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesTriggerTime(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(RefreshEvent{ID: "bad"}); err != ErrInvalidTriggerTime {
		t.Fatalf("expected ErrInvalidTriggerTime, got %v", err)
	}
}

func TestDayRolloverEventTargetsNextLocalMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2025, 7, 23, 22, 30, 0, 0, loc)

	ev := DayRolloverEvent(now)

	want := time.Date(2025, 7, 24, 0, 0, 0, 0, loc)
	if !ev.TriggerAt.Equal(want) {
		t.Fatalf("expected trigger at %v, got %v", want, ev.TriggerAt)
	}
	if ev.Reason != ReasonDayRollover {
		t.Fatalf("unexpected reason %q", ev.Reason)
	}
}

func TestTaskDueEvent(t *testing.T) {
	due := time.Date(2025, 7, 24, 9, 0, 0, 0, time.UTC)
	ev := TaskDueEvent("4f2a", due)

	if ev.ID != "due-4f2a" {
		t.Fatalf("unexpected id %q", ev.ID)
	}
	if ev.Reason != ReasonTaskDue {
		t.Fatalf("unexpected reason %q", ev.Reason)
	}
	if !ev.TriggerAt.Equal(due) {
		t.Fatalf("unexpected trigger %v", ev.TriggerAt)
	}
}

func waitEvent(t *testing.T, ch <-chan RefreshEvent, timeout time.Duration) RefreshEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return RefreshEvent{}
	}
}
