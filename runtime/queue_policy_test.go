package runtime

import (
	"testing"
	"time"

	"github.com/odvcencio/cellar/state"
)

func TestShouldFlushQueue(t *testing.T) {
	cases := []struct {
		policy QueueFlushPolicy
		msg    Message
		want   bool
	}{
		{FlushManual, ResizeMsg{Width: 1, Height: 1}, false},
		{FlushManual, QueueFlushMsg{}, true},
		{FlushOnTick, TickMsg{}, true},
		{FlushOnTick, ResizeMsg{Width: 1, Height: 1}, false},
		{FlushOnTick, QueueFlushMsg{}, true},
		{FlushOnMessage, TickMsg{}, false},
		{FlushOnMessage, ResizeMsg{Width: 1, Height: 1}, true},
		{FlushOnMessageAndTick, TickMsg{}, true},
		{FlushOnMessageAndTick, ResizeMsg{Width: 1, Height: 1}, true},
	}

	for i, tc := range cases {
		if got := shouldFlushQueue(tc.policy, tc.msg); got != tc.want {
			t.Fatalf("case %d policy=%d msg=%T got %v want %v", i, tc.policy, tc.msg, got, tc.want)
		}
	}
}

func TestWithQueue_FlushOnTick(t *testing.T) {
	queue := state.NewQueue()
	calls := 0
	queue.Schedule(func() {
		calls++
	})

	update := WithQueue(queue, func(host *Host, msg Message) bool { return false })
	if dirty := update(nil, TickMsg{Time: time.Now()}); !dirty {
		t.Fatalf("expected dirty after tick flush")
	}
	if calls != 1 {
		t.Fatalf("expected 1 callback after tick flush, got %d", calls)
	}
}

func TestWithQueue_FlushOnFlushMessage(t *testing.T) {
	queue := state.NewQueue()
	calls := 0
	queue.Schedule(func() {
		calls++
	})

	update := WithQueue(queue, func(host *Host, msg Message) bool { return false })
	if dirty := update(nil, QueueFlushMsg{}); !dirty {
		t.Fatalf("expected dirty after queue flush message")
	}
	if calls != 1 {
		t.Fatalf("expected 1 callback after queue flush message, got %d", calls)
	}
}

func TestWithQueue_NoFlushOnOtherMessages(t *testing.T) {
	queue := state.NewQueue()
	calls := 0
	queue.Schedule(func() {
		calls++
	})

	update := WithQueue(queue, func(host *Host, msg Message) bool { return true })
	if dirty := update(nil, ResizeMsg{Width: 10, Height: 5}); !dirty {
		t.Fatalf("expected dirty from update")
	}
	if calls != 0 {
		t.Fatalf("expected no queue flush, got %d callbacks", calls)
	}
}
