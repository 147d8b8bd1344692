package kafka

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

type fakeRecorder struct {
	plays []string
	err   error
}

func (f *fakeRecorder) RecordPlay(ctx context.Context, gameID string) error {
	if f.err != nil {
		return f.err
	}
	f.plays = append(f.plays, gameID)
	return nil
}

func newTestConsumer(recorder *fakeRecorder) *Consumer {
	return &Consumer{
		recorder: recorder,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestHandlePlayEvent(t *testing.T) {
	recorder := &fakeRecorder{}
	c := newTestConsumer(recorder)
	ctx := context.Background()

	t.Run("valid event", func(t *testing.T) {
		err := c.handlePlayEvent(ctx, []byte(`{"gameId":"math-master","source":"web"}`))
		if err != nil {
			t.Fatalf("handlePlayEvent failed: %v", err)
		}
		if len(recorder.plays) != 1 || recorder.plays[0] != "math-master" {
			t.Errorf("recorded plays = %v; want [math-master]", recorder.plays)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if err := c.handlePlayEvent(ctx, []byte(`{not json`)); err == nil {
			t.Error("handlePlayEvent accepted malformed json; want error")
		}
	})

	t.Run("missing game id", func(t *testing.T) {
		if err := c.handlePlayEvent(ctx, []byte(`{"source":"web"}`)); err == nil {
			t.Error("handlePlayEvent accepted event without gameId; want error")
		}
	})
}
