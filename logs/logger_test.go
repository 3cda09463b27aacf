package logs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func debugLevel() Level {
	l := new(slog.LevelVar)
	l.Set(slog.LevelDebug)
	return l
}

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Warn("test", "hello", "world!")
	})
}

func TestDefaultLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
		level Level,
	) {
		if level.Level() != slog.LevelWarn {
			t.Fatalf("got %v", level.Level())
		}
		logger.Info("hidden")
		logger.Warn("shown")
		if strings.Contains(buf.String(), "hidden") {
			t.Fatalf("got %s", buf.String())
		}
		if !strings.Contains(buf.String(), "shown") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestWithAttrsKeepsSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
		debugLevel,
	).Call(func(
		logger Logger,
		newSpan NewSpan,
	) {
		ctx, span := newSpan(t.Context(), "test")
		buf.Reset()
		logger.With("foo", "bar").InfoContext(ctx, "with attrs")
		if !strings.Contains(buf.String(), "logs.span="+string(span)) {
			t.Fatalf("got %s", buf.String())
		}
		if !strings.Contains(buf.String(), "foo=bar") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("logs.span"); got != "LOGS_SPAN" {
		t.Fatalf("got %s", got)
	}
	if got := toJournalKey("ip"); got != "IP" {
		t.Fatalf("got %s", got)
	}
}
