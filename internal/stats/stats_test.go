package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/keyhunt71/puzzle71/internal/scanner"
)

func TestRunEmitsAtLeastOneLineWithinTwoIntervals(t *testing.T) {
	shared := scanner.NewShared()
	shared.TotalKeys.Add(1_000_000)

	var buf bytes.Buffer
	sampler := NewSampler(shared, 20*time.Millisecond, &buf, time.Now())

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		sampler.Run(stop)
		close(done)
	}()

	time.Sleep(60 * time.Millisecond)
	close(stop)
	<-done

	out := buf.String()
	if !strings.Contains(out, "Checked: 1000000") {
		t.Fatalf("expected a progress line mentioning the total, got: %q", out)
	}
	if !strings.Contains(out, "Avg:") || !strings.Contains(out, "Now:") {
		t.Fatalf("expected both Avg and Now fields, got: %q", out)
	}
}

func TestMegaKeysPerSecHandlesZeroElapsed(t *testing.T) {
	if got := megaKeysPerSec(1000, 0); got != 0 {
		t.Fatalf("megaKeysPerSec with zero elapsed = %v, want 0", got)
	}
}

func TestRunStopsPromptlyWhenStopClosed(t *testing.T) {
	shared := scanner.NewShared()
	var buf bytes.Buffer
	sampler := NewSampler(shared, time.Hour, &buf, time.Now())

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		sampler.Run(stop)
		close(done)
	}()

	close(stop)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return promptly after stop was closed")
	}
}
