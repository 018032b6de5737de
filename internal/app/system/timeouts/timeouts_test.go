package timeouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/jewelcrm/internal/app/system/timeouts"
)

func TestConfigure_IgnoresZero(t *testing.T) {
	t.Cleanup(timeouts.Reset)

	timeouts.Configure(timeouts.Config{Fetch: 3 * time.Second})

	if got := timeouts.Fetch(); got != 3*time.Second {
		t.Errorf("Fetch: got %v, want 3s", got)
	}
	if got := timeouts.Write(); got != timeouts.DefaultWrite {
		t.Errorf("Write: got %v, want default %v", got, timeouts.DefaultWrite)
	}
}

func TestReset(t *testing.T) {
	timeouts.Configure(timeouts.Config{Ping: time.Minute, Export: time.Hour})
	timeouts.Reset()

	want := timeouts.Config{
		Ping:   timeouts.DefaultPing,
		Write:  timeouts.DefaultWrite,
		Fetch:  timeouts.DefaultFetch,
		Export: timeouts.DefaultExport,
	}
	if got := timeouts.Current(); got != want {
		t.Errorf("Current after Reset: got %+v, want %+v", got, want)
	}
}

func TestWithFetch_SetsDeadline(t *testing.T) {
	ctx, cancel := timeouts.WithFetch(context.Background())
	defer cancel()

	dl, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected a deadline")
	}
	if time.Until(dl) > timeouts.Fetch() {
		t.Errorf("deadline too far in the future: %v", time.Until(dl))
	}
}
