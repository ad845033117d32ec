package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunOnceExecutesEveryJob(t *testing.T) {
	s := NewScheduler()

	var a, b atomic.Int32
	s.AddJob(Job{Name: "a", Interval: time.Hour, Fn: func(ctx context.Context) error {
		a.Add(1)
		return nil
	}})
	s.AddJob(Job{Name: "b", Interval: time.Hour, Fn: func(ctx context.Context) error {
		b.Add(1)
		return errors.New("boom")
	}})

	s.RunOnce(context.Background())
	s.RunOnce(context.Background())

	assert.Equal(t, int32(2), a.Load())
	assert.Equal(t, int32(2), b.Load())
}

func TestRunOnStart(t *testing.T) {
	s := NewScheduler()

	var ran atomic.Int32
	s.AddJob(Job{Name: "startup", Interval: time.Hour, RunOnStart: true, Fn: func(ctx context.Context) error {
		ran.Add(1)
		return nil
	}})
	s.AddJob(Job{Name: "ticker-only", Interval: time.Hour, Fn: func(ctx context.Context) error {
		ran.Add(100)
		return nil
	}})

	s.Start()
	s.Stop()

	assert.Equal(t, int32(1), ran.Load())
}

func TestStopIsIdempotent(t *testing.T) {
	s := NewScheduler()
	s.AddJob(Job{Name: "noop", Interval: time.Hour, Fn: func(ctx context.Context) error {
		return nil
	}})

	s.Start()
	s.Stop()
	s.Stop()
}
