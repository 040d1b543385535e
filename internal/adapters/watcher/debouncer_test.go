package watcher_test

import (
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/varcss/internal/adapters/watcher"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls atomic.Int32
		d := watcher.NewDebouncer(100*time.Millisecond, func() { calls.Add(1) })

		d.Trigger()
		time.Sleep(50 * time.Millisecond)
		d.Trigger()
		time.Sleep(50 * time.Millisecond)
		d.Trigger()

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls atomic.Int32
		d := watcher.NewDebouncer(100*time.Millisecond, func() { calls.Add(1) })

		d.Trigger()
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		d.Trigger()
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, int32(2), calls.Load())
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls atomic.Int32
		d := watcher.NewDebouncer(100*time.Millisecond, func() { calls.Add(1) })

		d.Trigger()
		d.Stop()
		time.Sleep(200 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, int32(0), calls.Load(), "pending trigger dropped")

		d.Trigger()
		time.Sleep(200 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, int32(0), calls.Load(), "trigger after stop ignored")

		d.Stop()
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Trigger()
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
		d.Stop()
	})
}
