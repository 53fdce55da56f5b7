package worker

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsAllTasks(t *testing.T) {
	count := 100
	p := NewPool(4)
	p.Run()

	var done int32
	var wg sync.WaitGroup
	wg.Add(count)
	for i := 0; i < count; i++ {
		p.Submit(func() {
			atomic.AddInt32(&done, 1)
			wg.Done()
		})
	}
	wg.Wait()
	p.Stop()

	if got := atomic.LoadInt32(&done); got != int32(count) {
		t.Fatalf("expected %d tasks to run, got %d", count, got)
	}
}

func TestPoolSubmitDoesNotBlock(t *testing.T) {
	p := NewPool(1)
	p.Run()
	defer p.Stop()

	release := make(chan struct{})
	p.Submit(func() { <-release })

	// The single worker is busy; further submissions must still return.
	doneC := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			p.Submit(func() {})
		}
		close(doneC)
	}()

	select {
	case <-doneC:
	case <-time.After(5 * time.Second):
		t.Fatal("Submit blocked while worker was busy")
	}
	close(release)
}

func TestPoolStopDrainsQueue(t *testing.T) {
	p := NewPool(2)
	p.Run()

	var done int32
	for i := 0; i < 50; i++ {
		p.Submit(func() { atomic.AddInt32(&done, 1) })
	}
	p.Stop()

	if got := atomic.LoadInt32(&done); got != 50 {
		t.Fatalf("expected queued tasks to drain on Stop, ran %d of 50", got)
	}
}
