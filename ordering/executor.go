package ordering

import (
	"sync"

	"github.com/ledgernet/ordering/pkg/logger"
)

const executorQueueDepth = 1024

// ExecutorKeeper holds one ordered task queue per peer key. Tasks submitted
// for the same key run sequentially in submission order on that key's own
// goroutine; tasks for distinct keys run independently. Queues are created on
// first submission and kept for the keeper's lifetime.
type ExecutorKeeper struct {
	logger logger.Logger

	mu     sync.Mutex
	queues map[string]chan func()
	closed bool

	done chan struct{}
	wg   sync.WaitGroup
}

func NewExecutorKeeper(log logger.Logger) *ExecutorKeeper {
	return &ExecutorKeeper{
		logger: log,
		queues: make(map[string]chan func()),
		done:   make(chan struct{}),
	}
}

// ExecuteFor enqueues task on the queue identified by peerKey, creating the
// queue if absent. ExecuteFor blocks only when that peer's queue is full;
// this is the backpressure boundary toward a slow peer. Task outcomes are the
// task's own responsibility.
func (k *ExecutorKeeper) ExecuteFor(peerKey string, task func()) {
	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		return
	}
	q, ok := k.queues[peerKey]
	if !ok {
		q = make(chan func(), executorQueueDepth)
		k.queues[peerKey] = q
		promActiveQueues.Inc()
		k.logger.Debugf("created send queue for peer %s", peerKey)
		k.wg.Add(1)
		go k.drain(q)
	}
	k.mu.Unlock()

	select {
	case q <- task:
	case <-k.done:
	}
}

func (k *ExecutorKeeper) drain(q <-chan func()) {
	defer k.wg.Done()
	for {
		select {
		case task := <-q:
			task()
		case <-k.done:
			for {
				select {
				case task := <-q:
					task()
				default:
					promActiveQueues.Dec()
					return
				}
			}
		}
	}
}

// Close stops accepting tasks, runs what is already queued and waits for the
// queue goroutines to exit.
func (k *ExecutorKeeper) Close() {
	k.mu.Lock()
	if k.closed {
		k.mu.Unlock()
		return
	}
	k.closed = true
	k.mu.Unlock()

	close(k.done)
	k.wg.Wait()
}
