package worker

import (
	"container/list"
	"sync"
)

// Pool executes submitted tasks on a fixed number of workers. The job queue
// is unbounded, so Submit never blocks the caller.
type Pool struct {
	jobQueue     *list.List
	jobQueueMut  sync.Mutex
	jobQueueCond sync.Cond

	maxWorkers int
	stopped    bool
	wg         sync.WaitGroup
}

// NewPool creates a pool with maxWorkers workers. Call Run to start them.
func NewPool(maxWorkers int) *Pool {
	p := &Pool{
		jobQueue:   list.New(),
		maxWorkers: maxWorkers,
	}
	p.jobQueueCond.L = &p.jobQueueMut
	return p
}

// Run starts the workers.
func (p *Pool) Run() {
	for i := 0; i < p.maxWorkers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()
	for {
		p.jobQueueMut.Lock()
		elem := p.jobQueue.Front()
		for elem == nil {
			if p.stopped {
				p.jobQueueMut.Unlock()
				return
			}
			p.jobQueueCond.Wait()
			elem = p.jobQueue.Front()
		}
		p.jobQueue.Remove(elem)
		p.jobQueueMut.Unlock()

		elem.Value.(func())()
	}
}

// Submit enqueues task for execution. Tasks submitted after Stop are dropped.
func (p *Pool) Submit(task func()) {
	p.jobQueueMut.Lock()
	if !p.stopped {
		p.jobQueue.PushBack(task)
		p.jobQueueCond.Signal()
	}
	p.jobQueueMut.Unlock()
}

// Stop lets queued tasks drain and waits for the workers to exit.
func (p *Pool) Stop() {
	p.jobQueueMut.Lock()
	p.stopped = true
	p.jobQueueCond.Broadcast()
	p.jobQueueMut.Unlock()
	p.wg.Wait()
}
