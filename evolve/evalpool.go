package evolve

import (
	"sync"
)

// evalPool fans a generation's fitness evaluations out across a fixed number
// of goroutines and blocks until every submitted individual has been scored.
type evalPool struct {
	lanes    int
	jobs     chan func()
	laneWg   sync.WaitGroup // tracks the lane goroutines' lifetime
	submitWg sync.WaitGroup // tracks outstanding evaluation jobs
}

// newEvalPool starts lanes goroutines pulling from a job queue buffered to
// bufferSize.
func newEvalPool(lanes, bufferSize int) *evalPool {
	p := &evalPool{
		lanes: lanes,
		jobs:  make(chan func(), bufferSize),
	}

	for range lanes {
		p.laneWg.Add(1)
		go func() {
			defer p.laneWg.Done()
			for job := range p.jobs {
				job()
				p.submitWg.Done()
			}
		}()
	}

	return p
}

// submit queues one individual's evaluation. Blocks if the job queue is full.
func (p *evalPool) submit(job func()) {
	p.submitWg.Add(1)
	p.jobs <- job
}

// wait blocks until every submitted evaluation has completed.
func (p *evalPool) wait() {
	p.submitWg.Wait()
}

// close drains the job queue and waits for all lanes to exit.
func (p *evalPool) close() {
	close(p.jobs)
	p.laneWg.Wait()
}
