package worker

import (
	"github.com/alitto/pond"
	"github.com/rs/zerolog/log"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool creates a pond-backed pool with n workers. n<=0 defaults to 1.
// Panics inside a task are logged and do not kill the worker.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	return &pool{
		wp: pond.New(n, 0, pond.PanicHandler(func(p interface{}) {
			log.Logger.Error().Interface("panic", p).Msg("worker task panicked")
		})),
	}
}

type pool struct {
	wp *pond.WorkerPool
}

// Submit 在 pool 已停止後提交的 task 會被丟棄
func (p *pool) Submit(t Task) {
	if t == nil {
		return
	}
	if p.wp.Stopped() {
		log.Logger.Warn().Msg("worker pool stopped, task dropped")
		return
	}
	p.wp.Submit(t)
}

// Stop waits for queued tasks to finish.
func (p *pool) Stop() {
	p.wp.StopAndWait()
}
