package core

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Scheduler runs background tasks one at a time. It is meant for work that
// follows bring-up; bring-up itself never uses it.
type Scheduler struct {
	group *errgroup.Group
	ctx   context.Context
}

func NewScheduler(ctx context.Context) *Scheduler {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(1)
	return &Scheduler{group: g, ctx: ctx}
}

// Go queues fn. It blocks while another task is running.
// fn receives a context cancelled after the first task error.
func (s *Scheduler) Go(fn func(ctx context.Context) error) {
	s.group.Go(func() error {
		return fn(s.ctx)
	})
}

// Wait blocks until every queued task has returned and reports the first error.
func (s *Scheduler) Wait() error {
	return s.group.Wait()
}
