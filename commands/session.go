package commands

import (
	"context"
	"log/slog"
	"slices"
)

// ProgressFunc is invoked after each completed folder with the number of
// folders completed so far and the total the session started with.
type ProgressFunc func(completed, total int)

// Result reports the outcome of a session run. Remaining lists the folders
// not transferred, in order, with the folder that paused the run first.
// PausedReason is nil when the whole queue completed.
type Result struct {
	Completed    []string
	Remaining    []string
	PausedReason error
}

// Session owns an ordered queue of folder paths and drives them through the
// engine one at a time. Folders are never reordered or processed in
// parallel: a quota rejection affecting one folder would affect every other
// folder in the same run, so the first fatal error halts everything.
type Session struct {
	engine    *Engine
	queue     []string
	completed []string
	total     int
}

// NewSession creates a session over the given folders, processed in order.
func NewSession(engine *Engine, folders []string) *Session {
	return &Session{
		engine: engine,
		queue:  slices.Clone(folders),
		total:  len(folders),
	}
}

// Remaining returns the folders still queued, head first.
func (s *Session) Remaining() []string {
	return slices.Clone(s.queue)
}

// Run processes the queue strictly head-first. A folder is removed from the
// queue only after the engine fully handled it; on a fatal error the run
// stops with that folder still at the head, so a later run resumes with it.
func (s *Session) Run(ctx context.Context, progress ProgressFunc) Result {
	for len(s.queue) > 0 {
		head := s.queue[0]
		if err := s.engine.ProcessFolder(ctx, head); err != nil {
			logger.Error("Stopping transfer run, progress saved",
				slog.String("folder", head),
				slog.Int("remaining", len(s.queue)),
				slog.String("error", err.Error()))
			return Result{
				Completed:    slices.Clone(s.completed),
				Remaining:    slices.Clone(s.queue),
				PausedReason: err,
			}
		}
		s.queue = s.queue[1:]
		s.completed = append(s.completed, head)
		if progress != nil {
			progress(len(s.completed), s.total)
		}
	}
	return Result{
		Completed: slices.Clone(s.completed),
		Remaining: slices.Clone(s.queue),
	}
}
