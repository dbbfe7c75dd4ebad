package dataview

import (
	"context"
	"sync"
	"time"
)

// Animator advances a purely cosmetic effect by one frame. Step is called
// from the view's ticker goroutine and must guard its own state.
type Animator interface {
	Step(frame uint64)
}

// AnimatorFunc adapts a function to Animator.
type AnimatorFunc func(frame uint64)

func (f AnimatorFunc) Step(frame uint64) { f(frame) }

type animation struct {
	every time.Duration
	a     Animator
}

// run ticks until ctx is done. It never outlives the mount that started it.
func (an animation) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()
	if an.every <= 0 {
		return
	}
	ticker := time.NewTicker(an.every)
	defer ticker.Stop()
	var frame uint64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			frame++
			an.a.Step(frame)
		}
	}
}
