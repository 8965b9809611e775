package pipeline

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// Map applies fn to every item on a pool of workers goroutines (NumCPU when
// workers <= 0). Successful results keep the order of items. A failing or
// panicking item only affects itself.
func Map[T, R any](items []T, workers int, fn func(T) (R, error)) ([]R, []error) {
	if len(items) == 0 || fn == nil {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}
	if workers > len(items) {
		workers = len(items)
	}

	type slot struct {
		res R
		err error
	}
	slots := make([]slot, len(items))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				slots[i].res, slots[i].err = call(fn, items[i])
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	out := make([]R, 0, len(items))
	var errs []error
	for _, s := range slots {
		if s.err != nil {
			errs = append(errs, s.err)
			continue
		}
		out = append(out, s.res)
	}
	return out, errs
}

func call[T, R any](fn func(T) (R, error), item T) (res R, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Errorf("panic: %v", p)
		}
	}()
	return fn(item)
}
