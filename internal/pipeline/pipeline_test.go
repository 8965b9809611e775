package pipeline

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestMap(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	var called int32
	out, errs := Map(items, 2, func(i int) (int, error) {
		atomic.AddInt32(&called, 1)
		if i == 1 {
			return 0, errors.New("test error")
		}
		if i == 3 {
			panic("boom")
		}
		return i * 10, nil
	})

	if called != int32(len(items)) {
		t.Fatalf("expected %d calls, got %d", len(items), called)
	}
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	want := []int{0, 20, 40}
	if len(out) != len(want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, out)
		}
	}
}

func TestMapEmpty(t *testing.T) {
	out, errs := Map(nil, 0, func(s string) (string, error) { return s, nil })
	if out != nil || errs != nil {
		t.Fatalf("expected nothing, got %v %v", out, errs)
	}
}
