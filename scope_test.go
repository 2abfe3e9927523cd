package ochre_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jaxydog/ochre"
)

// tagged is a minimal wrapped-error family used to observe wrap behavior.
type tagged struct {
	context string
	cause   error
}

func (e *tagged) Error() string { return fmt.Sprintf("tagged(%s): %v", e.context, e.cause) }
func (e *tagged) Unwrap() error { return e.cause }

func wrapTagged(context string, err error) error {
	if te, ok := err.(*tagged); ok && te.context == context {
		return err
	}
	return &tagged{context: context, cause: err}
}

func TestOwner_SingleActiveScope(t *testing.T) {
	o := ochre.NewOwner[string](wrapTagged)

	s, err := o.Open("first")
	if err != nil {
		t.Fatalf("open err: %v", err)
	}
	if _, err := o.Open("second"); !errors.Is(err, ochre.ErrScopeActive) {
		t.Fatalf("expected ErrScopeActive, got %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close err: %v", err)
	}
	// slot is free again after close
	s2, err := o.Open("second")
	if err != nil {
		t.Fatalf("reopen err: %v", err)
	}
	if err := s2.Close(); err != nil {
		t.Fatalf("close err: %v", err)
	}
}

func TestOwner_ReusableAfterFailure(t *testing.T) {
	o := ochre.NewOwner[string](wrapTagged)
	boom := errors.New("boom")

	err := o.Do("work", func(s *ochre.Scope[string]) error {
		return s.Run(func() error { return boom })
	})
	if err == nil {
		t.Fatalf("expected failure")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("cause lost: %v", err)
	}
	// the failure path must have released the slot
	if _, ok := o.Current(); ok {
		t.Fatalf("scope still active after failed Do")
	}
	if err := o.Do("again", func(s *ochre.Scope[string]) error { return nil }); err != nil {
		t.Fatalf("owner unusable after failure: %v", err)
	}
}

func TestScope_RunAfterCloseFails(t *testing.T) {
	o := ochre.NewOwner[string](wrapTagged)
	s, err := o.Open("work")
	if err != nil {
		t.Fatalf("open err: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close err: %v", err)
	}
	if err := s.Run(func() error { return nil }); !errors.Is(err, ochre.ErrScopeInactive) {
		t.Fatalf("expected ErrScopeInactive, got %v", err)
	}
	if err := s.Close(); !errors.Is(err, ochre.ErrScopeInactive) {
		t.Fatalf("double close should fail, got %v", err)
	}
}

func TestScope_StaleHandleCannotCloseNewScope(t *testing.T) {
	o := ochre.NewOwner[string](wrapTagged)
	stale, err := o.Open("old")
	if err != nil {
		t.Fatalf("open err: %v", err)
	}
	if err := stale.Close(); err != nil {
		t.Fatalf("close err: %v", err)
	}
	fresh, err := o.Open("new")
	if err != nil {
		t.Fatalf("open err: %v", err)
	}
	if err := stale.Close(); !errors.Is(err, ochre.ErrScopeInactive) {
		t.Fatalf("stale close should fail, got %v", err)
	}
	if !fresh.Active() {
		t.Fatalf("fresh scope deactivated by stale close")
	}
	if err := fresh.Close(); err != nil {
		t.Fatalf("close err: %v", err)
	}
}

func TestScope_RunRepeatsWithinOneBracket(t *testing.T) {
	o := ochre.NewOwner[string](wrapTagged)
	var calls int
	err := o.Do("batch", func(s *ochre.Scope[string]) error {
		for i := 0; i < 3; i++ {
			if err := s.Run(func() error { calls++; return nil }); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("do err: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 runs, got %d", calls)
	}
}

func TestScope_WrapDedup(t *testing.T) {
	o := ochre.NewOwner[string](wrapTagged)
	inner := &tagged{context: "work", cause: errors.New("boom")}

	err := o.Do("work", func(s *ochre.Scope[string]) error {
		return s.Run(func() error { return inner })
	})
	if err != inner {
		t.Fatalf("matching context must pass through unchanged, got %v", err)
	}

	other := &tagged{context: "elsewhere", cause: errors.New("boom")}
	err = o.Do("work", func(s *ochre.Scope[string]) error {
		return s.Run(func() error { return other })
	})
	te, ok := err.(*tagged)
	if !ok || te.context != "work" || te.cause != other {
		t.Fatalf("mismatched context must be rewrapped, got %v", err)
	}
}

func TestDo_ValueForm(t *testing.T) {
	o := ochre.NewOwner[string](wrapTagged)
	got, err := ochre.Do(o, "value", func(s *ochre.Scope[string]) (int, error) {
		return ochre.Run(s, func() (int, error) { return 42, nil })
	})
	if err != nil {
		t.Fatalf("do err: %v", err)
	}
	if got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestOwner_ConcurrentOpenContention(t *testing.T) {
	o := ochre.NewOwner[string](wrapTagged)
	const workers = 8
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			s, err := o.Open("race")
			if err == nil {
				err = s.Close()
				results <- err
				return
			}
			results <- err
		}()
	}
	var failed int
	for i := 0; i < workers; i++ {
		if err := <-results; errors.Is(err, ochre.ErrScopeActive) {
			failed++
		} else if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// at least one open must have succeeded; losers fail fast, never block
	if failed == workers {
		t.Fatalf("no open succeeded")
	}
}

func TestOwner_ContextObservation(t *testing.T) {
	o := ochre.NewOwner[string](wrapTagged)
	if _, ok := o.Context(); ok {
		t.Fatalf("no context expected before open")
	}
	err := o.Do("observed", func(s *ochre.Scope[string]) error {
		c, ok := o.Context()
		if !ok || c != "observed" {
			return fmt.Errorf("unexpected context %q (%v)", c, ok)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("do err: %v", err)
	}
	if _, ok := o.Context(); ok {
		t.Fatalf("context must clear after close")
	}
}
