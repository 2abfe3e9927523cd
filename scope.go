package ochre

import (
	"errors"
	"sync"

	"go.uber.org/multierr"
)

// Scope misuse is a programming error, not an expected runtime condition.
// Callers should treat these as bugs rather than recoverable failures.
var (
	// ErrScopeActive is returned by Open while another scope is open on the
	// same owner. Contention is surfaced immediately; opening never blocks.
	ErrScopeActive = errors.New("a scope is already active")
	// ErrScopeInactive is returned by Run and Close when the scope is not its
	// owner's currently active scope.
	ErrScopeInactive = errors.New("scope is not active")
)

// WrapFunc builds the owning family's error from a scope context and an
// underlying cause. Implementations must return err unchanged when it already
// carries an equal context, so an error propagating through nested scopes is
// tagged exactly once per distinct context.
type WrapFunc[C comparable] func(context C, err error) error

// Owner holds the active-scope slot for a scoped instance. At most one Scope
// may be open on an Owner at any time; a second Open fails immediately with
// ErrScopeActive, even re-entrantly from the same goroutine. Safe concurrent
// use of a single instance therefore requires external serialization, or a
// distinct instance per concurrent call path.
type Owner[C comparable] struct {
	mu      sync.Mutex
	current *Scope[C]
	wrap    WrapFunc[C]
}

// NewOwner returns an Owner whose scopes wrap failures through wrap. A nil
// wrap leaves failures untouched.
func NewOwner[C comparable](wrap WrapFunc[C]) *Owner[C] {
	return &Owner[C]{wrap: wrap}
}

// Current returns the active scope, if one is open.
func (o *Owner[C]) Current() (*Scope[C], bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current, o.current != nil
}

// Context returns the active scope's context, if one is open.
func (o *Owner[C]) Context() (C, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.current == nil {
		var zero C
		return zero, false
	}
	return o.current.context, true
}

// Open installs a fresh scope as the owner's active scope. Scopes are only
// ever created here, so a closed scope can never become active again.
func (o *Owner[C]) Open(context C) (*Scope[C], error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.current != nil {
		return nil, ErrScopeActive
	}
	s := &Scope[C]{owner: o, context: context}
	o.current = s
	return s, nil
}

// Do brackets work in a scope: open, run, then close on every exit path,
// including failure. Work may call Run on the scope any number of times. A
// close failure is combined with the work error.
func (o *Owner[C]) Do(context C, work func(*Scope[C]) error) (err error) {
	s, oerr := o.Open(context)
	if oerr != nil {
		return oerr
	}
	defer func() {
		err = multierr.Append(err, s.Close())
	}()
	return work(s)
}

// Do is the value-producing form of Owner.Do.
func Do[C comparable, T any](o *Owner[C], context C, work func(*Scope[C]) (T, error)) (T, error) {
	var value T
	err := o.Do(context, func(s *Scope[C]) error {
		v, werr := work(s)
		if werr != nil {
			return werr
		}
		value = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// Scope is a one-shot execution guard bound to an owner and a context. It is
// created open by Owner.Open and stays usable until Close releases the
// owner's slot.
type Scope[C comparable] struct {
	owner   *Owner[C]
	context C
}

// Context returns the context this scope was opened with. The value remains
// readable after the scope closes, for example on a wrapped error.
func (s *Scope[C]) Context() C { return s.context }

// Active reports whether this scope is its owner's current scope.
func (s *Scope[C]) Active() bool {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	return s.owner.current == s
}

// Run invokes work inside the scope, wrapping any failure through the owner's
// wrap function. It may be called repeatedly while the scope stays open, and
// fails with ErrScopeInactive once the scope has closed.
func (s *Scope[C]) Run(work func() error) error {
	if !s.Active() {
		return ErrScopeInactive
	}
	if err := work(); err != nil {
		return s.wrapErr(err)
	}
	return nil
}

// Run is the value-producing form of Scope.Run.
func Run[C comparable, T any](s *Scope[C], work func() (T, error)) (T, error) {
	var zero T
	if !s.Active() {
		return zero, ErrScopeInactive
	}
	value, err := work()
	if err != nil {
		return zero, s.wrapErr(err)
	}
	return value, nil
}

// Close releases the owner's active-scope slot. Only the currently active
// scope may be closed.
func (s *Scope[C]) Close() error {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	if s.owner.current != s {
		return ErrScopeInactive
	}
	s.owner.current = nil
	return nil
}

func (s *Scope[C]) wrapErr(err error) error {
	if s.owner.wrap == nil {
		return err
	}
	return s.owner.wrap(s.context, err)
}
