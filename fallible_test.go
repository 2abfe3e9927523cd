package ochre_test

import (
	"errors"
	"testing"

	"github.com/jaxydog/ochre"
)

func TestMust_ReturnsValue(t *testing.T) {
	if got := ochre.Must(7, nil); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestMust_PanicsWithUnrecoverable(t *testing.T) {
	boom := errors.New("boom")
	defer func() {
		r := recover()
		ue, ok := r.(*ochre.UnrecoverableError)
		if !ok {
			t.Fatalf("expected *UnrecoverableError, got %v", r)
		}
		if !errors.Is(ue, boom) {
			t.Fatalf("cause lost: %v", ue)
		}
	}()
	ochre.Must(0, boom)
}

func TestMustDo_PanicsOnFailure(t *testing.T) {
	ochre.MustDo(func() error { return nil })

	defer func() {
		if _, ok := recover().(*ochre.UnrecoverableError); !ok {
			t.Fatalf("expected *UnrecoverableError panic")
		}
	}()
	ochre.MustDo(func() error { return errors.New("boom") })
}

func TestUnrecoverable_Message(t *testing.T) {
	e := ochre.Unrecoverable("registry lookup", errors.New("missing entry"))
	if e.Error() != "registry lookup: missing entry" {
		t.Fatalf("unexpected message: %q", e.Error())
	}
}
