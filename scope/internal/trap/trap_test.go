package trap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/on-the-ground/scope_ive_go/scope/internal/trap"
)

func recovered(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = trap.Recovered(r)
		}
	}()
	fn()
	return nil
}

func TestRecovered_PlainValue(t *testing.T) {
	err := recovered(func() { panic("boom") })
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected panic value in message, got %q", err.Error())
	}

	var pe *trap.PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *trap.PanicError, got %T", err)
	}
	if len(pe.Stack) == 0 {
		t.Fatal("expected a captured stack")
	}
}

func TestRecovered_ErrorValueUnwraps(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := recovered(func() { panic(sentinel) })

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected errors.Is to reach the panic value, got %v", err)
	}
}

func TestRecovered_NonErrorValueDoesNotUnwrap(t *testing.T) {
	err := recovered(func() { panic(42) })

	var pe *trap.PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *trap.PanicError, got %T", err)
	}
	if pe.Unwrap() != nil {
		t.Fatalf("expected no wrapped error, got %v", pe.Unwrap())
	}
}
