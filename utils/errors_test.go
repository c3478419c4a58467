package utils

import (
	"testing"

	"github.com/pkg/errors"
)

func TestKindOfThroughWrapping(t *testing.T) {
	err := errors.Wrap(NewFatalError(KindOpen, "could not open input file", "no such file"), "[run]")

	if kind := KindOf(err); kind != KindOpen {
		t.Fatalf("kind %v, expected %v", kind, KindOpen)
	}
	if KindOf(errors.New("plain")) != KindUnknown {
		t.Fatal("plain error should have unknown kind")
	}
}

func TestFatalErrorMessage(t *testing.T) {
	err := NewFatalError(KindMalformed, "input x-coord out of range", "line %d: x=%d", 2, 5)
	if want := "input x-coord out of range: line 2: x=5"; err.Error() != want {
		t.Fatalf("got %q, expected %q", err.Error(), want)
	}

	bare := &FatalError{Kind: KindUsage, Check: "usage"}
	if bare.Error() != "usage" {
		t.Fatalf("got %q", bare.Error())
	}
}
