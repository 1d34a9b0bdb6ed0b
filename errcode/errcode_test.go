package errcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":               OK,
		"not_found":        NotFound,
		"not_a_pin":        NotAPin,
		"invalid_name":     InvalidName,
		"duplicate_name":   DuplicateName,
		"unknown_pin":      UnknownPin,
		"forward_ref":      ForwardRef,
		"invalid_bus":      InvalidBus,
		"bus_pin_mismatch": BusPinMismatch,
		"unknown_bus":      UnknownBus,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if got := Of(nil); got != OK {
		t.Fatalf("Of(nil)=%q", got)
	}
	if got := Of(NotFound); got != NotFound {
		t.Fatalf("Of(code)=%q", got)
	}
	wrapped := fmt.Errorf("outer: %w", New(DuplicateName, "build", "LCD_CS"))
	if got := Of(wrapped); got != Error {
		// Of does not unwrap; only direct coders are recognised.
		t.Fatalf("Of(wrapped)=%q", got)
	}
	if got := Of(New(ForwardRef, "build", "")); got != ForwardRef {
		t.Fatalf("Of(*E)=%q", got)
	}
	if got := Of(errors.New("boom")); got != Error {
		t.Fatalf("Of(plain)=%q", got)
	}
}

func TestEMatchesCodeThroughWrapping(t *testing.T) {
	cause := errors.New("cause")
	e := &E{C: UnknownPin, Op: "build", Msg: "GPIO40", Err: cause}
	err := fmt.Errorf("board: %w", e)

	if !errors.Is(err, UnknownPin) {
		t.Fatal("errors.Is should match the code")
	}
	if errors.Is(err, NotFound) {
		t.Fatal("errors.Is matched the wrong code")
	}
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is should reach the cause")
	}
	var got *E
	if !errors.As(err, &got) || got.Code() != UnknownPin {
		t.Fatalf("errors.As failed: %#v", got)
	}
	if e.Error() != "build: unknown_pin: GPIO40" {
		t.Fatalf("Error()=%q", e.Error())
	}
}
