package errcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"unresolved_board":   UnresolvedBoard,
		"unknown_board":      UnknownBoard,
		"incompatible_board": IncompatibleBoard,
		"field_collision":    FieldCollision,
		"invalid_profile":    InvalidProfile,
		"unknown_bus":        UnknownBus,
		"unknown_pin":        UnknownPin,
		"invalid_config":     InvalidConfig,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("nil should map to ok")
	}
	if Of(UnknownBoard) != UnknownBoard {
		t.Fatal("bare code not preserved")
	}
	e := New(UnresolvedBoard, "board.Resolve", "no board selected")
	if Of(e) != UnresolvedBoard {
		t.Fatalf("wrapped code = %q", Of(e))
	}
	if Of(fmt.Errorf("loading: %w", e)) != UnresolvedBoard {
		t.Fatal("code lost through fmt.Errorf wrapping")
	}
	if Of(errors.New("boom")) != Error {
		t.Fatal("plain error should map to generic code")
	}
}

func TestEFormattingAndIs(t *testing.T) {
	cause := errors.New("open board.yaml: permission denied")
	e := Wrap(InvalidConfig, "config.Load", cause)
	if got, want := e.Error(), "config.Load: invalid_config: open board.yaml: permission denied"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(e, InvalidConfig) {
		t.Fatal("errors.Is should match the code")
	}
	if !errors.Is(e, cause) {
		t.Fatal("errors.Is should reach the cause")
	}
	if errors.Is(e, UnknownBoard) {
		t.Fatal("errors.Is matched the wrong code")
	}
}
