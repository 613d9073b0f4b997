package errors

import (
	"fmt"
	"testing"
)

func TestRegisterRejectsDuplicateCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(2, "duplicate of unauthorized")
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind *Error
		err  error
		want bool
	}{
		"instance of the same root error": {
			kind: ErrNotFound,
			err:  ErrNotFound,
			want: true,
		},
		"wrapped instance": {
			kind: ErrNotFound,
			err:  Wrap(ErrNotFound, "gone"),
			want: true,
		},
		"deeply wrapped instance": {
			kind: ErrNotFound,
			err:  Wrap(Wrap(ErrNotFound, "gone"), "cannot load"),
			want: true,
		},
		"different root error": {
			kind: ErrNotFound,
			err:  ErrState,
			want: false,
		},
		"wrapped different root error": {
			kind: ErrNotFound,
			err:  Wrap(ErrState, "gone"),
			want: false,
		},
		"stdlib error": {
			kind: ErrNotFound,
			err:  fmt.Errorf("gone"),
			want: false,
		},
		"nil kind matches nil error": {
			kind: nil,
			err:  nil,
			want: true,
		},
		"nil kind does not match an error": {
			kind: nil,
			err:  ErrState,
			want: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestWrapNilIsNil(t *testing.T) {
	if err := Wrap(nil, "description"); err != nil {
		t.Fatalf("want nil, got %+v", err)
	}
}

func TestWrappedErrorMessage(t *testing.T) {
	err := Wrap(ErrNotFound, "cannot load")
	if got, want := err.Error(), "cannot load: not found"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestWrappedErrorCode(t *testing.T) {
	err := Wrap(ErrNotFound, "cannot load")
	c, ok := err.(coder)
	if !ok {
		t.Fatal("wrapped error must expose a code")
	}
	if got, want := c.Code(), ErrNotFound.Code(); got != want {
		t.Fatalf("want code %d, got %d", want, got)
	}

	// Errors without a known category are reported as internal.
	internal := Wrap(fmt.Errorf("std"), "cannot load")
	if got := internal.(coder).Code(); got != 1 {
		t.Fatalf("want code 1, got %d", got)
	}
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("the unexpected")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want a panic error, got %+v", err)
	}
}
