// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package internal

import "testing"

func TestRaiseRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err)
		Raise(IoError, "boom %d", 42)
		return nil
	}
	err := fn()
	if err == nil {
		t.Fatal("want non-nil error")
	}
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("got %T, want *Error", err)
	}
	if e.Kind != IoError {
		t.Errorf("Kind = %v, want IoError", e.Kind)
	}
	if e.Error() == "" {
		t.Error("Error() returned empty string")
	}
}

func TestAssertPasses(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err)
		Assert(true, IoError, "unreachable")
		return nil
	}
	if err := fn(); err != nil {
		t.Fatalf("want nil, got %v", err)
	}
}

func TestAssertFails(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err)
		Assert(false, InvalidArgument, "bad %s", "input")
		return nil
	}
	err := fn()
	if err == nil {
		t.Fatal("want non-nil error")
	}
	if err.(*Error).Kind != InvalidArgument {
		t.Errorf("Kind = %v, want InvalidArgument", err.(*Error).Kind)
	}
}
