package app

import (
	"testing"

	"github.com/shuldan/appcore/pkg/errors"
)

func clearSlot(t *testing.T) {
	t.Helper()
	SetCurrent(nil)
	t.Cleanup(func() { SetCurrent(nil) })
}

func TestCurrentStartsNil(t *testing.T) {
	clearSlot(t)

	if Current() != nil {
		t.Error("slot should be nil before the first install")
	}
}

func TestEnsureInstallsWhenEmpty(t *testing.T) {
	clearSlot(t)

	candidate, _ := New(&fakeCache{})
	got := Ensure(candidate, false)

	if got != candidate {
		t.Error("Ensure should install the candidate into the empty slot")
	}
	if Current() != candidate {
		t.Error("slot should hold the installed candidate")
	}
}

func TestEnsureKeepsExisting(t *testing.T) {
	clearSlot(t)

	original, _ := New(&fakeCache{})
	Ensure(original, false)

	discarded, _ := New(&fakeCache{})
	got := Ensure(discarded, false)

	if got != original {
		t.Error("Ensure without replace should return the original instance")
	}
	if Current() != original {
		t.Error("slot should still hold the original instance")
	}
}

func TestEnsureReplace(t *testing.T) {
	clearSlot(t)

	original, _ := New(&fakeCache{})
	Ensure(original, false)

	replacement, _ := New(&fakeCache{})
	got := Ensure(replacement, true)

	if got != replacement {
		t.Error("Ensure with replace should return the replacement")
	}
	if Current() != replacement {
		t.Error("slot should hold the replacement")
	}
}

func TestEnsureRepeatedReplaceKeepsLatest(t *testing.T) {
	clearSlot(t)

	var latest, got any
	for i := 0; i < 3; i++ {
		candidate, _ := New(&fakeCache{})
		latest = candidate
		got = Ensure(candidate, true)
	}

	if got != latest || Current() != latest {
		t.Error("repeated replace should always keep the most recent candidate")
	}
}

func TestEnsurePopulated(t *testing.T) {
	clearSlot(t)

	ctx, err := EnsurePopulated(&fakeDatabase{}, fakeServices{}, &fakeCache{}, false)
	if err != nil {
		t.Fatalf("EnsurePopulated failed: %v", err)
	}
	if Current() != ctx {
		t.Error("constructed context should be installed")
	}

	if _, err := EnsurePopulated(nil, fakeServices{}, &fakeCache{}, true); !errors.Is(err, ErrNilDatabase) {
		t.Errorf("expected ErrNilDatabase, got %v", err)
	}
	if Current() != ctx {
		t.Error("failed construction must not disturb the slot")
	}
}

func TestSetCurrent(t *testing.T) {
	clearSlot(t)

	ctx, _ := New(&fakeCache{})
	SetCurrent(ctx)

	if Current() != ctx {
		t.Error("SetCurrent should install directly")
	}
}
