package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	localstore "github.com/ultraship/employeehub/storage/local"
)

func statePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "state", "state.json")
}

func TestStoreRoundTrip(t *testing.T) {
	path := statePath(t)

	store, err := localstore.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := store.Set(map[string]string{"authToken": "tok", "currentUser": `{"id":"u1"}`}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// a fresh open sees the persisted values
	reopened, err := localstore.Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	if tok, ok := reopened.Get("authToken"); !ok || tok != "tok" {
		t.Errorf("Get(authToken) = %q, %v", tok, ok)
	}
	if usr, ok := reopened.Get("currentUser"); !ok || usr != `{"id":"u1"}` {
		t.Errorf("Get(currentUser) = %q, %v", usr, ok)
	}
}

func TestStoreDelete(t *testing.T) {
	path := statePath(t)

	store, err := localstore.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	store.Set(map[string]string{"a": "1", "b": "2"})
	if err := store.Delete("a", "missing"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := store.Get("a"); ok {
		t.Error("Get(a) ok = true after delete")
	}
	if v, ok := store.Get("b"); !ok || v != "2" {
		t.Errorf("Get(b) = %q, %v; want 2", v, ok)
	}

	reopened, err := localstore.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := reopened.Get("a"); ok {
		t.Error("deleted key survived the round trip")
	}
}

func TestStoreOpenMissingAndCorrupt(t *testing.T) {
	t.Run("missing file starts empty", func(t *testing.T) {
		store, err := localstore.Open(statePath(t))
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if _, ok := store.Get("anything"); ok {
			t.Error("fresh store has keys")
		}
	})

	t.Run("corrupt file starts empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.json")
		if err := os.WriteFile(path, []byte("{corrupt"), 0o600); err != nil {
			t.Fatal(err)
		}
		store, err := localstore.Open(path)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if _, ok := store.Get("anything"); ok {
			t.Error("corrupt store has keys")
		}
	})
}
