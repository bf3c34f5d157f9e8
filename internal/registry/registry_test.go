package registry

import (
	"testing"

	"github.com/vovakirdan/keepercfg/internal/confparse"
)

func TestRegisterAndGet(t *testing.T) {
	Register("test_colours", "Colours", func() confparse.NamedTable {
		return confparse.NamedTable{{Name: "RED", ID: 1}, {Name: "BLUE", ID: 2}}
	})

	if !Exists("test_colours") {
		t.Fatal("Exists() = false, expected true")
	}

	tbl, err := Get("test_colours")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if tbl.ID("blue") != 2 {
		t.Errorf("ID(blue) = %d, expected 2", tbl.ID("blue"))
	}

	found := false
	for _, info := range List() {
		if info.ID == "test_colours" {
			found = true
			if info.Size != 2 || info.Title != "Colours" {
				t.Errorf("List() entry = %+v, expected size 2 and title Colours", info)
			}
		}
	}
	if !found {
		t.Error("List() is missing test_colours")
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no_such_table"); err == nil {
		t.Error("Get() on unknown table should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	src := func() confparse.NamedTable { return nil }
	Register("test_dup", "Dup", src)

	defer func() {
		if recover() == nil {
			t.Error("second Register() should panic")
		}
	}()
	Register("test_dup", "Dup", src)
}
