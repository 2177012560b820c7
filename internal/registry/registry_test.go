package registry

import (
	"context"
	"errors"
	"testing"
)

type stubFrontend struct {
	name string
	runs *int
}

func (s stubFrontend) Name() string  { return s.name }
func (s stubFrontend) Title() string { return "Stub " + s.name }

func (s stubFrontend) Run(context.Context, Options) error {
	*s.runs++
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	runs := 0
	Register("stub-a", func() Frontend { return stubFrontend{name: "stub-a", runs: &runs} })
	Register("stub-b", func() Frontend { return stubFrontend{name: "stub-b", runs: &runs} })

	if !Exists("stub-a") || !Exists("stub-b") {
		t.Fatal("registered frontends not found")
	}

	f, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if f.Name() != "stub-a" {
		t.Errorf("Name = %q, expected stub-a", f.Name())
	}
	if err := f.Run(context.Background(), Options{}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if runs != 1 {
		t.Errorf("runs = %d, expected 1", runs)
	}

	var names []string
	for _, info := range List() {
		names = append(names, info.Name)
	}
	ia, ib := indexOf(names, "stub-a"), indexOf(names, "stub-b")
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List = %v, expected sorted names including stubs", names)
	}
}

func TestListIncludesTitle(t *testing.T) {
	runs := 0
	Register("stub-title", func() Frontend { return stubFrontend{name: "stub-title", runs: &runs} })

	for _, info := range List() {
		if info.Name == "stub-title" {
			if info.Title != "Stub stub-title" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub stub-title")
			}
			return
		}
	}
	t.Error("stub-title missing from List")
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-frontend")
	if !errors.Is(err, ErrUnknownFrontend) {
		t.Errorf("err = %v, expected ErrUnknownFrontend", err)
	}
	if Exists("no-such-frontend") {
		t.Error("Exists reported an unregistered frontend")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	runs := 0
	f := func() Frontend { return stubFrontend{name: "stub-dup", runs: &runs} }
	Register("stub-dup", f)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", f)
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
