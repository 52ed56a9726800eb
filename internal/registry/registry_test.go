package registry

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct {
	id string
}

func (s *stubGame) ID() string                           { return s.id }
func (s *stubGame) Title() string                        { return strings.ToUpper(s.id) }
func (s *stubGame) Reset(core.RuntimeConfig)             {}
func (s *stubGame) Restart()                             {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) TickInterval() time.Duration          { return time.Second }
func (s *stubGame) Resize(int, int)                      {}
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) State() core.GameState                { return core.GameState{} }

func stub(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", stub("zz_stub_b"))
	Register("zz_stub_a", stub("zz_stub_a"))

	if !Exists("zz_stub_a") {
		t.Fatal("zz_stub_a should exist")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("ID() = %q, expected zz_stub_b", g.ID())
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "zz_stub_a":
			ia = i
			if list[i].Title != "ZZ_STUB_A" {
				t.Errorf("Title = %q, expected ZZ_STUB_A", list[i].Title)
			}
		case "zz_stub_b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() not sorted by ID: %v", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}
	if Exists("no_such_game") {
		t.Error("Exists() should be false for unknown IDs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_stub_dup", stub("zz_stub_dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_stub_dup", stub("zz_stub_dup"))
}

type describedGame struct {
	stubGame
}

func (d *describedGame) Description() string { return "has a summary" }

func TestListIncludesDescription(t *testing.T) {
	Register("zz_stub_described", func() Game { return &describedGame{stubGame{id: "zz_stub_described"}} })

	for _, info := range List() {
		if info.ID == "zz_stub_described" {
			if info.Description != "has a summary" {
				t.Errorf("Description = %q, expected summary", info.Description)
			}
			return
		}
	}
	t.Error("described game not listed")
}
