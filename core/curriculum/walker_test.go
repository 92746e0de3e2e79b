package curriculum

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testModule() ModuleRecord {
	return ModuleRecord{
		ID:    "foundations",
		Title: "Foundations",
		Units: []UnitRecord{
			{
				ID:    "u1",
				Title: "Seasonal Round",
				Lessons: []LessonRecord{
					{ID: "l1", Title: "Fishing", Fields: Record{
						"steps": []interface{}{"Scout the river", "Set the weir"},
					}},
					{ID: "l2", Title: "Hunting", Fields: Record{
						"animals": []interface{}{
							map[string]interface{}{"animal": "Deer", "method": "Stalking"},
						},
					}},
				},
			},
			{
				ID:    "u2",
				Title: "Language",
				Lessons: []LessonRecord{
					{ID: "l3", Title: "Numbers", Fields: Record{
						"numbers": []interface{}{
							map[string]interface{}{"number": 1, "secwepemc": "nek̓u7"},
						},
					}},
				},
			},
		},
	}
}

func TestWalkModuleLazy(t *testing.T) {
	mod := testModule()

	var state ExpansionState
	state.ToggleUnit("u1")
	state.ToggleLesson("l2")

	view := WalkModule(mod, state)
	if len(view.Units) != 2 {
		t.Fatalf("units = %d, want 2", len(view.Units))
	}

	u1, u2 := view.Units[0], view.Units[1]
	if !u1.Expanded || u2.Expanded {
		t.Errorf("expanded = (%v, %v), want (true, false)", u1.Expanded, u2.Expanded)
	}
	if u2.Lessons != nil {
		t.Errorf("collapsed unit materialized %d lessons", len(u2.Lessons))
	}
	if len(u1.Lessons) != 2 {
		t.Fatalf("expanded unit lessons = %d, want 2", len(u1.Lessons))
	}
	if u1.Lessons[0].Blocks != nil {
		t.Errorf("collapsed lesson materialized blocks")
	}
	if u1.Lessons[1].Blocks == nil {
		t.Errorf("expanded lesson has no blocks")
	}
}

// Laziness is a performance property, not a correctness one: whatever the
// lazy walk materializes must match the eager walk exactly.
func TestWalkModuleLazyMatchesEager(t *testing.T) {
	mod := testModule()
	eager := WalkModuleEager(mod)

	for _, unit := range mod.Units {
		var state ExpansionState
		state.ToggleUnit(unit.ID)
		for _, lesson := range unit.Lessons {
			state.LessonID = lesson.ID
			lazy := WalkModule(mod, state)
			lazyBlocks := findLessonBlocks(t, lazy, unit.ID, lesson.ID)
			eagerBlocks := findLessonBlocks(t, eager, unit.ID, lesson.ID)
			if diff := cmp.Diff(eagerBlocks, lazyBlocks); diff != "" {
				t.Errorf("%s/%s: lazy blocks diverge from eager (-eager +lazy):\n%s", unit.ID, lesson.ID, diff)
			}
		}
	}
}

func TestWalkModulePreservesOrder(t *testing.T) {
	mod := testModule()
	view := WalkModuleEager(mod)
	for i, unit := range mod.Units {
		if view.Units[i].Unit.ID != unit.ID {
			t.Errorf("unit[%d] = %s, want %s", i, view.Units[i].Unit.ID, unit.ID)
		}
		for j, lesson := range unit.Lessons {
			if view.Units[i].Lessons[j].ID != lesson.ID {
				t.Errorf("unit[%d].lesson[%d] = %s, want %s", i, j, view.Units[i].Lessons[j].ID, lesson.ID)
			}
		}
	}
}

func findLessonBlocks(t *testing.T, view ModuleView, unitID, lessonID string) []Block {
	t.Helper()
	for _, u := range view.Units {
		if u.Unit.ID != unitID {
			continue
		}
		for _, l := range u.Lessons {
			if l.ID == lessonID {
				return l.Blocks
			}
		}
	}
	t.Fatalf("lesson %s/%s not found in view", unitID, lessonID)
	return nil
}
