package curriculum

type (
	// LessonView is one lesson entry of a unit view. Blocks is only
	// materialized for the expanded lesson (or for every lesson in an eager
	// walk); a collapsed lesson carries just its identity.
	LessonView struct {
		ID       string  `json:"lesson_id"`
		Title    string  `json:"title"`
		Expanded bool    `json:"expanded"`
		Blocks   []Block `json:"blocks,omitempty"`
	}

	UnitView struct {
		Unit     UnitRecord   `json:"unit"`
		Expanded bool         `json:"expanded"`
		Lessons  []LessonView `json:"lessons,omitempty"`
	}

	ModuleView struct {
		Module ModuleRecord `json:"module"`
		Units  []UnitView   `json:"units"`
	}
)

// WalkModule assembles the displayable tree for a module under the given
// expansion state. Classification runs lazily: lesson lists are materialized
// only for the expanded unit, and blocks only for the expanded lesson within
// it. Laziness is purely a performance property; WalkModuleEager must produce
// the same blocks for every lesson this walk does materialize.
func WalkModule(mod ModuleRecord, state ExpansionState) ModuleView {
	view := ModuleView{Module: mod, Units: make([]UnitView, 0, len(mod.Units))}
	for _, unit := range mod.Units {
		uv := UnitView{Unit: unit, Expanded: unit.ID == state.UnitID}
		if uv.Expanded {
			uv.Lessons = walkLessons(unit, state.LessonID, false)
		}
		view.Units = append(view.Units, uv)
	}
	return view
}

// WalkModuleEager classifies every lesson of every unit up front.
func WalkModuleEager(mod ModuleRecord) ModuleView {
	view := ModuleView{Module: mod, Units: make([]UnitView, 0, len(mod.Units))}
	for _, unit := range mod.Units {
		view.Units = append(view.Units, UnitView{
			Unit:     unit,
			Expanded: true,
			Lessons:  walkLessons(unit, "", true),
		})
	}
	return view
}

func walkLessons(unit UnitRecord, expandedLessonID string, eager bool) []LessonView {
	views := make([]LessonView, 0, len(unit.Lessons))
	for _, lesson := range unit.Lessons {
		lv := LessonView{
			ID:       lesson.ID,
			Title:    lesson.Title,
			Expanded: eager || lesson.ID == expandedLessonID,
		}
		if lv.Expanded {
			lv.Blocks = Classify(lesson.Fields)
		}
		views = append(views, lv)
	}
	return views
}
