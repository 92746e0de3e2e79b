package curriculum

// ExpansionState tracks which subtree of a module is currently open: at most
// one expanded unit and, within it, at most one expanded lesson. It is a
// plain two-field state machine owned by a UI session; transitions are
// single-field writes, there is no terminal state, and navigation resets it.
type ExpansionState struct {
	UnitID   string `json:"expanded_unit_id,omitempty"`
	LessonID string `json:"expanded_lesson_id,omitempty"`
}

// ToggleUnit expands the unit if it is not the expanded one, collapses it
// otherwise. Either way the expanded lesson is cleared: it was scoped to the
// previously visible unit.
func (s *ExpansionState) ToggleUnit(unitID string) {
	if s.UnitID == unitID {
		s.UnitID = ""
	} else {
		s.UnitID = unitID
	}
	s.LessonID = ""
}

// ToggleLesson expands or collapses a lesson within the expanded unit. With
// no unit expanded there is nothing to toggle.
func (s *ExpansionState) ToggleLesson(lessonID string) {
	if s.UnitID == "" {
		return
	}
	if s.LessonID == lessonID {
		s.LessonID = ""
	} else {
		s.LessonID = lessonID
	}
}

// Reset collapses everything.
func (s *ExpansionState) Reset() {
	s.UnitID = ""
	s.LessonID = ""
}
