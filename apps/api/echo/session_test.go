package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/secwepemc-ed/curricula/core/session"
)

func openSession(t *testing.T, server Server) session.Session {
	t.Helper()

	req, rec := newRequest(http.MethodPost, "/v1/sessions")
	server.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("openSession() failed: code = %v", rec.Code)
	}
	var sess session.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("openSession() failed: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("openSession() failed: empty session id")
	}
	return sess
}

func toggle(t *testing.T, server Server, sessID, path string, body []byte) session.Session {
	t.Helper()

	req, rec := newRequest(http.MethodPost, "/v1/sessions/"+sessID+path, body)
	server.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle(%s) failed: code = %v; body = %v", path, rec.Code, rec.Body.String())
	}
	var sess session.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("toggle(%s) failed: %v", path, err)
	}
	return sess
}

func Test_sessionApi_expansion(t *testing.T) {
	server, _ := setupServer(t)
	sess := openSession(t, server)

	checkState := func(t *testing.T, got session.Session, wantUnit, wantLesson string) {
		t.Helper()
		if got.State.UnitID != wantUnit || got.State.LessonID != wantLesson {
			t.Errorf(
				"state = (%q, %q); want (%q, %q)",
				got.State.UnitID, got.State.LessonID, wantUnit, wantLesson,
			)
		}
	}

	unitBody := func(id string) []byte { return marchallObj(t, ToggleUnitRequest{UnitID: id}) }
	lessonBody := func(id string) []byte { return marchallObj(t, ToggleLessonRequest{LessonID: id}) }

	// toggling a lesson with no unit expanded is a no-op
	got := toggle(t, server, sess.ID, "/toggle-lesson", lessonBody("lesson-1"))
	checkState(t, got, "", "")

	got = toggle(t, server, sess.ID, "/toggle-unit", unitBody("unit-1"))
	checkState(t, got, "unit-1", "")

	got = toggle(t, server, sess.ID, "/toggle-lesson", lessonBody("lesson-1"))
	checkState(t, got, "unit-1", "lesson-1")

	// re-toggling collapses the lesson only
	got = toggle(t, server, sess.ID, "/toggle-lesson", lessonBody("lesson-1"))
	checkState(t, got, "unit-1", "")

	// switching units clears any expanded lesson
	got = toggle(t, server, sess.ID, "/toggle-lesson", lessonBody("lesson-1"))
	checkState(t, got, "unit-1", "lesson-1")
	got = toggle(t, server, sess.ID, "/toggle-unit", unitBody("unit-2"))
	checkState(t, got, "unit-2", "")

	// re-toggling the unit collapses everything
	got = toggle(t, server, sess.ID, "/toggle-unit", unitBody("unit-2"))
	checkState(t, got, "", "")
}

func Test_sessionApi_moduleView(t *testing.T) {
	server, deps := setupServer(t)
	mod := deps.content.modules[0]
	sess := openSession(t, server)

	toggle(t, server, sess.ID, "/toggle-unit", marchallObj(t, ToggleUnitRequest{UnitID: "unit-1"}))
	toggle(t, server, sess.ID, "/toggle-lesson", marchallObj(t, ToggleLessonRequest{LessonID: "lesson-1"}))

	req, rec := newRequest(http.MethodGet, "/v1/sessions/"+sess.ID+"/modules/"+mod.ID)
	server.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("moduleView failed: code = %v; body = %v", rec.Code, rec.Body.String())
	}

	var view struct {
		Units []struct {
			Unit struct {
				ID string `json:"unit_id"`
			} `json:"unit"`
			Expanded bool `json:"expanded"`
			Lessons  []struct {
				ID       string            `json:"lesson_id"`
				Expanded bool              `json:"expanded"`
				Blocks   []json.RawMessage `json:"blocks"`
			} `json:"lessons"`
		} `json:"units"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("moduleView failed: %v", err)
	}
	if len(view.Units) != len(mod.Units) {
		t.Fatalf("units = %d; want %d", len(view.Units), len(mod.Units))
	}
	if !view.Units[0].Expanded {
		t.Error("unit-1 should be expanded")
	}
	if view.Units[1].Expanded {
		t.Error("unit-2 should be collapsed")
	}
	if len(view.Units[0].Lessons) == 0 {
		t.Fatal("expanded unit should carry its lessons")
	}
	if l := view.Units[0].Lessons[0]; !l.Expanded || len(l.Blocks) == 0 {
		t.Errorf("lesson-1 expanded = %v, blocks = %d; want expanded with blocks", l.Expanded, len(l.Blocks))
	}
	if l := view.Units[0].Lessons[1]; l.Expanded || l.Blocks != nil {
		t.Errorf("lesson-2 expanded = %v, blocks = %v; want collapsed without blocks", l.Expanded, l.Blocks)
	}
	if view.Units[1].Lessons != nil {
		t.Errorf("collapsed unit lessons = %v; want none", view.Units[1].Lessons)
	}
}

func Test_sessionApi_lifecycle(t *testing.T) {
	server, _ := setupServer(t)
	sess := openSession(t, server)

	tests := []httpTest{
		{
			name:     "sessionRetrieve",
			method:   http.MethodGet,
			path:     "/v1/sessions/" + sess.ID,
			wantCode: http.StatusOK,
			wantData: marchallObj(t, sess),
		},
		{
			name:     "sessionRetrieve (unknown id)",
			method:   http.MethodGet,
			path:     "/v1/sessions/nope",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
		{
			name:     "toggleUnit requires unit_id",
			method:   http.MethodPost,
			path:     "/v1/sessions/" + sess.ID + "/toggle-unit",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"unit_id":"this field is required"}`),
		},
		{
			name:     "sessionClose",
			method:   http.MethodDelete,
			path:     "/v1/sessions/" + sess.ID,
			wantCode: http.StatusNoContent,
		},
		{
			name:     "sessionClose (already closed)",
			method:   http.MethodDelete,
			path:     "/v1/sessions/" + sess.ID,
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
