package echoapi

import (
	"net/http"
	"testing"

	"github.com/secwepemc-ed/curricula/core/curriculum"
)

func Test_curriculumApi(t *testing.T) {
	server, deps := setupServer(t)
	mod := deps.content.modules[0]

	summaries := []moduleSummary{
		{ID: mod.ID, Title: mod.Title, Units: len(mod.Units)},
	}
	lesson := mod.Units[0].Lessons[0]

	tests := []httpTest{
		{
			name:     "moduleQuery",
			method:   http.MethodGet,
			path:     "/v1/modules",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, summaries),
		},
		{
			name:     "moduleRetrieve",
			method:   http.MethodGet,
			path:     "/v1/modules/" + mod.ID,
			wantCode: http.StatusOK,
			wantData: marchallObj(t, mod),
		},
		{
			name:     "moduleRetrieve (unknown id)",
			method:   http.MethodGet,
			path:     "/v1/modules/nope",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
		{
			name:     "unitRetrieve",
			method:   http.MethodGet,
			path:     "/v1/modules/" + mod.ID + "/units/unit-2",
			wantCode: http.StatusOK,
			wantData: marchallObj(t, mod.Units[1]),
		},
		{
			name:     "unitRetrieve (unknown unit)",
			method:   http.MethodGet,
			path:     "/v1/modules/" + mod.ID + "/units/nope",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, errNotFound),
		},
		{
			name:     "lessonBlocks",
			method:   http.MethodGet,
			path:     "/v1/modules/" + mod.ID + "/units/unit-1/lessons/" + lesson.ID,
			wantCode: http.StatusOK,
			wantData: marchallObj(t, curriculum.Classify(lesson.Fields)),
		},
		{
			name:     "lessonBlocks (lesson without content)",
			method:   http.MethodGet,
			path:     "/v1/modules/" + mod.ID + "/units/unit-1/lessons/lesson-2",
			wantCode: http.StatusOK,
			wantData: []byte("[]"),
		},
		{
			name:     "lessonBlocks (unknown lesson)",
			method:   http.MethodGet,
			path:     "/v1/modules/" + mod.ID + "/units/unit-1/lessons/nope",
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

func Test_curriculumApi_lessonPreview(t *testing.T) {
	server, _ := setupServer(t)

	fields := map[string]interface{}{
		"commands": []interface{}{"Stand up", "Sit down"},
		"context":  "TPR warm-up",
	}
	wantBlocks := curriculum.Classify(curriculum.Record(fields))

	tests := []httpTest{
		{
			name:     "preview classifies ad-hoc fields",
			body:     marchallObj(t, PreviewRequest{Title: "Draft Lesson", Fields: fields}),
			wantCode: http.StatusOK,
			wantData: marchallObj(t, previewResponse{Title: "Draft Lesson", Blocks: wantBlocks}),
		},
		{
			name:     "title is required",
			body:     marchallObj(t, PreviewRequest{Fields: fields}),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"title":"this field is required"}`),
		},
		{
			name:     "fields are required",
			body:     []byte(`{"title":"Draft Lesson"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"fields":"this field is required"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/lessons/preview", tt.body)
			server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
