package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/secwepemc-ed/curricula/core/feedback"
)

func Test_feedbackApi_submit(t *testing.T) {
	server, deps := setupServer(t)

	body := marchallObj(t, feedback.NewFeedback{
		ModuleID: "mod-1",
		UnitID:   "unit-1",
		LessonID: "lesson-1",
		Email:    "kukwstsétsemc@example.com",
		Message:  "The third step is missing a translation.",
	})
	req, rec := newRequest(http.MethodPost, "/v1/feedback", body)
	server.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %v; want %v; body = %v", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var fb feedback.Feedback
	if err := json.Unmarshal(rec.Body.Bytes(), &fb); err != nil {
		t.Fatalf("unmarshalling response failed: %v", err)
	}
	if fb.ID == "" || fb.CreatedAt.IsZero() {
		t.Errorf("feedback not stamped: id = %q, created_at = %v", fb.ID, fb.CreatedAt)
	}
	if fb.Message != "The third step is missing a translation." {
		t.Errorf("message = %q", fb.Message)
	}

	all, err := deps.fbRepo.QueryAllFeedback(context.Background())
	if err != nil {
		t.Fatalf("QueryAllFeedback() failed: %v", err)
	}
	if len(all) != 1 || all[0].ID != fb.ID {
		t.Errorf("stored feedback = %+v; want the submitted one", all)
	}

	// a notification goes out to the curriculum team
	if len(deps.mail.messages) != 1 {
		t.Fatalf("sent messages = %d; want 1", len(deps.mail.messages))
	}
	msg := deps.mail.messages[0]
	if len(msg.To) != 1 || msg.To[0].Address != deps.conf.FeedbackEmail {
		t.Errorf("notification recipients = %v; want %v", msg.To, deps.conf.FeedbackEmail)
	}
	if !strings.Contains(msg.TextContent, fb.Message) {
		t.Errorf("notification body = %q; should contain the message", msg.TextContent)
	}
}

func Test_feedbackApi_validation(t *testing.T) {
	server, deps := setupServer(t)

	tests := []httpTest{
		{
			name:     "message is required",
			body:     []byte(`{"module_id":"mod-1"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"message":"this field is required"}`),
		},
		{
			name:     "email must be valid when given",
			body:     []byte(`{"message":"typo in unit 2","email":"not-an-email"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"email":"email must be a valid email address"}`),
		},
		{
			name:     "lesson coordinate needs its unit",
			body:     []byte(`{"message":"typo","module_id":"mod-1","lesson_id":"lesson-1"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"unit_id":"unit_id is required when lesson_id is given"}`),
		},
		{
			name:     "unit coordinate needs its module",
			body:     []byte(`{"message":"typo","unit_id":"unit-1"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"module_id":"module_id is required when unit_id is given"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/feedback", tt.body)
			server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	if len(deps.mail.messages) != 0 {
		t.Errorf("sent messages = %d; rejected feedback must not notify", len(deps.mail.messages))
	}
}
