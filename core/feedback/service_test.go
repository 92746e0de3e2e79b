package feedback_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/secwepemc-ed/curricula/core"
	"github.com/secwepemc-ed/curricula/core/feedback"
	"github.com/secwepemc-ed/curricula/storage/database/inmem"
)

type mailSpy struct {
	sent []*core.EmailMessage
}

func (m *mailSpy) SendMessages(messages ...*core.EmailMessage) {
	m.sent = append(m.sent, messages...)
}

func newTestService() (*feedback.Service, *mailSpy) {
	conf := &core.Config{FeedbackEmail: "curriculum@test.test"}
	spy := &mailSpy{}
	return feedback.NewService(inmem.NewFeedbackRepository(), spy, conf), spy
}

func TestSubmit(t *testing.T) {
	core.InitValidators()
	svc, spy := newTestService()
	ctx := context.Background()

	nf := feedback.NewFeedback{
		ModuleID: "foundations",
		UnitID:   "u1",
		LessonID: "l2",
		Email:    "Visitor@Test.Test ",
		Message:  "  The second step is missing a word. ",
	}
	if err := nf.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if nf.Email != "visitor@test.test" {
		t.Errorf("Validate() did not clean email: %q", nf.Email)
	}

	fb, err := svc.Submit(ctx, nf)
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if fb.ID == "" || fb.CreatedAt.IsZero() {
		t.Errorf("Submit() returned incomplete feedback: %+v", fb)
	}

	all, err := svc.QueryAll(ctx)
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("QueryAll() = %d items, want 1", len(all))
	}

	if len(spy.sent) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(spy.sent))
	}
	msg := spy.sent[0]
	if msg.To[0].Address != "curriculum@test.test" {
		t.Errorf("notification to = %s", msg.To[0].Address)
	}
	if !strings.Contains(msg.TextContent, "foundations/u1/l2") {
		t.Errorf("notification body missing content path: %q", msg.TextContent)
	}
}

func TestValidate(t *testing.T) {
	core.InitValidators()
	tests := []struct {
		name    string
		nf      feedback.NewFeedback
		wantErr bool
	}{
		{"message required", feedback.NewFeedback{Email: "a@b.cd"}, true},
		{"bad email", feedback.NewFeedback{Email: "nope", Message: "hi"}, true},
		{"lesson without unit", feedback.NewFeedback{Message: "hi", ModuleID: "m1", LessonID: "l1"}, true},
		{"unit without module", feedback.NewFeedback{Message: "hi", UnitID: "u1"}, true},
		{"full coordinates", feedback.NewFeedback{Message: "hi", ModuleID: "m1", UnitID: "u1", LessonID: "l1"}, false},
		{"minimal valid", feedback.NewFeedback{Message: "hi"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.nf.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCoordinateErrorFields(t *testing.T) {
	core.InitValidators()

	nf := feedback.NewFeedback{Message: "hi", UnitID: "u1"}
	err := nf.Validate()

	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Validate() error = %T, want *core.ValidationError", err)
	}
	if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "module_id" {
		t.Errorf("Fields = %+v, want one module_id error", vErr.Fields)
	}
}
