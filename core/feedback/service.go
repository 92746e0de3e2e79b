package feedback

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/secwepemc-ed/curricula/core"
)

var ErrNotFound = errors.New("feedback not found")

type (
	Repository interface {
		CreateFeedback(ctx context.Context, fb Feedback) (Feedback, error)
		QueryAllFeedback(ctx context.Context) ([]Feedback, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		conf    *core.Config
	}
)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{repo: repo, mailSvc: mailSvc, conf: conf}
}

// Submit persists the report and notifies the curriculum maintainers.
func (svc *Service) Submit(ctx context.Context, nf NewFeedback) (Feedback, error) {
	fb := Feedback{
		ID:        uuid.NewString(),
		ModuleID:  nf.ModuleID,
		UnitID:    nf.UnitID,
		LessonID:  nf.LessonID,
		Email:     nf.Email,
		Message:   nf.Message,
		CreatedAt: time.Now().UTC(),
	}
	fb, err := svc.repo.CreateFeedback(ctx, fb)
	if err != nil {
		return Feedback{}, err
	}

	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:          []mail.Address{{Address: svc.conf.FeedbackEmail}},
		Subject:     "New content feedback",
		TextContent: svc.notificationBody(fb),
	})
	return fb, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Feedback, error) {
	return svc.repo.QueryAllFeedback(ctx)
}

func (svc *Service) notificationBody(fb Feedback) string {
	where := "site-wide"
	if fb.ModuleID != "" {
		where = fb.ModuleID
		if fb.UnitID != "" {
			where += "/" + fb.UnitID
		}
		if fb.LessonID != "" {
			where += "/" + fb.LessonID
		}
	}
	from := fb.Email
	if from == "" {
		from = "anonymous"
	}
	return fmt.Sprintf("From: %s\nContent: %s\n\n%s", from, where, fb.Message)
}
