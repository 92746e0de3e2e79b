package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/secwepemc-ed/curricula/core/feedback"
)

type feedbackAPI struct {
	service *feedback.Service
}

func registerFeedbackAPI(g *echo.Group, svc *feedback.Service) {
	api := feedbackAPI{service: svc}
	g.POST("/feedback", api.feedbackSubmit)
}

func (api *feedbackAPI) feedbackSubmit(ctx echo.Context) error {
	data := new(feedback.NewFeedback)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	fb, err := api.service.Submit(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, fb)
}
