package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/secwepemc-ed/curricula/core"
	"github.com/secwepemc-ed/curricula/core/curriculum"
	"github.com/secwepemc-ed/curricula/core/session"
)

type sessionAPI struct {
	store   *session.Store
	service *curriculum.Service
}

func registerSessionAPI(g *echo.Group, store *session.Store, svc *curriculum.Service) {
	api := sessionAPI{store: store, service: svc}

	sg := g.Group("/sessions")
	sg.POST("", api.sessionOpen)
	sg.GET("/:id", api.sessionRetrieve)
	sg.DELETE("/:id", api.sessionClose)
	sg.POST("/:id/toggle-unit", api.sessionToggleUnit)
	sg.POST("/:id/toggle-lesson", api.sessionToggleLesson)
	sg.GET("/:id/modules/:moduleID", api.sessionModuleView)
}

type (
	ToggleUnitRequest struct {
		UnitID string `json:"unit_id" validate:"required"`
	}

	ToggleLessonRequest struct {
		LessonID string `json:"lesson_id" validate:"required"`
	}
)

func (api *sessionAPI) sessionOpen(ctx echo.Context) error {
	return ctx.JSON(http.StatusCreated, api.store.Open())
}

func (api *sessionAPI) sessionRetrieve(ctx echo.Context) error {
	sess, err := api.store.Get(ctx.Param("id"))
	if err != nil {
		return sessionNotFoundOr(err)
	}
	return ctx.JSON(http.StatusOK, sess)
}

func (api *sessionAPI) sessionClose(ctx echo.Context) error {
	if err := api.store.Close(ctx.Param("id")); err != nil {
		return sessionNotFoundOr(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *sessionAPI) sessionToggleUnit(ctx echo.Context) error {
	data := new(ToggleUnitRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := core.Validate.Struct(data); err != nil {
		return err
	}
	sess, err := api.store.ToggleUnit(ctx.Param("id"), data.UnitID)
	if err != nil {
		return sessionNotFoundOr(err)
	}
	return ctx.JSON(http.StatusOK, sess)
}

func (api *sessionAPI) sessionToggleLesson(ctx echo.Context) error {
	data := new(ToggleLessonRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := core.Validate.Struct(data); err != nil {
		return err
	}
	sess, err := api.store.ToggleLesson(ctx.Param("id"), data.LessonID)
	if err != nil {
		return sessionNotFoundOr(err)
	}
	return ctx.JSON(http.StatusOK, sess)
}

// sessionModuleView materializes exactly the subtree the session has
// expanded: collapsed units carry no lessons, collapsed lessons no blocks.
func (api *sessionAPI) sessionModuleView(ctx echo.Context) error {
	sess, err := api.store.Get(ctx.Param("id"))
	if err != nil {
		return sessionNotFoundOr(err)
	}
	view, err := api.service.ExpandedView(ctx.Request().Context(), ctx.Param("moduleID"), sess.State)
	if err != nil {
		return notFoundOr(err)
	}
	return ctx.JSON(http.StatusOK, view)
}

func sessionNotFoundOr(err error) error {
	if err == session.ErrNotFound {
		return errHTTPNotFound
	}
	return err
}
