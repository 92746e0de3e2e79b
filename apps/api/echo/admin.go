package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/secwepemc-ed/curricula/core"
)

type adminAPI struct {
	deps ServerDeps
}

func registerAdminAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := adminAPI{deps: deps}

	ag := g.Group("/admin")
	ag.POST("/login", api.adminLogin)

	// authed endpoints
	pg := ag.Group("", jwt)
	pg.POST("/content/reload", api.contentReload)
	pg.GET("/feedback", api.feedbackQuery)
}

type (
	LoginRequest struct {
		Password string `json:"password" validate:"required"`
	}

	loginResponse struct {
		Token string `json:"token"`
	}
)

func (api *adminAPI) adminLogin(ctx echo.Context) error {
	data := new(LoginRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := core.Validate.Struct(data); err != nil {
		return err
	}

	claims, err := authenticateAdmin(api.deps.Conf, data.Password)
	if err != nil {
		return err
	}
	token, err := generateToken(api.deps.Conf, claims)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, loginResponse{Token: token})
}

func (api *adminAPI) contentReload(ctx echo.Context) error {
	if err := api.deps.Content.Reload(); err != nil {
		api.deps.Logger.Error("reloading content", err)
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// feedbackQuery lists submitted content feedback, newest first (the site's
// audit surface).
func (api *adminAPI) feedbackQuery(ctx echo.Context) error {
	all, err := api.deps.FeedbackSvc.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, all)
}
