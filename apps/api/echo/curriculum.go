package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/secwepemc-ed/curricula/core"
	"github.com/secwepemc-ed/curricula/core/curriculum"
)

type curriculumAPI struct {
	service *curriculum.Service
}

func registerCurriculumAPI(g *echo.Group, svc *curriculum.Service) {
	api := curriculumAPI{service: svc}

	mg := g.Group("/modules")
	mg.GET("", api.moduleQuery)
	mg.GET("/:id", api.moduleRetrieve)
	mg.GET("/:id/units/:uid", api.unitRetrieve)
	mg.GET("/:id/units/:uid/lessons/:lid", api.lessonBlocks)

	g.POST("/lessons/preview", api.lessonPreview)
}

// moduleSummary is the list representation of a module; units and TPR
// phrases are only materialized on retrieve.
type moduleSummary struct {
	ID       string `json:"module_id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Program  string `json:"program,omitempty"`
	Year     string `json:"year,omitempty"`
	Units    int    `json:"unit_count"`
}

func (api *curriculumAPI) moduleQuery(ctx echo.Context) error {
	modules, err := api.service.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	summaries := make([]moduleSummary, 0, len(modules))
	for _, mod := range modules {
		summaries = append(summaries, moduleSummary{
			ID:       mod.ID,
			Title:    mod.Title,
			Subtitle: mod.Subtitle,
			Program:  mod.Program,
			Year:     mod.Year,
			Units:    len(mod.Units),
		})
	}
	return ctx.JSON(http.StatusOK, summaries)
}

func (api *curriculumAPI) moduleRetrieve(ctx echo.Context) error {
	mod, err := api.service.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return notFoundOr(err)
	}
	return ctx.JSON(http.StatusOK, mod)
}

func (api *curriculumAPI) unitRetrieve(ctx echo.Context) error {
	unit, err := api.service.GetUnit(ctx.Request().Context(), ctx.Param("id"), ctx.Param("uid"))
	if err != nil {
		return notFoundOr(err)
	}
	return ctx.JSON(http.StatusOK, unit)
}

func (api *curriculumAPI) lessonBlocks(ctx echo.Context) error {
	blocks, err := api.service.LessonBlocks(
		ctx.Request().Context(), ctx.Param("id"), ctx.Param("uid"), ctx.Param("lid"))
	if err != nil {
		return notFoundOr(err)
	}
	return ctx.JSON(http.StatusOK, blocks)
}

// PreviewRequest carries an ad-hoc lesson for an authoring preview. Only the
// envelope is validated; the lesson fields themselves are classified as-is.
type PreviewRequest struct {
	Title  string                 `json:"title" validate:"required"`
	Fields map[string]interface{} `json:"fields" validate:"required"`
}

func (r *PreviewRequest) Validate() error {
	r.Title = core.CleanString(r.Title)
	return core.Validate.Struct(r)
}

type previewResponse struct {
	Title  string             `json:"title"`
	Blocks []curriculum.Block `json:"blocks"`
}

func (api *curriculumAPI) lessonPreview(ctx echo.Context) error {
	data := new(PreviewRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, previewResponse{
		Title:  data.Title,
		Blocks: api.service.Preview(curriculum.Record(data.Fields)),
	})
}

// notFoundOr maps domain lookup misses to 404, anything else passes through.
func notFoundOr(err error) error {
	switch errors.Cause(err) {
	case curriculum.ErrModuleNotFound, curriculum.ErrUnitNotFound, curriculum.ErrLessonNotFound:
		return errHTTPNotFound
	}
	return err
}
