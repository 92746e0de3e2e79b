package curriculum

import (
	"context"
	"errors"
)

var (
	// errors
	ErrModuleNotFound = errors.New("module not found")
	ErrUnitNotFound   = errors.New("unit not found")
	ErrLessonNotFound = errors.New("lesson not found")
)

type (
	// Repository is any read-only source of curriculum records. Records are
	// owned by the content source; the engine never mutates them and module
	// order is preserved as authored.
	Repository interface {
		QueryAllModules(ctx context.Context) ([]ModuleRecord, error)
		GetModuleByID(ctx context.Context, id string) (ModuleRecord, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]ModuleRecord, error) {
	return svc.repo.QueryAllModules(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (ModuleRecord, error) {
	return svc.repo.GetModuleByID(ctx, id)
}

func (svc *Service) GetUnit(ctx context.Context, moduleID, unitID string) (UnitRecord, error) {
	mod, err := svc.repo.GetModuleByID(ctx, moduleID)
	if err != nil {
		return UnitRecord{}, err
	}
	unit, ok := mod.Unit(unitID)
	if !ok {
		return UnitRecord{}, ErrUnitNotFound
	}
	return unit, nil
}

// LessonBlocks classifies one lesson on demand. Blocks are recomputed per
// call; they are never cached or persisted.
func (svc *Service) LessonBlocks(ctx context.Context, moduleID, unitID, lessonID string) ([]Block, error) {
	unit, err := svc.GetUnit(ctx, moduleID, unitID)
	if err != nil {
		return nil, err
	}
	lesson, ok := unit.Lesson(lessonID)
	if !ok {
		return nil, ErrLessonNotFound
	}
	return Classify(lesson.Fields), nil
}

// ExpandedView materializes the module tree gated by the session's
// expansion state.
func (svc *Service) ExpandedView(ctx context.Context, moduleID string, state ExpansionState) (ModuleView, error) {
	mod, err := svc.repo.GetModuleByID(ctx, moduleID)
	if err != nil {
		return ModuleView{}, err
	}
	return WalkModule(mod, state), nil
}

// Preview classifies an ad-hoc lesson record (authoring preview).
func (svc *Service) Preview(fields Record) []Block {
	return Classify(fields)
}
