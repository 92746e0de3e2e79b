package content

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/secwepemc-ed/curricula/core/curriculum"
)

var sampleModule = []byte(`
moduleId: foundations
title: Foundations of the Seasonal Round
program: Language & Culture
year: 1
tprPhrases:
  - secwepemc: "Tsukw!"
    english: "Stop!"
units:
  - unitId: winter
    title: Winter Activities
    season: winter
    duration: 2 weeks
    vocabulary:
      - secwepemc: "sqlélten̓"
        english: salmon
        partOfSpeech: noun
    lessons:
      - lessonId: trapping
        title: Trapping
        steps:
          - Scout the trails
          - Set the snares
      - "not a lesson mapping"
      - lessonId: elders
        title: Teachings
        teaching: Take only what you need
        elder: Mary Thomas
  - "not a unit mapping"
  - unitId: spring
    title: Spring Activities
    lessons: []
`)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"content/01_foundations.yaml": &fstest.MapFile{Data: sampleModule},
		"content/02_governance.yaml": &fstest.MapFile{Data: []byte(`
moduleId: governance
title: Governance
units: []
`)},
		"content/notes.txt": &fstest.MapFile{Data: []byte("ignored")},
	}
}

func TestLoadDir(t *testing.T) {
	modules, err := LoadDir(testFS(), "content")
	if err != nil {
		t.Fatalf("LoadDir() failed: %v", err)
	}
	if len(modules) != 2 {
		t.Fatalf("LoadDir() = %d modules, want 2", len(modules))
	}
	if modules[0].ID != "foundations" || modules[1].ID != "governance" {
		t.Errorf("module order = %s, %s", modules[0].ID, modules[1].ID)
	}

	mod := modules[0]
	if mod.Year != "1" {
		t.Errorf("Year = %q, want 1 (numeric scalar)", mod.Year)
	}
	if len(mod.TPRPhrases) != 1 || mod.TPRPhrases[0].English != "Stop!" {
		t.Errorf("TPRPhrases = %+v", mod.TPRPhrases)
	}

	// malformed unit node silently skipped
	if len(mod.Units) != 2 {
		t.Fatalf("units = %d, want 2", len(mod.Units))
	}
	winter := mod.Units[0]
	if winter.Season != "winter" || winter.Duration != "2 weeks" {
		t.Errorf("unit = %+v", winter)
	}
	if len(winter.Vocabulary) != 1 || winter.Vocabulary[0].PartOfSpeech != "noun" {
		t.Errorf("vocabulary = %+v", winter.Vocabulary)
	}

	// malformed lesson node silently skipped
	if len(winter.Lessons) != 2 {
		t.Fatalf("lessons = %d, want 2", len(winter.Lessons))
	}

	// loaded lesson fields classify as authored
	blocks := curriculum.Classify(winter.Lessons[0].Fields)
	if len(blocks) != 1 || blocks[0].Kind != curriculum.KindOrderedList {
		t.Errorf("trapping blocks = %+v, want one ordered list", blocks)
	}
	blocks = curriculum.Classify(winter.Lessons[1].Fields)
	if len(blocks) != 1 || blocks[0].Kind != curriculum.KindQuote {
		t.Errorf("teachings blocks = %+v, want one quote", blocks)
	}
}

func TestRepository(t *testing.T) {
	repo, err := NewRepository(testFS(), "content")
	if err != nil {
		t.Fatalf("NewRepository() failed: %v", err)
	}
	ctx := context.Background()

	all, err := repo.QueryAllModules(ctx)
	if err != nil {
		t.Fatalf("QueryAllModules() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("QueryAllModules() = %d, want 2", len(all))
	}

	if _, err = repo.GetModuleByID(ctx, "governance"); err != nil {
		t.Errorf("GetModuleByID(governance) failed: %v", err)
	}
	if _, err = repo.GetModuleByID(ctx, "nope"); err != curriculum.ErrModuleNotFound {
		t.Errorf("GetModuleByID(nope) error = %v, want ErrModuleNotFound", err)
	}
}
