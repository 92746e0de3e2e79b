package content

import (
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/secwepemc-ed/curricula/core/curriculum"
)

// LoadDir reads every YAML document under dir, one module per file, in
// filename order. Files that fail to parse abort the load; structurally
// malformed nodes inside a file (a unit that is not a mapping, a lessons
// entry that is a bare string) are silently skipped, consistent with the
// classifier's fail-silent policy for hand-authored content.
func LoadDir(fsys fs.FS, dir string) ([]curriculum.ModuleRecord, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading content dir %s", dir)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	modules := make([]curriculum.ModuleRecord, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", name)
		}
		var doc map[string]interface{}
		if err = yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", name)
		}
		if mod, ok := moduleFromDoc(doc); ok {
			modules = append(modules, mod)
		}
	}
	return modules, nil
}

func moduleFromDoc(doc map[string]interface{}) (curriculum.ModuleRecord, bool) {
	id := str(doc, "moduleId")
	if id == "" {
		return curriculum.ModuleRecord{}, false
	}
	mod := curriculum.ModuleRecord{
		ID:          id,
		Title:       str(doc, "title"),
		Subtitle:    str(doc, "subtitle"),
		Description: str(doc, "description"),
		Program:     str(doc, "program"),
		Year:        str(doc, "year"),
	}
	for _, u := range maps(doc, "units") {
		if unit, ok := unitFromDoc(u); ok {
			mod.Units = append(mod.Units, unit)
		}
	}
	for _, p := range maps(doc, "tprPhrases") {
		mod.TPRPhrases = append(mod.TPRPhrases, curriculum.TPRPhrase{
			Secwepemc: str(p, "secwepemc"),
			English:   str(p, "english"),
		})
	}
	return mod, true
}

func unitFromDoc(doc map[string]interface{}) (curriculum.UnitRecord, bool) {
	id := str(doc, "unitId")
	if id == "" {
		return curriculum.UnitRecord{}, false
	}
	unit := curriculum.UnitRecord{
		ID:          id,
		Title:       str(doc, "title"),
		Description: str(doc, "description"),
		Duration:    str(doc, "duration"),
		Season:      str(doc, "season"),
		Protocol:    strs(doc, "protocol"),
	}
	for _, l := range maps(doc, "lessons") {
		if lesson, ok := lessonFromDoc(l); ok {
			unit.Lessons = append(unit.Lessons, lesson)
		}
	}
	unit.Vocabulary = vocabFromDoc(doc, "vocabulary")
	unit.LessonVocabulary = vocabFromDoc(doc, "lessonVocabulary")
	unit.LandscapeTerms = vocabFromDoc(doc, "landscapeTerms")
	for _, s := range maps(doc, "lexicalSuffixes") {
		unit.LexicalSuffixes = append(unit.LexicalSuffixes, curriculum.LexicalSuffix{
			Suffix:   str(s, "suffix"),
			Meaning:  str(s, "meaning"),
			Examples: strs(s, "examples"),
		})
	}
	for _, v := range maps(doc, "videoResources") {
		unit.VideoResources = append(unit.VideoResources, curriculum.VideoResource{
			Src:       str(v, "src"),
			Title:     str(v, "title"),
			Duration:  str(v, "duration"),
			Presenter: str(v, "presenter"),
			Source:    str(v, "source"),
		})
	}
	return unit, true
}

func lessonFromDoc(doc map[string]interface{}) (curriculum.LessonRecord, bool) {
	id := str(doc, "lessonId")
	if id == "" {
		return curriculum.LessonRecord{}, false
	}
	// the whole mapping doubles as the free-form record; the classifier
	// ignores lessonId/title along with any other unrecognized field
	return curriculum.LessonRecord{
		ID:     id,
		Title:  str(doc, "title"),
		Fields: curriculum.Record(doc),
	}, true
}

func vocabFromDoc(doc map[string]interface{}, key string) []curriculum.VocabCard {
	var cards []curriculum.VocabCard
	for _, v := range maps(doc, key) {
		cards = append(cards, curriculum.VocabCard{
			Secwepemc:    str(v, "secwepemc"),
			English:      str(v, "english"),
			PartOfSpeech: str(v, "partOfSpeech"),
		})
	}
	return cards
}

func str(doc map[string]interface{}, key string) string {
	switch v := doc[key].(type) {
	case string:
		return v
	case int:
		// years and durations are occasionally authored as bare numbers
		return strconv.Itoa(v)
	}
	return ""
}

func strs(doc map[string]interface{}, key string) []string {
	l, _ := doc[key].([]interface{})
	var out []string
	for _, item := range l {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func maps(doc map[string]interface{}, key string) []map[string]interface{} {
	l, _ := doc[key].([]interface{})
	var out []map[string]interface{}
	for _, item := range l {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}
