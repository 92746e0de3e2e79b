package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/secwepemc-ed/curricula/core/curriculum"
	appfs "github.com/secwepemc-ed/curricula/fs"
	"github.com/secwepemc-ed/curricula/storage/content"
)

// fields that identify a lesson or qualify another field instead of
// producing a block of their own
var auxiliaryFields = map[string]bool{
	"lessonId": true,
	"title":    true,
	"elder":    true,
}

// checkContent lints a content set: it classifies every lesson eagerly and
// reports fields no shape rule recognizes, with a near-miss suggestion for
// likely typos.
func (cli *commandLine) checkContent(dir string) error {
	var (
		modules []curriculum.ModuleRecord
		err     error
	)
	if dir != "" {
		modules, err = content.LoadDir(os.DirFS(dir), ".")
	} else {
		modules, err = content.LoadDir(appfs.FS, "content")
	}
	if err != nil {
		return err
	}

	recognized := curriculum.RecognizedFields()
	warnings := 0

	for _, mod := range modules {
		fmt.Fprintf(cli.out, "module %s (%s): %d units\n", mod.ID, mod.Title, len(mod.Units))

		view := curriculum.WalkModuleEager(mod)
		for _, uv := range view.Units {
			for i, lv := range uv.Lessons {
				fmt.Fprintf(cli.out, "  %s/%s: %d blocks\n", uv.Unit.ID, lv.ID, len(lv.Blocks))

				for _, field := range unknownFields(uv.Unit.Lessons[i], recognized) {
					warnings++
					msg := fmt.Sprintf("  warning: %s/%s: unrecognized field %q", uv.Unit.ID, lv.ID, field)
					if suggestion := closestField(field, recognized); suggestion != "" {
						msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
					}
					fmt.Fprintln(cli.out, msg)
				}
			}
		}
	}

	if warnings > 0 {
		return fmt.Errorf("%d unrecognized field(s)", warnings)
	}
	fmt.Fprintf(cli.out, "OK: %d module(s)\n", len(modules))
	return nil
}

func unknownFields(lesson curriculum.LessonRecord, recognized []string) []string {
	known := make(map[string]bool, len(recognized))
	for _, field := range recognized {
		known[field] = true
	}

	var unknown []string
	for field := range lesson.Fields {
		if !known[field] && !auxiliaryFields[field] {
			unknown = append(unknown, field)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// closestField returns the most similar recognized field name, or "" when
// nothing comes close enough to be a plausible typo.
func closestField(field string, recognized []string) string {
	const threshold = 0.7

	var (
		best      string
		bestRatio float64
	)
	for _, candidate := range recognized {
		m := difflib.NewMatcher(strings.Split(field, ""), strings.Split(candidate, ""))
		if ratio := m.Ratio(); ratio > bestRatio {
			best, bestRatio = candidate, ratio
		}
	}
	if bestRatio < threshold {
		return ""
	}
	return best
}
