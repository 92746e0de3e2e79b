package curriculum

import "sort"

// shapeRule is one predicate→extractor entry of the classification table.
// extract returns nil when the rule does not fire; a field that is absent or
// of the wrong type is never an error (best-effort, fail-silent classifier
// over hand-authored content).
type shapeRule struct {
	field   string
	extract func(Record) []Block
}

// shapeRules is evaluated in order for every lesson record. The order is a
// binding part of the content-authoring contract: blocks appear in exactly
// this relative position. Unlike the content-item classifier, rules here are
// not mutually exclusive; every rule that matches contributes its blocks.
var shapeRules = []shapeRule{
	{"moons", extractMoons},
	{"steps", orderedListRule("steps", "Steps")},
	{"protocol", orderedListRule("protocol", "Protocol")},
	{"content", extractContent},
	{"methods", extractMethods},
	{"animals", pairListRule("animals", "animal", "method")},
	{"roots", pairListRule("roots", "secwepemc", "english")},
	{"species", pairListRule("species", "secwepemc", "english")},
	{"calendar", extractCalendarGrid},
	{"phrases", pairListRule("phrases", "secwepemc", "english")},
	{"pattern", pairListRule("pattern", "secwepemc", "english")},
	{"numbers", pairListRule("numbers", "number", "secwepemc")},
	{"commands", pairListRule("commands", "secwepemc", "english")},
	{"colors", pairListRule("colors", "secwepemc", "english")},
	{"days", pairListRule("days", "secwepemc", "english")},
	{"stories", extractStories},
	{"types", extractTypes},
	{"dances", extractDances},
	{"approach", extractApproach},
	{"skills", bulletListRule("skills")},
	{"components", bulletListRule("components")},
	{"principles", bulletListRule("principles")},
	{"places", pairListRule("places", "secwepemc", "english")},
	{"rivers", chipListRule("rivers")},
	{"vocabulary", pairListRule("vocabulary", "secwepemc", "english")},
	{"classifiers", extractClassifiers},
	{"materials", bulletListRule("materials")},
	{"technique", orderedListRule("technique", "Technique")},
	{"model", extractModel},
	{"teaching", extractTeaching},
	{"keyTeaching", textRule("keyTeaching", KindKeyTeaching)},
	{"discussionQuestions", questionListRule("discussionQuestions")},
	{"teachingStory", extractTeachingStory},
	{"details", extractDetails},
	{"games", extractGames},
	{"context", textRule("context", KindNote)},
	{"source", textRule("source", KindAttribution)},
	{"divisions", extractDivisions},
}

// Classify decomposes one lesson record into its ordered list of renderable
// blocks. It is a pure function: same record in, same blocks out, the input
// is never mutated, and unrecognized fields never produce a block.
func Classify(rec Record) []Block {
	blocks := make([]Block, 0, 4)
	if rec == nil {
		return blocks
	}
	for _, rule := range shapeRules {
		blocks = append(blocks, rule.extract(rec)...)
	}
	return blocks
}

// single wraps a one-block extraction.
func single(b Block, ok bool) []Block {
	if !ok {
		return nil
	}
	return []Block{b}
}

func extractMoons(rec Record) []Block {
	moons, ok := rec.list("moons")
	if !ok {
		return nil
	}
	return single(Block{KindCalendar, MoonsPayload{Moons: moons}}, true)
}

func orderedListRule(field, label string) func(Record) []Block {
	return func(rec Record) []Block {
		items, ok := rec.texts(field)
		if !ok {
			return nil
		}
		return single(Block{KindOrderedList, ListPayload{Label: label, Items: items}}, true)
	}
}

func bulletListRule(field string) func(Record) []Block {
	return func(rec Record) []Block {
		items, ok := rec.texts(field)
		if !ok {
			return nil
		}
		return single(Block{KindBulletList, ListPayload{Label: FieldLabel(field), Items: items}}, true)
	}
}

func chipListRule(field string) func(Record) []Block {
	return func(rec Record) []Block {
		items, ok := rec.texts(field)
		if !ok {
			return nil
		}
		return single(Block{KindChipList, ListPayload{Label: FieldLabel(field), Items: items}}, true)
	}
}

func questionListRule(field string) func(Record) []Block {
	return func(rec Record) []Block {
		items, ok := rec.texts(field)
		if !ok {
			return nil
		}
		return single(Block{KindQuestionList, ListPayload{Label: FieldLabel(field), Items: items}}, true)
	}
}

func textRule(field string, kind Kind) func(Record) []Block {
	return func(rec Record) []Block {
		text, ok := rec.text(field)
		if !ok {
			return nil
		}
		return single(Block{kind, TextPayload{Text: text}}, true)
	}
}

// extractContent handles the two shapes of the free-form `content` field:
// a non-empty array is sub-classified item by item, a non-array object is
// rendered as key/value entries. Any other type does not fire.
func extractContent(rec Record) []Block {
	if items, ok := rec.list("content"); ok {
		if len(items) == 0 {
			return nil
		}
		payload := ContentArrayPayload{Items: make([]Block, 0, len(items))}
		for _, item := range items {
			itemRec, ok := asRecord(item)
			if !ok {
				continue
			}
			if b, ok := classifyItem(itemRec); ok {
				payload.Items = append(payload.Items, b)
			}
		}
		return single(Block{KindContentArray, payload}, true)
	}

	obj, ok := rec.object("content")
	if !ok {
		return nil
	}
	// map iteration order is not stable; sorted keys keep classification
	// deterministic (authoring order is lost at decode time anyway)
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	payload := KeyValuePayload{Entries: make([]KeyValueEntry, 0, len(keys))}
	for _, k := range keys {
		payload.Entries = append(payload.Entries, KeyValueEntry{Key: k, Value: renderValue(obj[k])})
	}
	return single(Block{KindKeyValue, payload}, true)
}

func extractMethods(rec Record) []Block {
	recs, ok := rec.records("methods")
	if !ok {
		return nil
	}
	payload := MethodListPayload{Methods: make([]MethodEntry, 0, len(recs))}
	for _, m := range recs {
		name, ok := m.text("name")
		if !ok {
			continue
		}
		steps, _ := m.texts("steps")
		payload.Methods = append(payload.Methods, MethodEntry{Name: name, Steps: steps})
	}
	return single(Block{KindMethodList, payload}, true)
}

func pairListRule(field, termKey, translationKey string) func(Record) []Block {
	return func(rec Record) []Block {
		recs, ok := rec.records(field)
		if !ok {
			return nil
		}
		payload := PairListPayload{
			Kind:    field,
			Label:   FieldLabel(field),
			Entries: make([]PairEntry, 0, len(recs)),
		}
		for _, r := range recs {
			term, termOK := r.text(termKey)
			translation, translationOK := r.text(translationKey)
			if !termOK && !translationOK {
				continue
			}
			season, _ := r.text("season")
			note, _ := r.text("note")
			payload.Entries = append(payload.Entries, PairEntry{
				Term:        term,
				Translation: translation,
				Season:      season,
				Note:        note,
			})
		}
		return single(Block{KindPairList, payload}, true)
	}
}

func extractCalendarGrid(rec Record) []Block {
	recs, ok := rec.records("calendar")
	if !ok {
		return nil
	}
	payload := CalendarGridPayload{Months: make([]CalendarMonth, 0, len(recs))}
	for _, m := range recs {
		month, ok := m.text("month")
		if !ok {
			continue
		}
		entries, ok := m.texts("berries")
		if !ok {
			entries, _ = m.texts("activities")
		}
		payload.Months = append(payload.Months, CalendarMonth{Month: month, Entries: entries})
	}
	return single(Block{KindCalendarGrid, payload}, true)
}

func extractStories(rec Record) []Block {
	recs, ok := rec.records("stories")
	if !ok {
		return nil
	}
	payload := StoryListPayload{Stories: make([]StoryEntry, 0, len(recs))}
	for _, s := range recs {
		title, ok := s.text("title")
		if !ok {
			continue
		}
		secwepemc, _ := s.text("secwepemc")
		moral, _ := s.text("moral")
		theme, _ := s.text("theme")
		payload.Stories = append(payload.Stories, StoryEntry{
			Title:     title,
			Secwepemc: secwepemc,
			Moral:     moral,
			Theme:     theme,
		})
	}
	return single(Block{KindStoryList, payload}, true)
}

func extractTypes(rec Record) []Block {
	recs, ok := rec.records("types")
	if !ok {
		return nil
	}
	payload := NamedListPayload{Label: FieldLabel("types"), Entries: make([]NamedEntry, 0, len(recs))}
	for _, t := range recs {
		name, ok := t.text("type")
		if !ok {
			name, ok = t.text("name")
		}
		if !ok {
			continue
		}
		description, ok := t.text("occasion")
		if !ok {
			description, _ = t.text("description")
		}
		payload.Entries = append(payload.Entries, NamedEntry{Name: name, Description: description})
	}
	return single(Block{KindTypeList, payload}, true)
}

func extractDances(rec Record) []Block {
	recs, ok := rec.records("dances")
	if !ok {
		return nil
	}
	payload := NamedListPayload{Label: FieldLabel("dances"), Entries: make([]NamedEntry, 0, len(recs))}
	for _, d := range recs {
		name, ok := d.text("name")
		if !ok {
			continue
		}
		description, _ := d.text("description")
		payload.Entries = append(payload.Entries, NamedEntry{Name: name, Description: description})
	}
	return single(Block{KindSimpleList, payload}, true)
}

func extractApproach(rec Record) []Block {
	obj, ok := rec.object("approach")
	if !ok {
		return nil
	}
	name, ok := obj.text("name")
	if !ok {
		return nil
	}
	principle, _ := obj.text("principle")
	implementation, _ := obj.text("implementation")
	advantages, _ := obj.texts("advantages")
	return single(Block{KindApproach, ApproachPayload{
		Name:           name,
		Principle:      principle,
		Implementation: implementation,
		Advantages:     advantages,
	}}, true)
}

func extractClassifiers(rec Record) []Block {
	recs, ok := rec.records("classifiers")
	if !ok {
		return nil
	}
	payload := GroupedExamplesPayload{Groups: make([]ExampleGroup, 0, len(recs))}
	for _, c := range recs {
		category, ok := c.text("category")
		if !ok {
			continue
		}
		note, _ := c.text("note")
		group := ExampleGroup{Category: category, Note: note}
		if examples, ok := c.records("examples"); ok {
			for _, e := range examples {
				count, _ := e.text("count")
				term, termOK := e.text("secwepemc")
				if count == "" && !termOK {
					continue
				}
				group.Examples = append(group.Examples, CountExample{Count: count, Term: term})
			}
		}
		payload.Groups = append(payload.Groups, group)
	}
	return single(Block{KindGroupedExamples, payload}, true)
}

func extractModel(rec Record) []Block {
	obj, ok := rec.object("model")
	if !ok {
		return nil
	}
	structure, _ := obj.text("structure")
	ratio, _ := obj.text("ratio")
	goal, _ := obj.text("goal")
	activities, _ := obj.texts("activities")
	return single(Block{KindModel, ModelPayload{
		Structure:  structure,
		Ratio:      ratio,
		Goal:       goal,
		Activities: activities,
	}}, true)
}

func extractTeaching(rec Record) []Block {
	text, ok := rec.text("teaching")
	if !ok {
		return nil
	}
	elder, _ := rec.text("elder")
	return single(Block{KindQuote, QuotePayload{Text: text, Elder: elder}}, true)
}

func extractTeachingStory(rec Record) []Block {
	obj, ok := rec.object("teachingStory")
	if !ok {
		return nil
	}
	title, titleOK := obj.text("title")
	summary, summaryOK := obj.text("summary")
	if !titleOK && !summaryOK {
		return nil
	}
	return single(Block{KindStorySummary, StorySummaryPayload{Title: title, Summary: summary}}, true)
}

// extractDetails renders each present sub-field as its own sub-section;
// absent sub-fields are omitted independently.
func extractDetails(rec Record) []Block {
	obj, ok := rec.object("details")
	if !ok {
		return nil
	}
	payload := DetailsPayload{}
	payload.Duration, _ = obj.text("duration")
	payload.Location, _ = obj.text("location")
	payload.Preparation, _ = obj.text("preparation")
	payload.Attire, _ = obj.texts("attire")
	payload.Tools, _ = obj.texts("tools")
	payload.Skills, _ = obj.texts("skills")
	payload.Tests, _ = obj.texts("tests")
	payload.SpiritualRequirement, _ = obj.text("spiritualRequirement")
	return single(Block{KindDetails, payload}, true)
}

func extractGames(rec Record) []Block {
	obj, ok := rec.object("games")
	if !ok {
		return nil
	}
	payload := DifficultyGroupsPayload{
		Easy:     extractGameGroup(obj, "easy"),
		Medium:   extractGameGroup(obj, "medium"),
		Advanced: extractGameGroup(obj, "advanced"),
	}
	return single(Block{KindDifficultyGroups, payload}, true)
}

func extractGameGroup(obj Record, difficulty string) []GameEntry {
	recs, ok := obj.records(difficulty)
	if !ok {
		return nil
	}
	games := make([]GameEntry, 0, len(recs))
	for _, g := range recs {
		name, ok := g.text("name")
		if !ok {
			continue
		}
		players, _ := g.text("players")
		equipment, _ := g.text("equipment")
		rules, _ := g.text("rules")
		games = append(games, GameEntry{Name: name, Players: players, Equipment: equipment, Rules: rules})
	}
	return games
}

func extractDivisions(rec Record) []Block {
	recs, ok := rec.records("divisions")
	if !ok || len(recs) == 0 {
		return nil
	}
	payload := DivisionListPayload{Divisions: make([]DivisionEntry, 0, len(recs))}
	for _, d := range recs {
		name, ok := d.text("name")
		if !ok {
			continue
		}
		location, _ := d.text("location")
		villages, _ := d.texts("villages")
		payload.Divisions = append(payload.Divisions, DivisionEntry{
			Name:     name,
			Location: location,
			Villages: villages,
		})
	}
	return single(Block{KindDivisionList, payload}, true)
}
