package curriculum

// classifyItem applies the content-array item precedence. Unlike the outer
// shape rules this is strictly first-match-wins: an item carrying both
// `method` and `secwepemc` always classifies as a method item, never a
// bilingual one. An `animal` item keeps its identity even when it also
// carries a `method`; the method just becomes its body. Items matching no
// rule are silently skipped.
func classifyItem(item Record) (Block, bool) {
	if animal, ok := item.text("animal"); ok {
		body, ok := item.text("method")
		if !ok {
			body, _ = item.text("description")
		}
		return Block{KindAnimalItem, TitledItemPayload{Title: animal, Body: body}}, true
	}

	if method, ok := item.text("method"); ok {
		body, _ := item.text("description")
		return Block{KindMethodItem, TitledItemPayload{Title: method, Body: body}}, true
	}

	if secwepemc, ok := item.text("secwepemc"); ok {
		english, _ := item.text("english")
		season, _ := item.text("season")
		note, _ := item.text("note")
		return Block{KindBilingualItem, BilingualItemPayload{
			Secwepemc: secwepemc,
			English:   english,
			Season:    season,
			Note:      note,
		}}, true
	}

	if english, ok := item.text("english"); ok {
		season, _ := item.text("season")
		note, _ := item.text("note")
		return Block{KindEnglishItem, BilingualItemPayload{
			English: english,
			Season:  season,
			Note:    note,
		}}, true
	}

	return Block{}, false
}
