package curriculum

type (
	// LessonRecord is one unit of curriculum content: a stable identity plus
	// an open set of free-form fields classified at render time.
	LessonRecord struct {
		ID     string `json:"lesson_id"`
		Title  string `json:"title"`
		Fields Record `json:"-"`
	}

	// VocabCard is one flip-card pair handed to the vocabulary widget.
	VocabCard struct {
		Secwepemc    string `json:"secwepemc"`
		English      string `json:"english"`
		PartOfSpeech string `json:"part_of_speech,omitempty"`
	}

	// LexicalSuffix is one suffix entry of a unit's lexical-suffix collection.
	LexicalSuffix struct {
		Suffix   string   `json:"suffix"`
		Meaning  string   `json:"meaning"`
		Examples []string `json:"examples,omitempty"`
	}

	// VideoResource is the payload contract of the video-player widget.
	VideoResource struct {
		Src       string `json:"src"`
		Title     string `json:"title"`
		Duration  string `json:"duration,omitempty"`
		Presenter string `json:"presenter,omitempty"`
		Source    string `json:"source,omitempty"`
	}

	// UnitRecord groups an ordered list of lessons with the unit-level
	// collections. The collections are fixed blocks: they render as-is and
	// never pass through shape classification.
	UnitRecord struct {
		ID          string `json:"unit_id"`
		Title       string `json:"title"`
		Description string `json:"description,omitempty"`
		Duration    string `json:"duration,omitempty"`
		Season      string `json:"season,omitempty"`

		Lessons []LessonRecord `json:"lessons"`

		Vocabulary       []VocabCard     `json:"vocabulary,omitempty"`
		LessonVocabulary []VocabCard     `json:"lesson_vocabulary,omitempty"`
		LandscapeTerms   []VocabCard     `json:"landscape_terms,omitempty"`
		LexicalSuffixes  []LexicalSuffix `json:"lexical_suffixes,omitempty"`
		Protocol         []string        `json:"protocol,omitempty"`
		VideoResources   []VideoResource `json:"video_resources,omitempty"`
	}

	// TPRPhrase is one total-physical-response phrase pair at module level.
	TPRPhrase struct {
		Secwepemc string `json:"secwepemc"`
		English   string `json:"english"`
	}

	ModuleRecord struct {
		ID          string `json:"module_id"`
		Title       string `json:"title"`
		Subtitle    string `json:"subtitle,omitempty"`
		Description string `json:"description,omitempty"`
		Program     string `json:"program,omitempty"`
		Year        string `json:"year,omitempty"`

		Units      []UnitRecord `json:"units"`
		TPRPhrases []TPRPhrase  `json:"tpr_phrases,omitempty"`
	}
)

// Unit returns the unit with the given id, in array order.
func (m ModuleRecord) Unit(unitID string) (UnitRecord, bool) {
	for _, u := range m.Units {
		if u.ID == unitID {
			return u, true
		}
	}
	return UnitRecord{}, false
}

// Lesson returns the lesson with the given id within the unit.
func (u UnitRecord) Lesson(lessonID string) (LessonRecord, bool) {
	for _, l := range u.Lessons {
		if l.ID == lessonID {
			return l, true
		}
	}
	return LessonRecord{}, false
}
