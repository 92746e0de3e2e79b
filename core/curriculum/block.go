package curriculum

// Kind tags one renderable piece of lesson content. The set is closed: the
// classifier only ever emits the kinds below, and the rendering layer must
// support every one of them.
type Kind string

const (
	// lesson-level kinds, in classification precedence order
	KindCalendar         Kind = "calendar" // raw moons, owned by the seasonal-calendar widget
	KindOrderedList      Kind = "ordered-list"
	KindContentArray     Kind = "content-array"
	KindKeyValue         Kind = "key-value"
	KindMethodList       Kind = "method-list"
	KindPairList         Kind = "pair-list"
	KindCalendarGrid     Kind = "calendar-grid"
	KindStoryList        Kind = "story-list"
	KindTypeList         Kind = "type-list"
	KindSimpleList       Kind = "simple-list"
	KindApproach         Kind = "approach"
	KindBulletList       Kind = "bullet-list"
	KindChipList         Kind = "chip-list"
	KindGroupedExamples  Kind = "grouped-examples"
	KindModel            Kind = "model"
	KindQuote            Kind = "quote"
	KindKeyTeaching      Kind = "key-teaching"
	KindQuestionList     Kind = "question-list"
	KindStorySummary     Kind = "story-summary"
	KindDetails          Kind = "details"
	KindDifficultyGroups Kind = "difficulty-groups"
	KindNote             Kind = "note"
	KindAttribution      Kind = "attribution"
	KindDivisionList     Kind = "division-list"

	// content-array item kinds
	KindMethodItem    Kind = "method-item"
	KindAnimalItem    Kind = "animal-item"
	KindBilingualItem Kind = "bilingual-item"
	KindEnglishItem   Kind = "english-item"
)

// Block is the output unit of classification: a tagged variant of normalized,
// shape-specific data. Blocks are derived and never persisted; they are
// recomputed on every classification pass.
type Block struct {
	Kind    Kind        `json:"kind"`
	Payload interface{} `json:"payload"`
}

// Payloads. One struct per shape; all fields are plain display data.
type (
	ListPayload struct {
		Label string   `json:"label,omitempty"`
		Items []string `json:"items"`
	}

	KeyValueEntry struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}

	KeyValuePayload struct {
		Entries []KeyValueEntry `json:"entries"`
	}

	ContentArrayPayload struct {
		Items []Block `json:"items"`
	}

	MoonsPayload struct {
		Moons []interface{} `json:"moons"` // handed to the calendar widget untouched
	}

	MethodEntry struct {
		Name  string   `json:"name"`
		Steps []string `json:"steps,omitempty"`
	}

	MethodListPayload struct {
		Methods []MethodEntry `json:"methods"`
	}

	PairEntry struct {
		Term        string `json:"term"`
		Translation string `json:"translation,omitempty"`
		Season      string `json:"season,omitempty"`
		Note        string `json:"note,omitempty"`
	}

	PairListPayload struct {
		Kind    string      `json:"kind"` // source field name: animals, roots, species...
		Label   string      `json:"label"`
		Entries []PairEntry `json:"entries"`
	}

	CalendarMonth struct {
		Month   string   `json:"month"`
		Entries []string `json:"entries"`
	}

	CalendarGridPayload struct {
		Months []CalendarMonth `json:"months"`
	}

	StoryEntry struct {
		Title     string `json:"title"`
		Secwepemc string `json:"secwepemc,omitempty"`
		Moral     string `json:"moral,omitempty"`
		Theme     string `json:"theme,omitempty"`
	}

	StoryListPayload struct {
		Stories []StoryEntry `json:"stories"`
	}

	NamedEntry struct {
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	}

	NamedListPayload struct {
		Label   string       `json:"label,omitempty"`
		Entries []NamedEntry `json:"entries"`
	}

	ApproachPayload struct {
		Name           string   `json:"name"`
		Principle      string   `json:"principle,omitempty"`
		Implementation string   `json:"implementation,omitempty"`
		Advantages     []string `json:"advantages,omitempty"`
	}

	CountExample struct {
		Count string `json:"count"`
		Term  string `json:"term"`
	}

	ExampleGroup struct {
		Category string         `json:"category"`
		Note     string         `json:"note,omitempty"`
		Examples []CountExample `json:"examples,omitempty"`
	}

	GroupedExamplesPayload struct {
		Groups []ExampleGroup `json:"groups"`
	}

	ModelPayload struct {
		Structure  string   `json:"structure,omitempty"`
		Ratio      string   `json:"ratio,omitempty"`
		Goal       string   `json:"goal,omitempty"`
		Activities []string `json:"activities,omitempty"`
	}

	QuotePayload struct {
		Text  string `json:"text"`
		Elder string `json:"elder,omitempty"`
	}

	TextPayload struct {
		Text string `json:"text"`
	}

	StorySummaryPayload struct {
		Title   string `json:"title"`
		Summary string `json:"summary"`
	}

	DetailsPayload struct {
		Duration             string   `json:"duration,omitempty"`
		Location             string   `json:"location,omitempty"`
		Preparation          string   `json:"preparation,omitempty"`
		Attire               []string `json:"attire,omitempty"`
		Tools                []string `json:"tools,omitempty"`
		Skills               []string `json:"skills,omitempty"`
		Tests                []string `json:"tests,omitempty"`
		SpiritualRequirement string   `json:"spiritual_requirement,omitempty"`
	}

	GameEntry struct {
		Name      string `json:"name"`
		Players   string `json:"players,omitempty"`
		Equipment string `json:"equipment,omitempty"`
		Rules     string `json:"rules,omitempty"`
	}

	DifficultyGroupsPayload struct {
		Easy     []GameEntry `json:"easy,omitempty"`
		Medium   []GameEntry `json:"medium,omitempty"`
		Advanced []GameEntry `json:"advanced,omitempty"`
	}

	DivisionEntry struct {
		Name     string   `json:"name"`
		Location string   `json:"location,omitempty"`
		Villages []string `json:"villages"`
	}

	DivisionListPayload struct {
		Divisions []DivisionEntry `json:"divisions"`
	}

	// content-array item payloads

	TitledItemPayload struct {
		Title string `json:"title"`
		Body  string `json:"body,omitempty"`
	}

	BilingualItemPayload struct {
		Secwepemc string `json:"secwepemc,omitempty"`
		English   string `json:"english,omitempty"`
		Season    string `json:"season,omitempty"`
		Note      string `json:"note,omitempty"`
	}
)
