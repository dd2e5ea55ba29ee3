package questionbank

// GenerationRequest describes one question-generation call.
// Topic is the only mandatory field; everything else has a default.
// The three GUID fields are opaque identifiers owned by the caller and
// are copied into every generated record unchanged.
type GenerationRequest struct {
	Topic            string       `json:"topic"`
	ProductGUID      string       `json:"productguid"`
	OrganizationGUID string       `json:"organizationguid"`
	RepositoryGUID   string       `json:"repositoryguid"`
	Type             QuestionType `json:"type"`
	Count            int          `json:"count"`
	Model            string       `json:"model"`
	Difficulty       string       `json:"difficulty"`
}

// Result is the successful response payload: one record per question the
// model produced. The length may differ from the requested count; the
// count is advisory to the model and is not reconciled here.
type Result struct {
	Questions []QuestionRecord `json:"questions"`
}

// QuestionRecord is the outer envelope consumed by the question bank.
type QuestionRecord struct {
	ProductGUID      string   `json:"productguid"`
	OrganizationGUID string   `json:"organizationguid"`
	AssetGUIDs       []string `json:"assetguids"`
	Question         Question `json:"question"`
}

// Question carries the question body, its type-specific data block and
// the answer key.
type Question struct {
	RepositoryGUID  string       `json:"repositoryguid"`
	QuestionGUID    string       `json:"questionguid"`
	QuestionCode    string       `json:"questioncode"`
	QuestionText    string       `json:"questiontext"`
	QuestionType    string       `json:"questiontype"`
	QuestionLevel   string       `json:"questionlevel"`
	QuestionLevelID int          `json:"questionlevelid"`
	Language        string       `json:"language"`
	Metadata        []string     `json:"metadata"`
	Feedback        Feedback     `json:"feedback"`
	Data            QuestionData `json:"data"`
	Answers         []Answer     `json:"answers"`
	Hints           Hints        `json:"hints"`
	PassageID       *string      `json:"passageid"`
}

// QuestionData holds the per-type nested structure. Exactly one family of
// fields is populated for a given question type: Choices for MCQ/TF/MRQ,
// Blanks for the fill-in-blank and matching variants, Options for
// matching and sequencing.
type QuestionData struct {
	Choices     []Choice     `json:"choices,omitempty"`
	Blanks      []Blank      `json:"blanks,omitempty"`
	Options     []Option     `json:"options,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// Choice is a selectable option for the choice-based types.
// Ids and order are 1-based and positional within the record.
type Choice struct {
	ChoiceID    int    `json:"choiceid"`
	ChoiceGUID  string `json:"choiceguid"`
	ChoiceOrder int    `json:"choiceorder"`
	ChoiceText  string `json:"choicetext"`
}

// Blank is a gap in a fill-in-blank question, or a left-hand item in a
// matching question. Dropdown and drag-and-drop blanks carry their own
// option list; matching blanks carry text and pair with top-level Options.
type Blank struct {
	BlankID   int      `json:"blankid"`
	BlankGUID string   `json:"blankguid"`
	BlankText string   `json:"blanktext,omitempty"`
	Options   []Option `json:"options,omitempty"`
}

// Option is a draggable/selectable item for the blank, matching and
// sequencing types.
type Option struct {
	OptionID   int    `json:"optionid"`
	OptionText string `json:"optiontext"`
}

// Answer is one row of the answer key. Which id fields are set depends on
// the question type: ChoiceID for choice types, BlankID+OptionID for
// matching and dropdown/drag blanks, BlankID+AnswerText for text entry,
// OrderID+OptionID for sequencing. Correct rows score 2; for choice types
// every choice gets a row and incorrect ones score 0.
type Answer struct {
	ChoiceID   int    `json:"choiceid,omitempty"`
	BlankID    int    `json:"blankid,omitempty"`
	OptionID   int    `json:"optionid,omitempty"`
	OrderID    int    `json:"orderid,omitempty"`
	AnswerText string `json:"answertext,omitempty"`
	Score      int    `json:"score"`
	IsCorrect  *bool  `json:"iscorrect,omitempty"`
}

// Preferences are rendering hints for choice-based types.
type Preferences struct {
	IsHorizontalAlignment bool `json:"ishorizontalalignment"`
	Shuffle               bool `json:"shuffle"`
	MinChoices            int  `json:"minchoices,omitempty"`
	MaxChoices            int  `json:"maxchoices,omitempty"`
}

// Feedback flags are always emitted false; authoring tools fill feedback
// in downstream.
type Feedback struct {
	IsQuestionFeedback bool `json:"isquestionfeedback"`
	IsChoiceFeedback   bool `json:"ischoicefeedback"`
}

// Hints are emitted empty for the same reason.
type Hints struct {
	Hint1 string `json:"hint1"`
	Hint2 string `json:"hint2"`
	Hint3 string `json:"hint3"`
}
