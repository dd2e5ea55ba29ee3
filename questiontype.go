package questionbank

// QuestionType identifies the interaction format of a generated question.
// The tag picks both the prompt template sent to the model and the parser
// that turns the model's delimited output into a record.
type QuestionType string

const (
	TypeMCQ              QuestionType = "MCQ"
	TypeTF               QuestionType = "TF"
	TypeMRQ              QuestionType = "MRQ"
	TypeFIBDragAndDrop   QuestionType = "FIBDnD"
	TypeFIBDropdown      QuestionType = "FIBDD"
	TypeFIBText          QuestionType = "FIBT"
	TypeMTF              QuestionType = "MTF"
	TypeMatchingSequence QuestionType = "MatchingSequence"
	TypeMatchingConnect  QuestionType = "MatchingConnectThePoints"
	TypeSequencing       QuestionType = "Sequencing"
)

// typeSpec binds one question type to both halves of its pipeline: the
// prompt template and the record builder. Every registered type must
// define both.
type typeSpec struct {
	prompt func(topic string, count int, difficulty string) string
	build  func(rb *RecordBuilder, fields []string, index int) QuestionRecord

	// fields is the expected field arity of one logical question.
	fields int

	// grouped marks formats whose logical questions may span multiple
	// rendered lines; their raw text is flattened and chunked by arity
	// instead of being parsed line by line.
	grouped bool
}

var typeSpecs = map[QuestionType]typeSpec{
	TypeMCQ:              {prompt: promptMCQ, build: (*RecordBuilder).buildMCQ, fields: 6},
	TypeTF:               {prompt: promptTF, build: (*RecordBuilder).buildTF, fields: 4},
	TypeMRQ:              {prompt: promptMRQ, build: (*RecordBuilder).buildMRQ, fields: 6},
	TypeFIBDragAndDrop:   {prompt: promptFIBDragAndDrop, build: (*RecordBuilder).buildFIBDragAndDrop, fields: 6},
	TypeFIBDropdown:      {prompt: promptFIBDropdown, build: (*RecordBuilder).buildFIBDropdown, fields: 6},
	TypeFIBText:          {prompt: promptFIBText, build: (*RecordBuilder).buildFIBText, fields: 2},
	TypeMTF:              {prompt: promptMatching, build: (*RecordBuilder).buildMatching, fields: 4, grouped: true},
	TypeMatchingSequence: {prompt: promptMatching, build: (*RecordBuilder).buildMatching, fields: 4, grouped: true},
	TypeMatchingConnect:  {prompt: promptMatching, build: (*RecordBuilder).buildMatching, fields: 4, grouped: true},
	TypeSequencing:       {prompt: promptSequencing, build: (*RecordBuilder).buildSequencing, fields: 3, grouped: true},
}

// specFor returns the pipeline spec for a type tag. Unrecognized tags
// fall back to the MCQ shape; the caller keeps the original tag for the
// emitted record.
func specFor(qt QuestionType) typeSpec {
	if spec, ok := typeSpecs[qt]; ok {
		return spec
	}
	return typeSpecs[TypeMCQ]
}
