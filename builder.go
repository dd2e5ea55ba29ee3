package questionbank

import (
	"fmt"
	"strconv"
	"strings"
)

// Question codes are offset so the first generated item reads
// NSE-Item-<TYPE>-101, matching the numbering the question bank's legacy
// importer expects.
const questionCodeOffset = 101

// RecordBuilder assembles QuestionRecords from parsed field slices.
// One builder serves one generation request; it carries the request's
// pass-through identifiers and the GUID source.
type RecordBuilder struct {
	Req   GenerationRequest
	GUIDs GUIDSource
}

// NewRecordBuilder creates a builder for the given request, defaulting to
// placeholder GUIDs.
func NewRecordBuilder(req GenerationRequest) *RecordBuilder {
	return &RecordBuilder{Req: req, GUIDs: PlaceholderGUIDs}
}

// Build dispatches to the type-specific builder for the request's
// question type. index is the 0-based position of the line/group within
// the model's output.
func (rb *RecordBuilder) Build(fields []string, index int) QuestionRecord {
	return specFor(rb.Req.Type).build(rb, fields, index)
}

// pad extends fields with empty strings up to the type's arity. A short
// line degrades into a record with blank fields; it is never dropped
// and never fails the request.
func pad(fields []string, n int) []string {
	for len(fields) < n {
		fields = append(fields, "")
	}
	return fields
}

func (rb *RecordBuilder) buildMCQ(fields []string, index int) QuestionRecord {
	f := pad(fields, 6)
	choices := rb.choices(f[1:5], true)
	correct := parseIndexSet(f[5])
	return rb.record(f[0], index, recordParts{
		data:    QuestionData{Choices: choices, Preferences: &Preferences{IsHorizontalAlignment: true, Shuffle: true}},
		answers: choiceAnswers(choices, correct),
	})
}

func (rb *RecordBuilder) buildTF(fields []string, index int) QuestionRecord {
	f := pad(fields, 4)
	// TF option text is the literal True/False the model emitted; no
	// label stripping.
	choices := rb.choices(f[1:3], false)
	correct := parseIndexSet(f[3])
	return rb.record(f[0], index, recordParts{
		data:    QuestionData{Choices: choices, Preferences: &Preferences{IsHorizontalAlignment: true}},
		answers: choiceAnswers(choices, correct),
	})
}

func (rb *RecordBuilder) buildMRQ(fields []string, index int) QuestionRecord {
	f := pad(fields, 6)
	choices := rb.choices(f[1:5], true)
	correct := parseIndexSet(f[5])
	return rb.record(f[0], index, recordParts{
		data: QuestionData{Choices: choices, Preferences: &Preferences{
			IsHorizontalAlignment: true,
			Shuffle:               true,
			MinChoices:            2,
			MaxChoices:            3,
		}},
		answers: choiceAnswers(choices, correct),
	})
}

func (rb *RecordBuilder) buildFIBDragAndDrop(fields []string, index int) QuestionRecord {
	return rb.buildBlankWithOptions(fields, index)
}

func (rb *RecordBuilder) buildFIBDropdown(fields []string, index int) QuestionRecord {
	return rb.buildBlankWithOptions(fields, index)
}

// buildBlankWithOptions covers both FIB variants that carry an option
// list: one blank holding four options, answers naming the correct
// option ids. Drag-and-drop may declare several correct ids; dropdown
// declares one, which parseIndexSet handles as a degenerate set.
func (rb *RecordBuilder) buildBlankWithOptions(fields []string, index int) QuestionRecord {
	f := pad(fields, 6)
	options := makeOptions(cleanAll(f[1:5]))
	blank := Blank{BlankID: 1, BlankGUID: rb.GUIDs.NewGUID(), Options: options}

	var answers []Answer
	for _, id := range parseIndexList(f[5]) {
		answers = append(answers, Answer{BlankID: 1, OptionID: id, Score: correctScore})
	}
	return rb.record(f[0], index, recordParts{
		data:    QuestionData{Blanks: []Blank{blank}},
		answers: answers,
	})
}

func (rb *RecordBuilder) buildFIBText(fields []string, index int) QuestionRecord {
	f := pad(fields, 2)
	blank := Blank{BlankID: 1, BlankGUID: rb.GUIDs.NewGUID()}
	return rb.record(f[0], index, recordParts{
		data:    QuestionData{Blanks: []Blank{blank}},
		answers: []Answer{{BlankID: 1, AnswerText: f[1], Score: correctScore}},
	})
}

func (rb *RecordBuilder) buildMatching(fields []string, index int) QuestionRecord {
	f := pad(fields, 4)

	var blanks []Blank
	for i, item := range splitList(f[1]) {
		blanks = append(blanks, Blank{BlankID: i + 1, BlankGUID: rb.GUIDs.NewGUID(), BlankText: item})
	}
	options := makeOptions(splitList(f[2]))

	var answers []Answer
	for _, pair := range splitList(f[3]) {
		left, right, ok := strings.Cut(pair, "-")
		if !ok {
			continue
		}
		l, lerr := strconv.Atoi(strings.TrimSpace(left))
		r, rerr := strconv.Atoi(strings.TrimSpace(right))
		if lerr != nil || rerr != nil {
			continue
		}
		answers = append(answers, Answer{BlankID: l, OptionID: r, Score: correctScore})
	}
	return rb.record(f[0], index, recordParts{
		data:    QuestionData{Blanks: blanks, Options: options},
		answers: answers,
	})
}

func (rb *RecordBuilder) buildSequencing(fields []string, index int) QuestionRecord {
	f := pad(fields, 3)
	options := makeOptions(splitList(f[1]))

	// The order list names option ids in their correct sequence:
	// position i in the list becomes orderid i+1.
	var answers []Answer
	for i, id := range parseIndexList(f[2]) {
		answers = append(answers, Answer{OrderID: i + 1, OptionID: id, Score: correctScore})
	}
	return rb.record(f[0], index, recordParts{
		data:    QuestionData{Options: options},
		answers: answers,
	})
}

const correctScore = 2

type recordParts struct {
	data    QuestionData
	answers []Answer
}

// record assembles the envelope shared by every type.
func (rb *RecordBuilder) record(questionText string, index int, parts recordParts) QuestionRecord {
	level := rb.Req.Difficulty
	return QuestionRecord{
		ProductGUID:      rb.Req.ProductGUID,
		OrganizationGUID: rb.Req.OrganizationGUID,
		AssetGUIDs:       []string{},
		Question: Question{
			RepositoryGUID:  rb.Req.RepositoryGUID,
			QuestionGUID:    rb.GUIDs.NewGUID(),
			QuestionCode:    fmt.Sprintf("NSE-Item-%s-%d", rb.Req.Type, index+questionCodeOffset),
			QuestionText:    "<p>" + questionText + "</p>",
			QuestionType:    string(rb.Req.Type),
			QuestionLevel:   level,
			QuestionLevelID: DifficultyLevelID(level),
			Language:        "English",
			Metadata:        []string{},
			Data:            parts.data,
			Answers:         parts.answers,
		},
	}
}

func (rb *RecordBuilder) choices(texts []string, clean bool) []Choice {
	out := make([]Choice, len(texts))
	for i, t := range texts {
		if clean {
			t = CleanOption(t)
		}
		out[i] = Choice{
			ChoiceID:    i + 1,
			ChoiceGUID:  rb.GUIDs.NewGUID(),
			ChoiceOrder: i + 1,
			ChoiceText:  t,
		}
	}
	return out
}

// choiceAnswers scores every choice: members of the correct set get 2,
// the rest 0. Correctness is decided purely by parsed index membership,
// never re-derived from option text.
func choiceAnswers(choices []Choice, correct map[int]bool) []Answer {
	answers := make([]Answer, len(choices))
	for i, c := range choices {
		isCorrect := correct[c.ChoiceID]
		score := 0
		if isCorrect {
			score = correctScore
		}
		answers[i] = Answer{ChoiceID: c.ChoiceID, Score: score, IsCorrect: &isCorrect}
	}
	return answers
}

func makeOptions(texts []string) []Option {
	out := make([]Option, len(texts))
	for i, t := range texts {
		out[i] = Option{OptionID: i + 1, OptionText: t}
	}
	return out
}

func cleanAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = CleanOption(t)
	}
	return out
}

// parseIndexList parses "2,4" into [2 4], skipping anything that is not
// an integer. A single index is a valid one-element list.
func parseIndexList(s string) []int {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		ids = append(ids, n)
	}
	return ids
}

// parseIndexSet is parseIndexList as a membership set.
func parseIndexSet(s string) map[int]bool {
	set := make(map[int]bool)
	for _, n := range parseIndexList(s) {
		set[n] = true
	}
	return set
}

// splitList splits a comma-separated group field, trimming items and
// dropping empties.
func splitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		items = append(items, part)
	}
	return items
}
