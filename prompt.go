package questionbank

import "fmt"

// BuildPrompt renders the instruction template for the given question
// type. Each template pins down the exact field order and the "|"
// delimiter, forbids the decorations models love to add (lettered
// options, explanations, numbering), and shows one worked example.
// Unrecognized types get the MCQ template. Always returns a prompt.
func BuildPrompt(qt QuestionType, topic string, count int, difficulty string) string {
	return specFor(qt).prompt(topic, count, difficulty)
}

func promptMCQ(topic string, count int, difficulty string) string {
	return fmt.Sprintf(`Generate exactly %d %s difficulty multiple-choice questions on "%s".

VERY IMPORTANT RULES:
- Do NOT use A), B), C), D)
- Do NOT write Answer or explanation
- Do NOT number questions
- Do NOT repeat questions
- Output plain text only

STRICT FORMAT:
Question | Option1 | Option2 | Option3 | Option4 | CorrectOptionNumber

CorrectOptionNumber MUST be 1, 2, 3, or 4

Example:
Which organelle produces ATP? | Nucleus | Mitochondria | Golgi apparatus | Ribosome | 2
`, count, difficulty, topic)
}

func promptTF(topic string, count int, difficulty string) string {
	return fmt.Sprintf(`Generate exactly %d %s difficulty true/false questions on "%s".

STRICT RULES:
- Only use True and False as the two options
- No explanations
- No numbering
- No extra text

FORMAT ONLY:
Question | True | False | CorrectOptionNumber

CorrectOptionNumber must be 1 or 2

Example:
The sun rises in the east | True | False | 1
`, count, difficulty, topic)
}

func promptMRQ(topic string, count int, difficulty string) string {
	return fmt.Sprintf(`Generate exactly %d %s difficulty multiple-response questions on "%s".

VERY IMPORTANT RULES:
- Do NOT use A), B), C), D)
- Do NOT write Answer or explanation
- Do NOT number questions
- Do NOT repeat questions
- Output plain text only

STRICT FORMAT:
Question | Option1 | Option2 | Option3 | Option4 | CorrectOptionNumbers

CorrectOptionNumbers MUST be comma-separated values (e.g., 1,3 or 2,4)

Example:
Which of the following are programming languages? | Python | HTML | Java | CSS | 1,3
`, count, difficulty, topic)
}

func promptFIBDragAndDrop(topic string, count int, difficulty string) string {
	return fmt.Sprintf(`Generate exactly %d %s difficulty fill-in-the-blank drag-and-drop questions on "%s".

VERY IMPORTANT RULES:
- Write ___ where the blank goes
- Do NOT use A), B), C), D)
- Do NOT write Answer or explanation
- Do NOT number questions
- Output plain text only

STRICT FORMAT:
Question with ___ for the blank | Option1 | Option2 | Option3 | Option4 | CorrectOptionNumbers

CorrectOptionNumbers MUST be comma-separated values (e.g., 2 or 1,3)

Example:
Water is a compound of hydrogen and ___ | nitrogen | oxygen | carbon | helium | 2
`, count, difficulty, topic)
}

func promptFIBDropdown(topic string, count int, difficulty string) string {
	return fmt.Sprintf(`Generate exactly %d %s difficulty fill-in-the-blank dropdown questions on "%s".

VERY IMPORTANT RULES:
- Write ___ where the blank goes
- Do NOT use A), B), C), D)
- Do NOT write Answer or explanation
- Do NOT number questions
- Output plain text only

STRICT FORMAT:
Question with ___ for the blank | Option1 | Option2 | Option3 | Option4 | CorrectOptionNumber

CorrectOptionNumber MUST be 1, 2, 3, or 4

Example:
The chemical symbol for gold is ___ | Ag | Au | Gd | Go | 2
`, count, difficulty, topic)
}

func promptFIBText(topic string, count int, difficulty string) string {
	return fmt.Sprintf(`Generate exactly %d %s difficulty fill-in-the-blank questions on "%s" where the student types the answer.

VERY IMPORTANT RULES:
- Write ___ where the blank goes
- The answer must be a single short word or phrase
- Do NOT write explanations
- Do NOT number questions
- Output plain text only

STRICT FORMAT:
Question with ___ for the blank | Answer

Example:
The capital of France is ___ | Paris
`, count, difficulty, topic)
}

func promptMatching(topic string, count int, difficulty string) string {
	return fmt.Sprintf(`Generate exactly %d %s difficulty matching questions on "%s".

VERY IMPORTANT RULES:
- Left and right items are comma-separated, with the same number of items on each side
- Pairs use LeftNumber-RightNumber
- Do NOT write explanations
- Do NOT number questions
- Output plain text only

STRICT FORMAT:
Question | LeftItem1,LeftItem2,LeftItem3 | RightItem1,RightItem2,RightItem3 | CorrectPairs

CorrectPairs MUST be comma-separated LeftNumber-RightNumber values (e.g., 1-2,2-3,3-1)

Example:
Match each country to its capital | France,Japan,Egypt | Cairo,Paris,Tokyo | 1-2,2-3,3-1
`, count, difficulty, topic)
}

func promptSequencing(topic string, count int, difficulty string) string {
	return fmt.Sprintf(`Generate exactly %d %s difficulty sequencing questions on "%s".

VERY IMPORTANT RULES:
- Items are comma-separated and listed in shuffled order
- CorrectOrderNumbers lists the item numbers in their correct order
- Do NOT write explanations
- Do NOT number questions
- Output plain text only

STRICT FORMAT:
Question | Item1,Item2,Item3,Item4 | CorrectOrderNumbers

Example:
Order the phases of software delivery | Coding,Design,Testing,Deployment | 2,1,3,4
`, count, difficulty, topic)
}
