package quiz

import "errors"

// Question представляет вопрос квиза.
type Question struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

// Set представляет набор вопросов, загружаемый при старте.
type Set struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// State — изменяемое состояние квиза.
type State struct {
	CurrentIndex int
	Score        int
	EnteredName  string
}

// Phase — фаза квиза.
type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseComplete   Phase = "complete"
)

// ErrInvalidSet возвращается, если набор вопросов некорректен.
var ErrInvalidSet = errors.New("invalid question set")

// AnswerLetters — допустимые буквы для ответов (A-F для до 6 вариантов).
var AnswerLetters = []string{"A", "B", "C", "D", "E", "F"}

// LetterToIndex преобразует букву в индекс (A=0, B=1, ...).
func LetterToIndex(letter string) (int, bool) {
	for i, l := range AnswerLetters {
		if l == letter {
			return i, true
		}
	}

	return -1, false
}

// IndexToLetter преобразует индекс в букву (0=A, 1=B, ...).
func IndexToLetter(idx int) string {
	if idx >= 0 && idx < len(AnswerLetters) {
		return AnswerLetters[idx]
	}

	return ""
}
