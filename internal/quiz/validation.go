package quiz

import (
	"encoding/json"
	"fmt"
)

// DefaultTitle — заголовок встроенного набора вопросов.
const DefaultTitle = "Quiz App"

// DefaultQuestions возвращает встроенный набор из трёх вопросов.
func DefaultQuestions() []Question {
	return []Question{
		{
			Text:    "What is the capital of France?",
			Options: []string{"Berlin", "Madrid", "Paris", "Lisbon"},
			Correct: 2,
		},
		{
			Text:    "Which is the largest planet?",
			Options: []string{"Earth", "Jupiter", "Mars", "Venus"},
			Correct: 1,
		},
		{
			Text:    "Who wrote '1984'?",
			Options: []string{"Orwell", "Shakespeare", "Dickens", "Austen"},
			Correct: 0,
		},
	}
}

// DefaultSet возвращает встроенный набор с заголовком.
func DefaultSet() *Set {
	return &Set{Title: DefaultTitle, Questions: DefaultQuestions()}
}

// LoadSet парсит JSON и проверяет набор вопросов.
func LoadSet(data []byte) (*Set, error) {
	set := &Set{}
	if err := json.Unmarshal(data, set); err != nil {
		return nil, fmt.Errorf("cannot parse question set: %w", err)
	}

	if set.Title == "" {
		return nil, fmt.Errorf("%w: missing field title", ErrInvalidSet)
	}

	if err := Validate(set.Questions); err != nil {
		return nil, fmt.Errorf("cannot load question set, %w", err)
	}

	return set, nil
}

// Validate проверяет на корректность список вопросов.
func Validate(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: need at least one question", ErrInvalidSet)
	}

	for i, question := range questions {
		if question.Text == "" {
			return fmt.Errorf("%w: missing field text of %d question", ErrInvalidSet, i)
		}

		if len(question.Options) < 2 {
			return fmt.Errorf("%w: amount of options must be at least two in %d question", ErrInvalidSet, i)
		}

		if len(question.Options) > len(AnswerLetters) {
			return fmt.Errorf("%w: too many options in %d question, max %d", ErrInvalidSet, i, len(AnswerLetters))
		}

		if question.Correct < 0 {
			return fmt.Errorf("%w: index of correct answer must not be negative in %d question", ErrInvalidSet, i)
		}

		if question.Correct >= len(question.Options) {
			return fmt.Errorf("%w: index of correct answer in %d question is out of range", ErrInvalidSet, i)
		}
	}

	return nil
}
