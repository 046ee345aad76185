package quiz

import "fmt"

// Controller владеет состоянием квиза и неизменяемым списком вопросов.
// Controller не потокобезопасен: все операции вызываются из одного цикла событий.
type Controller struct {
	questions []Question
	state     State
}

// NewController создаёт контроллер в начальном состоянии.
// Вопросы копируются, поэтому изменение исходного слайса не влияет на квиз.
func NewController(questions []Question) (*Controller, error) {
	if err := Validate(questions); err != nil {
		return nil, err
	}

	copied := make([]Question, len(questions))
	for i, q := range questions {
		copied[i] = Question{
			Text:    q.Text,
			Options: append([]string(nil), q.Options...),
			Correct: q.Correct,
		}
	}

	return &Controller{questions: copied}, nil
}

// Answer регистрирует ответ на текущий вопрос.
// После завершения квиза вызов ничего не меняет.
func (c *Controller) Answer(optionIndex int) {
	if c.state.CurrentIndex >= len(c.questions) {
		return
	}

	if optionIndex == c.questions[c.state.CurrentIndex].Correct {
		c.state.Score++
	}

	c.state.CurrentIndex++
}

// SubmitName сохраняет имя как есть, без обрезки и проверок.
func (c *Controller) SubmitName(rawText string) {
	c.state.EnteredName = rawText
}

// Restart возвращает квиз в начальное состояние.
func (c *Controller) Restart() {
	c.state = State{}
}

// DisplaySummary возвращает строку со счётом.
func (c *Controller) DisplaySummary() string {
	if c.state.EnteredName == "" {
		return fmt.Sprintf("Score: %d/%d", c.state.Score, len(c.questions))
	}

	return fmt.Sprintf("%s's Score: %d/%d", c.state.EnteredName, c.state.Score, len(c.questions))
}

// State возвращает копию текущего состояния.
func (c *Controller) State() State {
	return c.state
}

// Phase возвращает текущую фазу квиза.
func (c *Controller) Phase() Phase {
	if c.state.CurrentIndex < len(c.questions) {
		return PhaseInProgress
	}

	return PhaseComplete
}

// QuestionCount возвращает количество вопросов.
func (c *Controller) QuestionCount() int {
	return len(c.questions)
}

// CurrentQuestion возвращает текущий вопрос.
// Возвращает false, если квиз завершён.
func (c *Controller) CurrentQuestion() (Question, bool) {
	if c.state.CurrentIndex >= len(c.questions) {
		return Question{}, false
	}

	q := c.questions[c.state.CurrentIndex]
	q.Options = append([]string(nil), q.Options...)

	return q, true
}
