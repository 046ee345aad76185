package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultController(t *testing.T) *Controller {
	t.Helper()

	c, err := NewController(DefaultQuestions())
	require.NoError(t, err)

	return c
}

func TestNewController_FreshState(t *testing.T) {
	c := newDefaultController(t)

	assert.Equal(t, State{}, c.State())
	assert.Equal(t, 0, c.State().CurrentIndex)
	assert.Equal(t, 0, c.State().Score)
	assert.Equal(t, "", c.State().EnteredName)
	assert.Equal(t, "Score: 0/3", c.DisplaySummary())
	assert.Equal(t, PhaseInProgress, c.Phase())
	assert.Equal(t, 3, c.QuestionCount())
}

func TestNewController_InvalidQuestions(t *testing.T) {
	c, err := NewController(nil)
	assert.ErrorIs(t, err, ErrInvalidSet)
	assert.Nil(t, c)

	c, err = NewController([]Question{{Text: "Q?", Options: []string{"A"}, Correct: 0}})
	assert.ErrorIs(t, err, ErrInvalidSet)
	assert.Nil(t, c)
}

func TestNewController_CopiesQuestions(t *testing.T) {
	questions := DefaultQuestions()

	c, err := NewController(questions)
	require.NoError(t, err)

	questions[0].Options[2] = "Rome"
	questions[0].Correct = 0

	q, ok := c.CurrentQuestion()
	require.True(t, ok)
	assert.Equal(t, "Paris", q.Options[2])

	q.Options[0] = "Paris"
	c.Answer(0)
	assert.Equal(t, 0, c.State().Score)
}

func TestController_Scenarios(t *testing.T) {
	c := newDefaultController(t)

	// A: правильный ответ на первый вопрос
	c.Answer(2)
	assert.Equal(t, State{CurrentIndex: 1, Score: 1}, c.State())
	assert.Equal(t, PhaseInProgress, c.Phase())

	// B: неправильный ответ на второй вопрос
	c.Answer(0)
	assert.Equal(t, State{CurrentIndex: 2, Score: 1}, c.State())

	// C: правильный ответ на третий вопрос
	c.Answer(0)
	assert.Equal(t, State{CurrentIndex: 3, Score: 2}, c.State())
	assert.Equal(t, PhaseComplete, c.Phase())

	_, ok := c.CurrentQuestion()
	assert.False(t, ok)

	// D
	c.SubmitName("Ada")
	assert.Equal(t, "Ada's Score: 2/3", c.DisplaySummary())

	// E
	c.Restart()
	assert.Equal(t, State{}, c.State())
	assert.Equal(t, "Score: 0/3", c.DisplaySummary())
	assert.Equal(t, PhaseInProgress, c.Phase())
}

func TestController_AnswerOutOfRange(t *testing.T) {
	testCases := []struct {
		name   string
		option int
	}{
		{name: "negative", option: -1},
		{name: "past last option", option: 4},
		{name: "huge", option: 1 << 30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newDefaultController(t)

			c.Answer(tc.option)
			assert.Equal(t, State{CurrentIndex: 1, Score: 0}, c.State())
		})
	}
}

func TestController_AnswerAfterComplete(t *testing.T) {
	c := newDefaultController(t)

	c.Answer(2)
	c.Answer(1)
	c.Answer(0)
	c.SubmitName("Ada")
	require.Equal(t, PhaseComplete, c.Phase())

	before := c.State()
	for i := -1; i < 5; i++ {
		assert.NotPanics(t, func() { c.Answer(i) })
	}
	assert.Equal(t, before, c.State())
	assert.Equal(t, "Ada's Score: 3/3", c.DisplaySummary())
}

func TestController_ScoreBounds(t *testing.T) {
	options := []int{-1, 0, 1, 2, 3, 4}

	var walk func(c *Controller, calls int)
	walk = func(c *Controller, calls int) {
		state := c.State()
		assert.LessOrEqual(t, state.Score, calls)
		assert.LessOrEqual(t, state.Score, c.QuestionCount())
		assert.LessOrEqual(t, state.CurrentIndex, c.QuestionCount())

		if calls == 4 {
			return
		}

		for _, opt := range options {
			next := &Controller{questions: c.questions, state: state}
			next.Answer(opt)
			assert.GreaterOrEqual(t, next.State().Score, state.Score)
			assert.GreaterOrEqual(t, next.State().CurrentIndex, state.CurrentIndex)
			walk(next, calls+1)
		}
	}

	walk(newDefaultController(t), 0)
}

func TestController_RestartIdempotent(t *testing.T) {
	once := newDefaultController(t)
	twice := newDefaultController(t)

	for _, c := range []*Controller{once, twice} {
		c.Answer(2)
		c.Answer(1)
		c.SubmitName("Grace")
	}

	once.Restart()
	twice.Restart()
	twice.Restart()

	assert.Equal(t, once.State(), twice.State())
	assert.Equal(t, State{}, twice.State())
}

func TestController_SubmitNameRoundTrip(t *testing.T) {
	names := []string{
		"",
		"Ada",
		"  padded  ",
		"O'Brien",
		"Zoë 🚀",
		"line\nbreak",
		"%s %d {}",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			c := newDefaultController(t)

			c.SubmitName(name)
			assert.Equal(t, name, c.State().EnteredName)
		})
	}
}

func TestController_DisplaySummary(t *testing.T) {
	c := newDefaultController(t)
	c.Answer(2)

	assert.Equal(t, "Score: 1/3", c.DisplaySummary())

	c.SubmitName("Linus")
	assert.Equal(t, "Linus's Score: 1/3", c.DisplaySummary())

	c.SubmitName("")
	assert.Equal(t, "Score: 1/3", c.DisplaySummary())
}

func TestLetterToIndex(t *testing.T) {
	idx, ok := LetterToIndex("C")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = LetterToIndex("Z")
	assert.False(t, ok)

	assert.Equal(t, "B", IndexToLetter(1))
	assert.Equal(t, "", IndexToLetter(6))
	assert.Equal(t, "", IndexToLetter(-1))
}
