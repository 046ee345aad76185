package view

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/letsssgooo/quizApp/internal/quiz"
)

const headingComplete = "Quiz Complete!"

// Option представляет вариант ответа на экране.
type Option struct {
	Letter string
	Text   string
}

// View описывает то, что должно быть показано пользователю.
type View struct {
	Title    string
	Summary  string
	Phase    quiz.Phase
	Heading  string
	Prompt   string
	Options  []Option
	Controls []string
}

// Render читает текущее состояние контроллера и строит описание экрана.
func Render(title string, c *quiz.Controller) View {
	v := View{
		Title:   title,
		Summary: c.DisplaySummary(),
		Phase:   c.Phase(),
	}

	question, ok := c.CurrentQuestion()
	if !ok {
		v.Heading = headingComplete
		v.Controls = []string{
			"/name <your name>  submit your name",
			"/restart           start again",
			"/quit              exit",
		}

		return v
	}

	v.Heading = fmt.Sprintf("Question %d/%d", c.State().CurrentIndex+1, c.QuestionCount())
	v.Prompt = question.Text
	v.Options = make([]Option, 0, len(question.Options))
	for i, text := range question.Options {
		v.Options = append(v.Options, Option{Letter: quiz.IndexToLetter(i), Text: text})
	}
	v.Controls = []string{
		"type a letter or number to answer",
		"/restart  start again",
	}

	return v
}

// Format преобразует View в текст для терминала.
func Format(v View) string {
	var b strings.Builder

	b.WriteString(color.New(color.Bold).Sprint(v.Title))
	b.WriteString("\n")
	b.WriteString(color.HiBlueString(v.Summary))
	b.WriteString("\n\n")
	b.WriteString(color.YellowString(v.Heading))
	b.WriteString("\n")

	if v.Prompt != "" {
		b.WriteString(v.Prompt)
		b.WriteString("\n")
	}

	for _, opt := range v.Options {
		b.WriteString("  ")
		b.WriteString(color.GreenString(opt.Letter + ")"))
		b.WriteString(" ")
		b.WriteString(opt.Text)
		b.WriteString("\n")
	}

	if len(v.Controls) > 0 {
		b.WriteString("\n")
	}

	for _, ctrl := range v.Controls {
		b.WriteString(color.New(color.Faint).Sprint(ctrl))
		b.WriteString("\n")
	}

	return b.String()
}
