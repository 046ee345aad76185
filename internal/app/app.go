package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/letsssgooo/quizApp/internal/events/fetcher"
	"github.com/letsssgooo/quizApp/internal/events/sender"
	"github.com/letsssgooo/quizApp/internal/quiz"
	"github.com/letsssgooo/quizApp/internal/view"
)

const (
	msgHelp = `Answer with the option letter (A, B, ...) or its number (1, 2, ...).
When the quiz is complete: /name <your name> to sign your score.
/restart starts again at any time, /quit exits.`

	msgUnknownInput  = "Unknown input, type /help for usage."
	msgInvalidOption = "There is no such option, pick one of the listed answers."
	msgNameTooEarly  = "Finish the quiz before entering your name."
	msgAlreadyDone   = "The quiz is complete. Use /name or /restart."
)

// App связывает ввод пользователя, контроллер квиза и вывод.
type App struct {
	fetcher    fetcher.Fetcher
	sender     sender.Sender
	controller *quiz.Controller
	title      string
	log        *slog.Logger
	runID      string
}

// New создаёт новое приложение.
func New(f fetcher.Fetcher, s sender.Sender, set *quiz.Set, log *slog.Logger) (*App, error) {
	controller, err := quiz.NewController(set.Questions)
	if err != nil {
		return nil, err
	}

	return &App{
		fetcher:    f,
		sender:     s,
		controller: controller,
		title:      set.Title,
		log:        log,
		runID:      uuid.NewString(),
	}, nil
}

// Controller возвращает контроллер квиза.
func (a *App) Controller() *quiz.Controller {
	return a.controller
}

// Run обрабатывает ввод, пока он не закончится, не придёт /quit или не отменят ctx.
func (a *App) Run(ctx context.Context) error {
	a.log.Info("quiz started", "run_id", a.runID, "questions", a.controller.QuestionCount())

	if err := a.render(); err != nil {
		return err
	}

	for {
		input, err := a.fetcher.Fetch(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				a.log.Info("quiz stopped", "run_id", a.runID, "reason", err)
				return nil
			}
			return fmt.Errorf("cannot read input: %w", err)
		}

		quit, err := a.HandleInput(input)
		if err != nil {
			return err
		}

		if quit {
			a.log.Info("quiz stopped", "run_id", a.runID, "reason", "quit")
			return nil
		}
	}
}

// HandleInput обрабатывает одно событие ввода.
// Возвращает true, если пользователь хочет выйти.
func (a *App) HandleInput(input fetcher.Input) (bool, error) {
	cmd := parseCommand(input.Text)

	switch cmd.kind {
	case cmdQuit:
		return true, nil
	case cmdHelp:
		return false, a.sender.Message(msgHelp)
	case cmdRestart:
		a.controller.Restart()
		a.runID = uuid.NewString()
		a.log.Info("quiz restarted", "run_id", a.runID)
		return false, a.render()
	case cmdName:
		if a.controller.Phase() != quiz.PhaseComplete {
			return false, a.sender.Message(msgNameTooEarly)
		}
		a.controller.SubmitName(cmd.name)
		a.log.Debug("name submitted", "run_id", a.runID, "empty", cmd.name == "")
		return false, a.render()
	case cmdAnswer:
		return false, a.answer(cmd.option)
	}

	if strings.TrimSpace(input.Text) == "" {
		return false, nil
	}

	return false, a.sender.Message(msgUnknownInput)
}

func (a *App) answer(option int) error {
	question, ok := a.controller.CurrentQuestion()
	if !ok {
		return a.sender.Message(msgAlreadyDone)
	}

	if option < 0 || option >= len(question.Options) {
		return a.sender.Message(msgInvalidOption)
	}

	before := a.controller.State()
	a.controller.Answer(option)
	after := a.controller.State()

	a.log.Debug("answer",
		"run_id", a.runID,
		"question", before.CurrentIndex,
		"option", option,
		"correct", after.Score > before.Score,
	)

	if a.controller.Phase() == quiz.PhaseComplete {
		a.log.Info("quiz complete", "run_id", a.runID, "score", after.Score, "total", a.controller.QuestionCount())
	}

	return a.render()
}

func (a *App) render() error {
	return a.sender.View(view.Render(a.title, a.controller))
}
