package sender

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/letsssgooo/quizApp/internal/view"
)

// WriterSender реализует вывод в io.Writer.
type WriterSender struct {
	w io.Writer
}

// NewWriterSender создает новый объект структуры WriterSender.
func NewWriterSender(w io.Writer) *WriterSender {
	return &WriterSender{w: w}
}

// View выводит экран квиза.
func (s *WriterSender) View(v view.View) error {
	_, err := fmt.Fprint(s.w, "\n"+view.Format(v)+"> ")
	return err
}

// Message выводит короткое сообщение.
func (s *WriterSender) Message(text string) error {
	_, err := fmt.Fprintln(s.w, color.MagentaString(text))
	return err
}
