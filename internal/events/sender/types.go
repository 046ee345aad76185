package sender

import "github.com/letsssgooo/quizApp/internal/view"

// Sender определяет основной интерфейс для вывода пользователю.
type Sender interface {
	// View выводит экран квиза.
	View(v view.View) error

	// Message выводит короткое сообщение.
	Message(text string) error
}
