package fetcher

import "context"

// Input представляет одно событие ввода пользователя.
type Input struct {
	Text string
}

// Fetcher определяет основной интерфейс для получения ввода пользователя.
type Fetcher interface {
	// Fetch блокируется до следующего события ввода.
	// Возвращает io.EOF, когда ввод закончился.
	Fetch(ctx context.Context) (Input, error)
}
