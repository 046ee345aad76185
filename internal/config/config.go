package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

// Config содержит настройки приложения из флагов и переменных окружения.
type Config struct {
	QuestionsPath string     // путь к JSON с вопросами, пусто - встроенный набор
	LogLevel      slog.Level // уровень логирования
	NoColor       bool       // отключить цвета в терминале
}

// Load читает конфигурацию из args и переменных окружения QUIZAPP_*.
// Флаги приоритетнее переменных окружения.
func Load(args []string) (*Config, error) {
	flags := pflag.NewFlagSet("quizapp", pflag.ContinueOnError)
	flags.String("questions", "", "path to a JSON question set (built-in set if empty)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Bool("no-color", false, "disable coloured output")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("quizapp")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	level, err := ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, err
	}

	return &Config{
		QuestionsPath: v.GetString("questions"),
		LogLevel:      level,
		NoColor:       v.GetBool("no-color"),
	}, nil
}

// ParseLevel преобразует строку в slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
}
