package cli

import (
	"flag"
	"io"
	"time"
)

const shortIDLen = 8

// shortID сокращает идентификатор для вывода
func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// formatMillis форматирует unix ms; ноль означает "never"
func formatMillis(ms int64) string {
	if ms == 0 {
		return "never"
	}
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}

// maskToken скрывает токен, оставляя последние 4 символа
func maskToken(token string) string {
	if len(token) < 8 {
		return "****" // Полностью маскируем короткие токены
	}
	return "****" + token[len(token)-4:]
}

// newFlagSet создает набор флагов подкоманды без вывода в stderr
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
