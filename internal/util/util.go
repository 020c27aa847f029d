package util

import (
	"net/url"
	"strings"
)

// IsValidURL сообщает, является ли строка абсолютным URL (есть схема и хост).
// Относительные пути, включая "/", отклоняются, поэтому очистить весь сайт
// через список URL нельзя.
func IsValidURL(candidate string) bool {
	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// BuildPurgeTargets превращает многострочный ввод в список URL для очистки.
// Порядок строк сохраняется, дубликаты не удаляются.
func BuildPurgeTargets(raw string) []string {
	lines := strings.Split(raw, "\n")

	targets := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !IsValidURL(line) {
			continue
		}
		if line == "" {
			continue
		}
		targets = append(targets, line)
	}
	return targets
}
