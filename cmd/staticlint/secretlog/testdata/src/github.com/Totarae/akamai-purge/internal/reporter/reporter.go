package reporter

import (
	"fmt"

	"github.com/Totarae/akamai-purge/internal/config"
)

type Token string

func (t Token) Reveal() string { return string(t) }

func Print(s config.Secret, t Token) {
	fmt.Println(s)
	fmt.Println(t.Reveal())
	fmt.Println(s.Reveal()) // want "раскрытие секрета вне пакетов config и client запрещено"
	mask := s.Reveal        // want "раскрытие секрета вне пакетов config и client запрещено"
	_ = mask
}
