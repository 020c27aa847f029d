// Package main запускает multichecker.
//
// Он включает:
// - стандартные анализаторы go/analysis/passes
// - все SA-анализаторы staticcheck
// - один не-SA анализатор (S1000)
// - ещё один не-SA анализатор (U1000)
// - публичный анализатор bodyclose (ответ Fast Purge API нужно закрывать)
// - собственный анализатор noexit (запрещает os.Exit в пакете main)
// - собственный анализатор secretlog (запрещает раскрывать учётные данные)
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/fieldalignment"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/unused"

	"github.com/Totarae/akamai-purge/cmd/staticlint/noexit"
	"github.com/Totarae/akamai-purge/cmd/staticlint/secretlog"
)

func main() {
	multichecker.Main(analyzers()...)
}

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		shadow.Analyzer,
		structtag.Analyzer,
		nilness.Analyzer,
		fieldalignment.Analyzer,
		printf.Analyzer,
	}

	// SA-анализаторы
	for _, a := range staticcheck.Analyzers {
		if a.Analyzer.Name[:2] == "SA" {
			list = append(list, a.Analyzer)
		}
	}

	// не-SA: упрощения и неиспользуемый код
	if a := findAnalyzer("S1000"); a != nil {
		list = append(list, a)
	}
	list = append(list, unused.Analyzer.Analyzer)

	return append(list,
		bodyclose.Analyzer,
		noexit.NewAnalyzer(),
		secretlog.NewAnalyzer(),
	)
}

func findAnalyzer(name string) *analysis.Analyzer {
	for _, a := range simple.Analyzers {
		if a.Analyzer.Name == name {
			return a.Analyzer
		}
	}
	return nil
}
