// Package secretlog содержит анализатор, который запрещает раскрывать
// учётные данные (config.Secret.Reveal) за пределами пакетов config и client.
// Все остальные пакеты получают секреты только в скрытом виде.
package secretlog

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

const (
	secretPkg  = "github.com/Totarae/akamai-purge/internal/config"
	secretType = "Secret"
)

// allowed перечисляет пакеты, которым разрешено вызывать Reveal.
var allowed = []string{
	"github.com/Totarae/akamai-purge/internal/config",
	"github.com/Totarae/akamai-purge/internal/client",
}

// Analyzer запрещает вызов Secret.Reveal вне разрешённых пакетов.
var Analyzer = &analysis.Analyzer{
	Name: "secretlog",
	Doc:  "запрещает вызывать config.Secret.Reveal вне пакетов config и client",
	Run:  run,
}

// NewAnalyzer возвращает анализатор secretlog.
func NewAnalyzer() *analysis.Analyzer {
	return Analyzer
}

func run(pass *analysis.Pass) (interface{}, error) {
	if isAllowed(pass.Pkg.Path()) {
		return nil, nil
	}

	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			sel, ok := n.(*ast.SelectorExpr)
			if !ok || sel.Sel.Name != "Reveal" {
				return true
			}

			fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
			if !ok {
				return true
			}
			sig, ok := fn.Type().(*types.Signature)
			if !ok || sig.Recv() == nil {
				return true
			}
			named, ok := sig.Recv().Type().(*types.Named)
			if !ok {
				return true
			}
			obj := named.Obj()
			if obj.Pkg() != nil && obj.Pkg().Path() == secretPkg && obj.Name() == secretType {
				pass.Reportf(sel.Pos(), "раскрытие секрета вне пакетов config и client запрещено")
			}
			return true
		})
	}
	return nil, nil
}

func isAllowed(path string) bool {
	// тесты пакета анализируются как "<path> [<path>.test]" и "<path>_test"
	path = strings.TrimSuffix(strings.SplitN(path, " ", 2)[0], "_test")
	for _, p := range allowed {
		if path == p {
			return true
		}
	}
	return false
}
