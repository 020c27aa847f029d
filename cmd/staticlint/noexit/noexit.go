// Package noexit содержит анализатор, который запрещает прямой вызов os.Exit
// в пакете main. Завершение с ошибкой идёт через аннотацию раннера или
// logger.Fatal, чтобы причина всегда попадала в лог шага.
package noexit

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// Analyzer запрещает использовать os.Exit в пакете main.
var Analyzer = &analysis.Analyzer{
	Name: "noexit",
	Doc:  "запрещает использовать os.Exit в пакете main",
	Run:  run,
}

// NewAnalyzer возвращает анализатор noexit.
func NewAnalyzer() *analysis.Analyzer {
	return Analyzer
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	for _, file := range pass.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			if fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func); ok && fn.FullName() == "os.Exit" {
				pass.Reportf(call.Pos(), "вызов os.Exit в пакете main запрещён")
			}
			return true
		})
	}
	return nil, nil
}
