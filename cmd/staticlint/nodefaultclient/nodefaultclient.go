// Package nodefaultclient запрещает обращаться к сети через глобальный
// http.DefaultClient и функции-обёртки пакета net/http. Запросы должны идти
// через клиента с заданным базовым адресом и контекстом.
package nodefaultclient

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer сообщает об использовании http.DefaultClient, http.Get, http.Head,
// http.Post и http.PostForm вне тестов.
var Analyzer = &analysis.Analyzer{
	Name:     "nodefaultclient",
	Doc:      "запрещает http.DefaultClient и http.Get/Head/Post/PostForm вне тестов",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var forbidden = map[string]bool{
	"DefaultClient": true,
	"Get":           true,
	"Head":          true,
	"Post":          true,
	"PostForm":      true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.SelectorExpr)(nil)}, func(n ast.Node) {
		sel := n.(*ast.SelectorExpr)
		if !forbidden[sel.Sel.Name] {
			return
		}
		if strings.HasSuffix(pass.Fset.Position(sel.Pos()).Filename, "_test.go") {
			return
		}

		obj := pass.TypesInfo.Uses[sel.Sel]
		if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() != "net/http" {
			return
		}
		// Методы *http.Client с теми же именами разрешены.
		if fn, ok := obj.(*types.Func); ok && fn.Type().(*types.Signature).Recv() != nil {
			return
		}
		pass.Reportf(sel.Pos(), "http.%s использует глобальный клиент; используйте настроенный клиент", sel.Sel.Name)
	})
	return nil, nil
}
