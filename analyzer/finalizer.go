package analyzer

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/relguard/relguard/models"
)

// finalizerAnalyzer inspects runtime.SetFinalizer call sites. Finalizer
// function literals must not capture enclosing variables (capturing the
// finalized object keeps it reachable forever), must not be empty, and must
// not panic: a panicking finalizer aborts the program during GC.
var finalizerAnalyzer = &analysis.Analyzer{
	Name:     "finalizer",
	Doc:      "reports unsafe runtime.SetFinalizer usage",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runFinalizer,
}

func runFinalizer(pass *analysis.Pass) (any, error) {
	ins, _ := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if ins == nil {
		return nil, errors.New("missing inspector dependency")
	}
	if pass.TypesInfo == nil {
		return nil, errors.New("type information unavailable")
	}

	nodeFilter := []ast.Node{(*ast.CallExpr)(nil)}
	ins.Preorder(nodeFilter, func(node ast.Node) {
		call, ok := node.(*ast.CallExpr)
		if !ok || !isSetFinalizerCall(pass, call) || len(call.Args) != 2 {
			return
		}

		// SetFinalizer(obj, nil) clears the finalizer and is always legal.
		fl, ok := call.Args[1].(*ast.FuncLit)
		if !ok {
			return
		}

		if len(fl.Body.List) == 0 {
			report(pass, fl.Pos(), models.RuleFinalizerEmpty, "finalizer has an empty body")
			return
		}

		checkFinalizerPanics(pass, fl)
		checkFinalizerCaptures(pass, fl, call.Args[0])
	})

	return nil, nil
}

func isSetFinalizerCall(pass *analysis.Pass, call *ast.CallExpr) bool {
	var ident *ast.Ident
	switch fun := call.Fun.(type) {
	case *ast.SelectorExpr:
		ident = fun.Sel
	case *ast.Ident:
		// dot-imported runtime
		ident = fun
	default:
		return false
	}
	fn, ok := pass.TypesInfo.Uses[ident].(*types.Func)
	if !ok {
		return false
	}
	return fn.FullName() == "runtime.SetFinalizer"
}

// checkFinalizerPanics flags direct panic calls in the finalizer body.
// Nested function literals are skipped: they do not run during GC unless the
// finalizer itself invokes them, which the capture rule already covers.
func checkFinalizerPanics(pass *analysis.Pass, fl *ast.FuncLit) {
	ast.Inspect(fl.Body, func(n ast.Node) bool {
		if _, ok := n.(*ast.FuncLit); ok {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		ident, ok := call.Fun.(*ast.Ident)
		if !ok || ident.Name != "panic" {
			return true
		}
		if _, builtin := pass.TypesInfo.Uses[ident].(*types.Builtin); !builtin {
			return true
		}
		report(pass, call.Pos(), models.RuleFinalizerPanic, "finalizer panics")
		return true
	})
}

// checkFinalizerCaptures reports every enclosing-scope variable the finalizer
// closes over. Package-level variables do not extend object lifetimes and are
// ignored.
func checkFinalizerCaptures(pass *analysis.Pass, fl *ast.FuncLit, target ast.Expr) {
	targetObj := rootObject(pass, target)
	seen := make(map[*types.Var]bool, 2)

	ast.Inspect(fl.Body, func(n ast.Node) bool {
		ident, ok := n.(*ast.Ident)
		if !ok {
			return true
		}
		v, ok := pass.TypesInfo.Uses[ident].(*types.Var)
		if !ok || v.IsField() || seen[v] {
			return true
		}
		if v.Pkg() != pass.Pkg {
			return true // imported package-level variables (os.Stderr etc.)
		}
		if v.Parent() == nil || v.Parent() == pass.Pkg.Scope() {
			return true
		}
		if v.Pos() >= fl.Pos() && v.Pos() < fl.End() {
			return true // declared inside the literal (params, locals)
		}
		seen[v] = true

		if targetObj != nil && v == targetObj {
			detail := fmt.Sprintf("finalizer captures %s, the finalized object itself; it can never be collected", v.Name())
			report(pass, ident.Pos(), models.RuleFinalizerCapture, detail)
			return true
		}
		detail := fmt.Sprintf("finalizer captures %s from the enclosing scope", v.Name())
		report(pass, ident.Pos(), models.RuleFinalizerCapture, detail)
		return true
	})
}

// rootObject resolves the variable behind the finalized expression, looking
// through unary & and parentheses.
func rootObject(pass *analysis.Pass, expr ast.Expr) *types.Var {
	for {
		switch e := expr.(type) {
		case *ast.ParenExpr:
			expr = e.X
		case *ast.UnaryExpr:
			if e.Op != token.AND {
				return nil
			}
			expr = e.X
		case *ast.Ident:
			v, _ := pass.TypesInfo.Uses[e].(*types.Var)
			return v
		default:
			return nil
		}
	}
}
