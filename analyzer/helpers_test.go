package analyzer

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"runtime"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

func runAnalyzerOnSource(t *testing.T, analyzer *analysis.Analyzer, filename, src string) []analysis.Diagnostic {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse %s: %v", filename, err)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
	}

	conf := types.Config{Importer: importer.Default()}
	pkg, err := conf.Check("sample", fset, []*ast.File{file}, info)
	if err != nil {
		t.Fatalf("type-check %s: %v", filename, err)
	}

	return runAnalyzer(t, analyzer, fset, file, info, pkg)
}

func runAnalyzer(
	t *testing.T,
	analyzer *analysis.Analyzer,
	fset *token.FileSet,
	file *ast.File,
	info *types.Info,
	pkg *types.Package,
) []analysis.Diagnostic {
	t.Helper()

	var diags []analysis.Diagnostic
	pass := analysis.Pass{
		Analyzer:   analyzer,
		Fset:       fset,
		Files:      []*ast.File{file},
		Pkg:        pkg,
		TypesInfo:  info,
		TypesSizes: types.SizesFor("gc", runtime.GOARCH),
		ResultOf:   make(map[*analysis.Analyzer]any),
		Report: func(d analysis.Diagnostic) {
			diags = append(diags, d)
		},
	}

	for _, req := range analyzer.Requires {
		if req == inspect.Analyzer {
			pass.ResultOf[inspect.Analyzer] = inspector.New(pass.Files)
			continue
		}
		t.Fatalf("unsupported dependency %q for analyzer %s", req.Name, analyzer.Name)
	}

	if analyzer.Run == nil {
		t.Fatalf("analyzer %s has no Run function", analyzer.Name)
	}
	if _, err := analyzer.Run(&pass); err != nil {
		t.Fatalf("analyzer %s failed: %v", analyzer.Name, err)
	}
	return diags
}

func containsRule(diags []analysis.Diagnostic, id string) bool {
	for _, diag := range diags {
		if extractRuleID(diag.Message) == id {
			return true
		}
	}
	return false
}

func extractRuleID(message string) string {
	if !strings.HasPrefix(message, "[") {
		return ""
	}
	if idx := strings.IndexByte(message, ']'); idx > 1 {
		return message[1:idx]
	}
	return ""
}
