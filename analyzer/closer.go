package analyzer

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/relguard/relguard/models"
)

// closerTypeAnalyzer flags struct types that own closeable fields without
// offering a Close method of their own. Types that do declare Close are left
// to closefields, which checks the method body instead.
var closerTypeAnalyzer = &analysis.Analyzer{
	Name:     "closertype",
	Doc:      "reports types that own closeable fields but have no Close method",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runCloserType,
}

func runCloserType(pass *analysis.Pass) (any, error) {
	ins, _ := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if ins == nil {
		return nil, errors.New("missing inspector dependency")
	}
	if pass.TypesInfo == nil {
		return nil, errors.New("type information unavailable")
	}

	nodeFilter := []ast.Node{(*ast.TypeSpec)(nil)}
	ins.Preorder(nodeFilter, func(node ast.Node) {
		spec, ok := node.(*ast.TypeSpec)
		if !ok || spec.Name == nil {
			return
		}

		obj, ok := pass.TypesInfo.Defs[spec.Name].(*types.TypeName)
		if !ok || obj.IsAlias() {
			return
		}
		named, ok := obj.Type().(*types.Named)
		if !ok {
			return
		}
		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			return
		}
		if hasMethodNamed(named, "Close") {
			return
		}

		owned := closeableFields(st)
		if len(owned) == 0 {
			return
		}

		detail := fmt.Sprintf(
			"%s owns closeable field %s but does not implement io.Closer",
			spec.Name.Name, strings.Join(owned, ", "),
		)
		report(pass, spec.Pos(), models.RuleCloserMissing, detail)
	})

	return nil, nil
}
