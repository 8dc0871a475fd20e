package analyzer

import (
	"errors"
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/relguard/relguard/models"
)

const (
	defaultMaxParams  = 5
	defaultMaxResults = 3
)

// paramCountAnalyzer flags function declarations with excessive parameter or
// result counts. Thresholds are analyzer flags so every host (vet,
// multichecker, golangci-lint) can tune them.
var paramCountAnalyzer = newParamCountAnalyzer()

type paramCountSettings struct {
	maxParams  int
	maxResults int
}

func newParamCountAnalyzer() *analysis.Analyzer {
	settings := &paramCountSettings{}

	a := &analysis.Analyzer{
		Name:     "paramcount",
		Doc:      "reports functions with excessive parameter or result counts",
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      settings.run,
	}
	a.Flags.IntVar(&settings.maxParams, "max-params", defaultMaxParams,
		"maximum number of parameters before a function is reported")
	a.Flags.IntVar(&settings.maxResults, "max-results", defaultMaxResults,
		"maximum number of results before a function is reported")

	return a
}

func (s *paramCountSettings) run(pass *analysis.Pass) (any, error) {
	ins, _ := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if ins == nil {
		return nil, errors.New("missing inspector dependency")
	}

	nodeFilter := []ast.Node{(*ast.FuncDecl)(nil)}
	ins.Preorder(nodeFilter, func(node ast.Node) {
		decl, ok := node.(*ast.FuncDecl)
		if !ok || decl.Name == nil || decl.Type == nil {
			return
		}

		params := countFields(decl.Type.Params)
		if params > s.maxParams {
			detail := fmt.Sprintf("%s takes %d parameters, more than %d", decl.Name.Name, params, s.maxParams)
			report(pass, decl.Name.Pos(), models.RuleTooManyParams, detail)
		}

		results := countFields(decl.Type.Results)
		if results > s.maxResults {
			detail := fmt.Sprintf("%s returns %d values, more than %d", decl.Name.Name, results, s.maxResults)
			report(pass, decl.Name.Pos(), models.RuleTooManyResults, detail)
		}
	})

	return nil, nil
}

// countFields counts individual parameters or results: grouped names
// (a, b int) count per name, unnamed entries count once each.
func countFields(list *ast.FieldList) int {
	if list == nil {
		return 0
	}
	n := 0
	for _, field := range list.List {
		if len(field.Names) == 0 {
			n++
			continue
		}
		n += len(field.Names)
	}
	return n
}
