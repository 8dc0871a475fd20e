package analyzer

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/relguard/relguard/models"
)

// closeFieldsAnalyzer checks Close methods: every closeable field of the
// receiver struct must at least be referenced inside the body. Any mention
// (closing, delegating, assigning) suppresses the finding, so the rule stays
// conservative.
var closeFieldsAnalyzer = &analysis.Analyzer{
	Name:     "closefields",
	Doc:      "reports Close methods that never release owned closeable fields",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runCloseFields,
}

func runCloseFields(pass *analysis.Pass) (any, error) {
	ins, _ := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if ins == nil {
		return nil, errors.New("missing inspector dependency")
	}
	if pass.TypesInfo == nil {
		return nil, errors.New("type information unavailable")
	}

	nodeFilter := []ast.Node{(*ast.FuncDecl)(nil)}
	ins.Preorder(nodeFilter, func(node ast.Node) {
		decl, ok := node.(*ast.FuncDecl)
		if !ok || decl.Recv == nil || decl.Name == nil || decl.Name.Name != "Close" {
			return
		}
		if decl.Body == nil || len(decl.Recv.List) == 0 {
			return
		}

		recv := decl.Recv.List[0]
		st := receiverStruct(pass, recv)
		if st == nil {
			return
		}

		owned := closeableFields(st)
		if len(owned) == 0 {
			return
		}

		referenced := receiverFieldRefs(recv, decl.Body)
		for _, field := range owned {
			if referenced[field] {
				continue
			}
			detail := fmt.Sprintf("Close does not release closeable field %s", field)
			report(pass, decl.Name.Pos(), models.RuleCloseFieldNotClosed, detail)
		}
	})

	return nil, nil
}

// receiverStruct resolves the receiver field to its underlying struct type.
func receiverStruct(pass *analysis.Pass, recv *ast.Field) *types.Struct {
	typ := pass.TypesInfo.TypeOf(recv.Type)
	if typ == nil {
		return nil
	}
	if ptr, ok := typ.(*types.Pointer); ok {
		typ = ptr.Elem()
	}
	st, _ := typ.Underlying().(*types.Struct)
	return st
}

// receiverFieldRefs collects the names of receiver fields mentioned anywhere
// in body, as recv.field selectors. An unnamed receiver yields an empty set:
// such a Close cannot touch any field.
func receiverFieldRefs(recv *ast.Field, body *ast.BlockStmt) map[string]bool {
	refs := make(map[string]bool, 4)
	if len(recv.Names) == 0 || recv.Names[0].Name == "_" {
		return refs
	}
	recvName := recv.Names[0].Name

	ast.Inspect(body, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if ident, ok := sel.X.(*ast.Ident); ok && ident.Name == recvName {
			refs[sel.Sel.Name] = true
		}
		return true
	})

	return refs
}
