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

// nativeHandleAnalyzer flags struct types that store raw OS or native
// handles without any release method. unsafe.Pointer fields always count;
// uintptr fields only when the name suggests a handle, since plain uintptr
// is also used for sizes and offsets.
var nativeHandleAnalyzer = &analysis.Analyzer{
	Name:     "nativehandle",
	Doc:      "reports types holding raw native handles without a release method",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runNativeHandle,
}

var releaseMethodNames = []string{"Close", "Release", "Free", "Destroy"}

var handleNameHints = []string{"handle", "fd", "ptr", "descriptor", "hwnd"}

func runNativeHandle(pass *analysis.Pass) (any, error) {
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
		if hasMethodNamed(named, releaseMethodNames...) {
			return
		}

		var handles []string
		for i := 0; i < st.NumFields(); i++ {
			f := st.Field(i)
			if isNativeHandleField(f) {
				handles = append(handles, f.Name())
			}
		}
		if len(handles) == 0 {
			return
		}

		detail := fmt.Sprintf(
			"%s holds native handle field %s but has no release method",
			spec.Name.Name, strings.Join(handles, ", "),
		)
		report(pass, spec.Pos(), models.RuleNativeHandleNoClose, detail)
	})

	return nil, nil
}

func isNativeHandleField(f *types.Var) bool {
	basic, ok := f.Type().Underlying().(*types.Basic)
	if !ok {
		return false
	}
	switch basic.Kind() {
	case types.UnsafePointer:
		return true
	case types.Uintptr:
		return nameSuggestsHandle(f.Name())
	default:
		return false
	}
}

func nameSuggestsHandle(name string) bool {
	lower := strings.ToLower(name)
	for _, hint := range handleNameHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}
