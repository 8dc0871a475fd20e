package analyzer

import (
	"go/token"
	"go/types"
)

// closerInterface is a synthetic io.Closer equivalent. Building it by hand
// lets the analyzers test for Close() error without requiring the analyzed
// package to import io.
var closerInterface = newCloserInterface()

func newCloserInterface() *types.Interface {
	errType := types.Universe.Lookup("error").Type()
	results := types.NewTuple(types.NewVar(token.NoPos, nil, "", errType))
	sig := types.NewSignatureType(nil, nil, nil, nil, results, false)
	method := types.NewFunc(token.NoPos, nil, "Close", sig)
	iface := types.NewInterfaceType([]*types.Func{method}, nil)
	iface.Complete()
	return iface
}

// isCloseable reports whether values of typ own a resource released through
// Close() error. Pointer-receiver implementations count for value fields too:
// owning an os.File by value still means owning the descriptor.
func isCloseable(typ types.Type) bool {
	if typ == nil {
		return false
	}
	if types.Implements(typ, closerInterface) {
		return true
	}
	if _, ok := typ.(*types.Pointer); ok {
		return false
	}
	if _, ok := typ.Underlying().(*types.Interface); ok {
		return false
	}
	return types.Implements(types.NewPointer(typ), closerInterface)
}

// hasMethodNamed reports whether typ (or *typ, including promoted methods)
// declares a method with one of the given names.
func hasMethodNamed(typ types.Type, names ...string) bool {
	for _, name := range names {
		obj, _, _ := types.LookupFieldOrMethod(types.NewPointer(typ), true, nil, name)
		if _, ok := obj.(*types.Func); ok {
			return true
		}
	}
	return false
}

// closeableFields returns the names of struct fields that own closeable
// values, in declaration order.
func closeableFields(st *types.Struct) []string {
	var fields []string
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if isCloseable(f.Type()) {
			fields = append(fields, f.Name())
		}
	}
	return fields
}
