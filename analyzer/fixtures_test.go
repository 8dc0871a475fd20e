package analyzer

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestViolationsFixtureTriggersAllRules(t *testing.T) {
	_, filename, _, _ := runtime.Caller(0)
	fixturePath := filepath.Join(filepath.Dir(filename), "testdata", "src", "violations", "violations.go")
	src, err := os.ReadFile(fixturePath)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, fixturePath, src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
	}

	conf := types.Config{Importer: importer.Default()}
	pkg, err := conf.Check("violations", fset, []*ast.File{file}, info)
	if err != nil {
		t.Fatalf("type-check fixture: %v", err)
	}

	expected := map[string]bool{
		"RG-001": false,
		"RG-002": false,
		"RG-010": false,
		"RG-011": false,
		"RG-012": false,
		"RG-020": false,
		"RG-030": false,
		"RG-031": false,
	}

	for _, analyzer := range All() {
		diags := runAnalyzer(t, analyzer, fset, file, info, pkg)
		if len(diags) == 0 {
			t.Errorf("%s: expected diagnostics, got none", analyzer.Name)
			continue
		}
		for _, diag := range diags {
			id := extractRuleID(diag.Message)
			if id == "" {
				t.Errorf("%s: unable to extract rule id from message %q", analyzer.Name, diag.Message)
				continue
			}
			if _, ok := expected[id]; ok {
				expected[id] = true
			}
		}
	}

	for id, seen := range expected {
		if !seen {
			t.Errorf("expected rule %s to trigger on fixture, but it did not", id)
		}
	}
}

func TestAllReturnsStableBundle(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("expected at least one analyzer")
	}
	names := make(map[string]bool, len(all))
	for _, a := range all {
		if a.Name == "" || a.Doc == "" {
			t.Fatalf("analyzer with empty name or doc: %+v", a)
		}
		if names[a.Name] {
			t.Fatalf("duplicate analyzer name %s", a.Name)
		}
		names[a.Name] = true
	}
}

func TestByName(t *testing.T) {
	a, ok := ByName("paramcount")
	if !ok || a.Name != "paramcount" {
		t.Fatalf("ByName(paramcount) = %v, %v", a, ok)
	}
	if _, ok := ByName("unknown"); ok {
		t.Fatal("ByName(unknown) should not resolve")
	}
}

func TestFromConfig(t *testing.T) {
	if got := len(FromConfig(nil)); got != len(All()) {
		t.Fatalf("nil config should enable everything, got %d", got)
	}

	enabled := map[string]bool{"finalizer": true, "closertype": true}
	filtered := FromConfig(enabled)
	if len(filtered) != 2 {
		t.Fatalf("expected 2 analyzers, got %d", len(filtered))
	}
	for _, a := range filtered {
		if !enabled[a.Name] {
			t.Fatalf("unexpected analyzer %s", a.Name)
		}
	}
}
