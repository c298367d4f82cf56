package templates

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var templDecl = regexp.MustCompile(`(?m)^templ ([A-Z]\w*)\(`)

// Every exported component rendered from a *_templ.go file must be declared
// in its .templ source, and every exported .templ component must be built.
func TestComponentsMatchTemplSources(t *testing.T) {
	goFiles, err := filepath.Glob("*_templ.go")
	if err != nil {
		t.Fatal(err)
	}
	if len(goFiles) == 0 {
		t.Fatal("no *_templ.go files found")
	}

	for _, goFile := range goFiles {
		source := strings.TrimSuffix(goFile, "_templ.go") + ".templ"
		t.Run(source, func(t *testing.T) {
			body, err := os.ReadFile(source)
			if err != nil {
				t.Fatalf("missing source for %s: %v", goFile, err)
			}
			declared := map[string]bool{}
			for _, m := range templDecl.FindAllStringSubmatch(string(body), -1) {
				declared[m[1]] = true
			}

			f, err := parser.ParseFile(token.NewFileSet(), goFile, nil, parser.SkipObjectResolution)
			if err != nil {
				t.Fatal(err)
			}
			built := map[string]bool{}
			for _, decl := range f.Decls {
				fn, ok := decl.(*ast.FuncDecl)
				if !ok || fn.Recv != nil || !fn.Name.IsExported() {
					continue
				}
				built[fn.Name.Name] = true
				if !declared[fn.Name.Name] {
					t.Errorf("%s renders %s, which %s does not declare", goFile, fn.Name.Name, source)
				}
			}
			for name := range declared {
				if !built[name] {
					t.Errorf("%s declares %s, which %s does not render", source, name, goFile)
				}
			}
		})
	}
}

func TestTemplSourcesHaveRenderers(t *testing.T) {
	sources, err := filepath.Glob("*.templ")
	if err != nil {
		t.Fatal(err)
	}
	for _, source := range sources {
		if _, err := os.Stat(strings.TrimSuffix(source, ".templ") + "_templ.go"); err != nil {
			t.Errorf("%s has no renderer: %v", source, err)
		}
	}
}
