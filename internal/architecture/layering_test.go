package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulesPrefix = "socialteam/internal/modules/"

var layers = []string{"adapter/in", "adapter/out", "port/in", "port/out", "usecase", "service", "domain", "dto"}

// sameModule lists the layers each layer may import inside its own module.
var sameModule = map[string][]string{
	"adapter/in":  {"port/in", "dto"},
	"adapter/out": {"port/in", "port/out", "dto", "domain"},
	"usecase":     {"port/in", "port/out", "service", "dto", "domain"},
	"service":     {"port/out", "dto", "domain"},
	"port/in":     {"dto", "domain"},
	"port/out":    {"dto", "domain"},
	"dto":         {"domain"},
	"domain":      {},
}

// crossModule lists the layers any module may import from another one.
var crossModule = []string{"port/in", "dto", "domain"}

type location struct {
	module string
	layer  string
}

func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()
	fset := token.NewFileSet()
	root := filepath.Join("..", "modules")
	checked := 0
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		slash := filepath.ToSlash(path)
		from, ok := locate(slash[strings.Index(slash, "modules/")+len("modules/"):])
		if !ok {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			rest, found := strings.CutPrefix(importPath, modulesPrefix)
			if !found {
				continue
			}
			to, ok := locate(rest + "/")
			if !ok {
				t.Errorf("%s imports %s outside any known layer", slash, importPath)
				continue
			}
			if !allowed(from, to) {
				t.Errorf("forbidden import in %s (%s %s): %s", slash, from.module, from.layer, importPath)
			}
			checked++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk modules: %v", err)
	}
	if checked == 0 {
		t.Fatalf("no module imports checked under %s", root)
	}
}

func TestLayerRules(t *testing.T) {
	t.Parallel()
	cases := []struct {
		from, to string
		want     bool
	}{
		{"queue/adapter/in/x.go", "queue/port/in/", true},
		{"queue/adapter/in/x.go", "queue/service/", false},
		{"queue/adapter/in/x.go", "stats/dto/", true},
		{"queue/adapter/out/x.go", "stats/port/in/", true},
		{"queue/adapter/out/x.go", "stats/service/", false},
		{"runtime/service/x.go", "task/domain/", true},
		{"runtime/service/x.go", "runtime/usecase/", false},
		{"runtime/service/x.go", "runtime/adapter/out/", false},
		{"task/domain/x.go", "task/dto/", false},
		{"engagement/domain/x.go", "task/domain/", true},
		{"stats/usecase/x.go", "stats/service/", true},
		{"stats/usecase/x.go", "settings/usecase/", false},
	}
	for _, tc := range cases {
		from, ok := locate(tc.from)
		if !ok {
			t.Fatalf("locate %s", tc.from)
		}
		to, ok := locate(tc.to)
		if !ok {
			t.Fatalf("locate %s", tc.to)
		}
		if got := allowed(from, to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

// locate splits "<module>/<layer>/..." into its parts.
func locate(rel string) (location, bool) {
	module, rest, ok := strings.Cut(rel, "/")
	if !ok || module == "" {
		return location{}, false
	}
	for _, layer := range layers {
		if strings.HasPrefix(rest, layer+"/") {
			return location{module: module, layer: layer}, true
		}
	}
	return location{}, false
}

func allowed(from, to location) bool {
	if from.module != to.module {
		if from.layer == "domain" {
			return to.layer == "domain"
		}
		return contains(crossModule, to.layer)
	}
	if from.layer == to.layer {
		return true
	}
	return contains(sameModule[from.layer], to.layer)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
