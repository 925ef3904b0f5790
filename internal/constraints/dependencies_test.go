package constraints

import (
	"bytes"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

type goListPackage struct {
	ImportPath string
	Imports    []string
}

const modulePrefix = "github.com/jacoelho/pick/internal/"

// corePackages hold the query engine. They stay free of I/O so they can be
// embedded by any caller.
var corePackages = map[string]struct{}{
	modulePrefix + "tree":     {},
	modulePrefix + "number":   {},
	modulePrefix + "path":     {},
	modulePrefix + "selector": {},
}

// commandPackages only make sense behind the pick binary.
var commandPackages = map[string]struct{}{
	modulePrefix + "config":  {},
	modulePrefix + "exit":    {},
	modulePrefix + "logging": {},
	modulePrefix + "output":  {},
	modulePrefix + "plan":    {},
}

func TestCorePackagesDoNotImportCommandPackages(t *testing.T) {
	t.Parallel()

	packages := goList(t, "./internal/...")

	var violations []string
	for _, pkg := range packages {
		if _, ok := corePackages[pkg.ImportPath]; !ok {
			continue
		}
		for _, imp := range pkg.Imports {
			if _, banned := commandPackages[imp]; banned {
				violations = append(violations, pkg.ImportPath+" imports "+imp)
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("found forbidden core->command imports:\n%s", strings.Join(violations, "\n"))
	}
}

func TestTreeIsTheOnlyDataModel(t *testing.T) {
	t.Parallel()

	packages := goList(t, "./internal/tree", "./internal/number")

	var violations []string
	for _, pkg := range packages {
		for _, imp := range pkg.Imports {
			if strings.HasPrefix(imp, modulePrefix) && imp != modulePrefix+"number" {
				violations = append(violations, pkg.ImportPath+" imports "+imp)
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("found internal imports below the data model:\n%s", strings.Join(violations, "\n"))
	}
}

func TestCorePackagesAvoidSideEffectImports(t *testing.T) {
	t.Parallel()

	forbidden := map[string]struct{}{
		"os":           {},
		"os/exec":      {},
		"net/http":     {},
		"math/rand":    {},
		"math/rand/v2": {},
	}

	packages := goList(t, "./internal/...")

	var violations []string
	for _, pkg := range packages {
		if _, ok := corePackages[pkg.ImportPath]; !ok {
			continue
		}
		for _, imp := range pkg.Imports {
			if _, banned := forbidden[imp]; banned {
				violations = append(violations, pkg.ImportPath+" imports forbidden package "+imp)
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("found forbidden imports in core packages:\n%s", strings.Join(violations, "\n"))
	}
}

func goList(t *testing.T, patterns ...string) []goListPackage {
	t.Helper()

	args := append([]string{"list", "-json"}, patterns...)
	cmd := exec.Command("go", args...)
	cmd.Dir = repoRoot(t)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.Fatalf("go list failed: %v\nstderr:\n%s", err, stderr.String())
	}

	decoder := json.NewDecoder(bytes.NewReader(stdout.Bytes()))
	var packages []goListPackage
	for decoder.More() {
		var pkg goListPackage
		if err := decoder.Decode(&pkg); err != nil {
			t.Fatalf("decode go list json: %v", err)
		}
		packages = append(packages, pkg)
	}

	return packages
}

func repoRoot(t *testing.T) string {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}

	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
}
