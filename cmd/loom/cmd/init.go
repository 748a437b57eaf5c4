package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Create a new component library",
		Long: `Create a new Loom component library in a new directory.

This command creates:
  - A new directory at the specified path
  - go.mod with the specified module path
  - loom.yaml with the library name and tag prefix
  - main.go with a starter component

The library name is derived from the directory basename.
The module path defaults to the library name if not specified.

Examples:
  loom init mylib
  loom init mylib github.com/username/mylib
  loom init ./projects/mylib`,
		Usage: "loom init <directory> [module-path]",
		Run:   runInit,
	})
}

// initTemplateData contains the data for init template substitution.
type initTemplateData struct {
	ModulePath string
	Name       string
}

func runInit(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("directory is required\n\nUsage: loom init <directory> [module-path]")
	}

	raw := args[0]
	if strings.HasPrefix(raw, "~") {
		return fmt.Errorf("tilde (~) is not expanded by loom; use an absolute path or $HOME instead")
	}

	dir := filepath.Clean(raw)

	// Validate directory path before deriving anything from it
	if err := validateDirectory(dir); err != nil {
		return err
	}

	libName := filepath.Base(dir)
	modulePath := libName
	if len(args) > 1 {
		modulePath = args[1]
	}

	if modulePath == "" {
		return fmt.Errorf("module path cannot be empty")
	}

	if err := validateLibraryName(libName); err != nil {
		return fmt.Errorf("invalid library name %q (derived from directory basename): %w", libName, err)
	}

	if err := scaffoldProject(dir, modulePath); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Library created successfully!\n\n")
	fmt.Printf("Next steps:\n")
	fmt.Printf("  cd %s\n", dir)
	fmt.Printf("  go mod tidy\n")
	fmt.Printf("  loom render          # Render the starter component\n")

	return nil
}

const goModTemplate = `module {{.ModulePath}}

go 1.24.0
`

const loomYAMLTemplate = `library:
  name: {{.Name}}
`

const mainGoTemplate = `package main

import (
	"fmt"

	"github.com/loom-ui/loom/pkg/component"
	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/props"
)

// Greeting is a starter component with one reflected property.
type Greeting struct {
	component.Core
}

func (g *Greeting) Properties() props.Map {
	return props.Map{
		"name": {Type: props.String, Default: "world", Reflected: true},
	}
}

func (g *Greeting) Styles() string {
	return ":host { display: block; }"
}

func (g *Greeting) Render() string {
	return fmt.Sprintf("<p>Hello, %v!</p>", g.Get("name"))
}

func main() {
	doc := host.NewDocument()
	el := host.NewElement("{{.Name}}-greeting")
	component.New(el, &Greeting{})
	doc.Append(el)
	fmt.Println(el.OuterHTML())
}
`

// scaffoldProject creates the project directory and writes the template
// files. No side effects beyond the filesystem, so tests can call it
// directly.
func scaffoldProject(dir, modulePath string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}

	fmt.Printf("Creating new Loom library: %s\n", filepath.Base(dir))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data := initTemplateData{
		ModulePath: modulePath,
		Name:       filepath.Base(dir),
	}

	initFiles := []struct {
		template string
		destName string
	}{
		{goModTemplate, "go.mod"},
		{loomYAMLTemplate, "loom.yaml"},
		{mainGoTemplate, "main.go"},
	}

	for _, f := range initFiles {
		if err := writeInitTemplate(dir, f.template, f.destName, data); err != nil {
			safeRemoveAll(dir)
			return err
		}
		fmt.Printf("  Created %s\n", f.destName)
	}

	return nil
}

func writeInitTemplate(projectDir, tmplText, destName string, data initTemplateData) error {
	tmpl, err := template.New(destName).Parse(tmplText)
	if err != nil {
		return fmt.Errorf("failed to parse template for %s: %w", destName, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template for %s: %w", destName, err)
	}

	destPath := filepath.Join(projectDir, destName)
	if err := os.WriteFile(destPath, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", destName, err)
	}

	return nil
}

// validateDirectory rejects directory paths that would be dangerous to
// create or clean up: filesystem roots, the current/parent directory, and
// root-level absolute paths (e.g. /etc).
func validateDirectory(dir string) error {
	switch dir {
	case "", "/", ".", "..":
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	if isVolumeRoot(dir) {
		return fmt.Errorf("directory %q is not a valid project location", dir)
	}
	if filepath.IsAbs(dir) && isVolumeRoot(filepath.Dir(dir)) {
		return fmt.Errorf("refusing to create project at root-level path %q", dir)
	}
	return nil
}

// isVolumeRoot reports whether dir is a filesystem root. On Unix this is
// "/", on Windows this covers drive roots like "C:\" and the bare root "\".
func isVolumeRoot(dir string) bool {
	return dir == filepath.VolumeName(dir)+string(filepath.Separator)
}

// safeRemoveAll removes a directory only if the path passes
// validateDirectory. It silently no-ops for dangerous paths rather than
// returning an error, since it runs on cleanup paths where the original
// error should not be masked.
func safeRemoveAll(dir string) {
	if validateDirectory(dir) != nil {
		return
	}
	os.RemoveAll(dir)
}

var libraryNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

func validateLibraryName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !libraryNameRe.MatchString(name) {
		return fmt.Errorf("name must start with a letter and contain only letters, digits, '-' and '_'")
	}
	return nil
}
