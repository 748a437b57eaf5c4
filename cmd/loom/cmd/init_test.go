package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestValidateDirectory(t *testing.T) {
	type tc struct {
		name    string
		dir     string
		wantErr bool
	}
	tests := []tc{
		{"simple name", "mylib", false},
		{"relative path", "projects/mylib", false},
		{"dot-slash relative", "./projects/mylib", false},
		{"deep relative", "a/b/c/mylib", false},

		// Dangerous paths (cross-platform)
		{"empty", "", true},
		{"root slash", "/", true},
		{"dot", ".", true},
		{"dotdot", "..", true},
	}

	if runtime.GOOS == "windows" {
		tests = append(tests,
			tc{"drive root", `C:\`, true},
			tc{"bare backslash root", `\`, true},
			tc{"root-level C:\\Users", `C:\Users`, true},
			tc{"nested windows path", `C:\Users\me\projects\mylib`, false},
		)
	} else {
		tests = append(tests,
			tc{"absolute nested", "/home/user/projects/mylib", false},
			tc{"root-level /etc", "/etc", true},
			tc{"root-level /tmp", "/tmp", true},
		)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDirectory(tt.dir)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateDirectory(%q) error = %v, wantErr %v", tt.dir, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLibraryName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "mylib", false},
		{"with hyphen", "my-lib", false},
		{"with underscore", "my_lib", false},
		{"with numbers", "lib2", false},
		{"uppercase", "MyLib", false},

		{"empty", "", true},
		{"starts with dot", ".hidden", true},
		{"starts with hyphen", "-bad", true},
		{"starts with number", "1lib", true},
		{"has spaces", "my lib", true},
		{"has slash", "my/lib", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLibraryName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLibraryName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestScaffoldProject_NameFromBasename(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "projects", "mylib")

	if err := scaffoldProject(dir, "mylib"); err != nil {
		t.Fatalf("scaffoldProject(%q) unexpected error: %v", dir, err)
	}

	gomod, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		t.Fatalf("failed to read go.mod: %v", err)
	}
	if got := string(gomod); !strings.Contains(got, "module mylib") {
		t.Errorf("go.mod should contain 'module mylib', got:\n%s", got)
	}

	yaml, err := os.ReadFile(filepath.Join(dir, "loom.yaml"))
	if err != nil {
		t.Fatalf("failed to read loom.yaml: %v", err)
	}
	if got := string(yaml); !strings.Contains(got, "name: mylib") {
		t.Errorf("loom.yaml should contain the library name, got:\n%s", got)
	}

	if _, err := os.Stat(filepath.Join(dir, "main.go")); err != nil {
		t.Errorf("main.go should exist: %v", err)
	}
}

func TestScaffoldProject_ModulePathOverride(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "mylib")

	if err := scaffoldProject(dir, "github.com/user/mylib"); err != nil {
		t.Fatalf("scaffoldProject unexpected error: %v", err)
	}

	gomod, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		t.Fatalf("failed to read go.mod: %v", err)
	}
	if got := string(gomod); !strings.Contains(got, "module github.com/user/mylib") {
		t.Errorf("go.mod should contain overridden module path, got:\n%s", got)
	}
}

func TestScaffoldProject_RejectsExistingDirectory(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "mylib")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := scaffoldProject(dir, "mylib"); err == nil {
		t.Fatal("expected error for existing directory, got nil")
	}
}

func TestRunInit_RejectsDangerousDirectory(t *testing.T) {
	for _, dir := range []string{"/", ".", ".."} {
		if err := runInit([]string{dir}); err == nil {
			t.Errorf("expected error for dangerous directory %q, got nil", dir)
		}
	}
}

func TestRunInit_RejectsTilde(t *testing.T) {
	err := runInit([]string{"~/mylib"})
	if err == nil {
		t.Fatal("expected error for tilde path, got nil")
	}
	if !strings.Contains(err.Error(), "tilde") {
		t.Errorf("expected tilde-specific error, got: %v", err)
	}
}

func TestRunInit_RejectsEmptyModulePath(t *testing.T) {
	if err := runInit([]string{"mylib", ""}); err == nil {
		t.Fatal("expected error for empty module path, got nil")
	}
}

func TestRunInit_NoArgs(t *testing.T) {
	if err := runInit(nil); err == nil {
		t.Fatal("expected error for no args, got nil")
	}
}
