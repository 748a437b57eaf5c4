package cmd

import (
	"fmt"

	"github.com/loom-ui/loom/cmd/loom/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show resolved project configuration",
		Long: `Show the resolved configuration of the current Loom project.

Displays the module path, library name, tag prefix, and document
direction after applying loom.yaml overrides and defaults.`,
		Usage: "loom status",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	fmt.Printf("Project: %s\n", cfg.Name)
	fmt.Println()
	fmt.Printf("  Root:       %s\n", cfg.Root)
	fmt.Printf("  Module:     %s\n", cfg.ModulePath)
	fmt.Printf("  Tag prefix: %s\n", cfg.Prefix)
	fmt.Printf("  Direction:  %s\n", cfg.Dir)
	return nil
}
