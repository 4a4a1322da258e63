package main

import (
	"fmt"
	"os"
	"path/filepath"

	"vst-go/internal/app"
	"vst-go/internal/config"
	"vst-go/internal/render"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vst",
	Short: "Review, accept, or reject staged documentation updates",
	Long: `vst manages staged update files named V<digits>_<name>.

A staged file is a proposed replacement for the file of the same name with
the prefix stripped: accepting V2_guide.md moves it over guide.md, rejecting
deletes it. Nothing is persisted between runs; every command re-scans the
working tree.`,
}

// styles resolves the configured color mode into a style set for reports.
func styles(cfg *config.Config) render.Styles {
	return render.NewStyles(render.ColorEnabled(cfg.Color))
}

// displayPath shows paths relative to root when possible. Display only;
// operations always use the path as given.
func displayPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List staged files under the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp("List")
		if err != nil {
			return err
		}
		defer a.Close()

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		files, err := a.List(cwd)
		if err != nil {
			return err
		}

		// Paths only, one per line, so output stays pipeable; an empty
		// tree prints nothing and still exits 0.
		for _, f := range files {
			fmt.Println(displayPath(cwd, f.Path))
		}
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare STAGED_FILE",
	Short: "Show how a staged file differs from its canonical counterpart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp("Compare")
		if err != nil {
			return err
		}
		defer a.Close()

		c, err := a.Compare(args[0])
		if err != nil {
			return err
		}

		render.Comparison(os.Stdout, c, styles(a.Config()))
		return nil
	},
}

var acceptCmd = &cobra.Command{
	Use:   "accept STAGED_FILE",
	Short: "Promote a staged file over its canonical counterpart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp("Accept")
		if err != nil {
			return err
		}
		defer a.Close()

		canonical, err := a.Accept(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Accepted: %s\n", canonical)
		return nil
	},
}

var rejectCmd = &cobra.Command{
	Use:   "reject STAGED_FILE",
	Short: "Delete a staged file, leaving the canonical file untouched",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp("Reject")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Reject(args[0]); err != nil {
			return err
		}

		fmt.Printf("Rejected: %s\n", args[0])
		return nil
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Reject all staged files under the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp("Clean")
		if err != nil {
			return err
		}
		defer a.Close()

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		count, err := a.Clean(cwd)
		if err != nil {
			return err
		}

		fmt.Printf("Removed %d staged file(s)\n", count)
		return nil
	},
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.Default(defaults.LogDir)
		if err := config.Init(defaults.ConfigPath, cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults.ConfigPath)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
		cfg.ApplyDefaults(defaults.LogDir)

		fmt.Printf("Configuration from %s:\n\n", defaults.ConfigPath)
		fmt.Printf("Preview Lines: %d\n", cfg.PreviewLines)
		fmt.Printf("Color:         %s\n", cfg.Color)
		fmt.Printf("Log Dir:       %s\n", cfg.LogDir)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(acceptCmd)
	rootCmd.AddCommand(rejectCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(configCmd)
}
