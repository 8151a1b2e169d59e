package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/vectype/vectype/conf"
	"github.com/vectype/vectype/dts/emit"
	"github.com/vectype/vectype/errors"
	"github.com/vectype/vectype/logger"
)

var (
	generateSrc    string
	generateOut    string
	generateStrict bool
	generateDocs   bool
	generateWatch  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the TypeScript declaration file",
	Long: `Generate TypeScript declarations from the configured source modules.

Reads one <class>.js file per vocabulary class from the source directory,
extracts documented signatures, resolves aliases across classes, and writes
the assembled declaration file.

Modes:
  loose (default) - class-family types collapse to the shared buffer type
  --strict        - nominal class types are preserved; the members that
                    collide with the buffer type are emitted commented-out

Examples:
  vectype generate                          # config/defaults, stdout
  vectype generate --src src/gl-matrix -o gl-matrix.d.ts
  vectype generate --strict --docs=false
  vectype generate --watch                  # regenerate on source changes`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateSrc, "src", "s", "", "Source directory with <class>.js modules (default from config)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output declaration file (default from config, stdout when empty)")
	generateCmd.Flags().BoolVar(&generateStrict, "strict", false, "Preserve nominal class-family types")
	generateCmd.Flags().BoolVar(&generateDocs, "docs", true, "Emit JSDoc blocks above declarations")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Regenerate whenever a source module changes")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := generateOnce(cfg); err != nil {
		return err
	}
	if !generateWatch {
		return nil
	}

	watcher, err := conf.NewSourceWatcher(cfg.Source, func() {
		if err := generateOnce(cfg); err != nil {
			logger.Errorw("Regeneration failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	pterm.Info.Printfln("Watching %s for changes (ctrl-c to stop)", cfg.Source)
	watcher.Start()
	return nil
}

// generateOnce runs the pipeline and writes the result to the configured
// destination.
func generateOnce(cfg conf.Config) error {
	doc, err := emit.Generate(cfg.Source, cfg.Options())
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		fmt.Print(doc)
		return nil
	}
	if err := os.WriteFile(cfg.Output, []byte(doc), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", cfg.Output)
	}
	pterm.Success.Printfln("Generated %s (%d classes)", cfg.Output, len(cfg.Classes))
	return nil
}

// loadConfig merges the project configuration with any flags set on cmd.
// Flags win only when explicitly changed, so config-file settings survive.
func loadConfig(cmd *cobra.Command) (conf.Config, error) {
	cfg, err := conf.Load()
	if err != nil {
		return conf.Config{}, err
	}
	if cmd.Flags().Changed("src") {
		cfg.Source = generateSrc
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = generateOut
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = generateStrict
	}
	if cmd.Flags().Changed("docs") {
		cfg.Docs = generateDocs
	}
	return cfg, nil
}
