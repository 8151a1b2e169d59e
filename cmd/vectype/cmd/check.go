package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/vectype/vectype/conf"
	"github.com/vectype/vectype/dts/emit"
	"github.com/vectype/vectype/errors"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if the generated declaration file is up to date",
	Long: `Check if the declaration file matches the current source modules.

Regenerates the declarations in memory and compares them with the existing
output file, ignoring the metadata header line that changes on every run.

Exit codes:
  0 - declarations are up to date
  1 - declarations are out of date, or the check itself failed

Examples:
  vectype check`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := conf.Load()
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		return errors.New("check requires an output file; set output in vectype.toml")
	}

	doc, err := emit.Generate(cfg.Source, cfg.Options())
	if err != nil {
		return err
	}

	upToDate, err := emit.UpToDate(doc, cfg.Output)
	if err != nil {
		return err
	}
	if !upToDate {
		pterm.Error.Printfln("%s is out of date", cfg.Output)
		return errors.Newf("declarations are out of date - run 'vectype generate' to update")
	}

	pterm.Success.Printfln("%s is up to date", cfg.Output)
	return nil
}
