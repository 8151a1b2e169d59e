package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/vectype/vectype/conf"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default vectype.toml in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := conf.Save(conf.Default(), conf.ConfigFileName); err != nil {
			return err
		}
		pterm.Success.Printfln("Wrote %s", conf.ConfigFileName)
		return nil
	},
}
