package main

import (
	"github.com/g-m-twostay/go-trinary/Parsers"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse TEXT...",
	Short: "parse integers the way apply scripts do",
	Long: `parse prints the value of every argument, or why it isn't a number.
Negative numbers must follow "--", e.g. trinary parse -- -45 12a`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Input", "Value", "Error"})
		failed := 0
		for _, arg := range args {
			v, err := Parsers.StringToInteger(arg)
			if err != nil {
				failed++
				log.WithError(err).WithField("input", arg).Debug("parse failed")
				t.AppendRow(table.Row{arg, "", err.Error()})
				continue
			}
			t.AppendRow(table.Row{arg, v, ""})
		}
		t.Render()
		if failed > 0 {
			return errors.Errorf("%d of %d inputs are not integers", failed, len(args))
		}
		return nil
	},
}
