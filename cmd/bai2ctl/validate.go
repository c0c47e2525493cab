package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/greenline-fi/bai2"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Parse a BAI2 file and report control-total and count mismatches",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		file, err := bai2.Process(data, optionsFromConfig())
		if err != nil {
			var pe *bai2.ProcessError
			if errors.As(err, &pe) {
				logrus.WithField("stage", pe.Stage()).Error(pe.Error())
			}
			return err
		}
		for _, w := range file.Warnings {
			logrus.Warn(w)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d group(s), control_total=%d\n", len(file.Groups), file.ControlTotal)
		return nil
	},
}
