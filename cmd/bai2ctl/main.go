// Command bai2ctl parses and validates BAI2 cash-management files from
// the command line.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("bai2ctl failed")
		os.Exit(1)
	}
}
