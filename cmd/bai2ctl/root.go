package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/greenline-fi/bai2"
	"github.com/greenline-fi/bai2/bai2calendar"
	"github.com/greenline-fi/bai2/bai2currency"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bai2ctl",
	Short: "Parse and validate BAI2 cash-management reporting files",
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.bai2ctl.yaml)")
	rootCmd.PersistentFlags().Bool("strict-record-counts", false, "fail on records_num mismatches instead of warning")
	rootCmd.PersistentFlags().String("end-of-day", "23:59", "HH:MM substituted for the (99,99) end-of-day sentinel")
	_ = viper.BindPFlag("strict_record_counts", rootCmd.PersistentFlags().Lookup("strict-record-counts"))
	_ = viper.BindPFlag("end_of_day", rootCmd.PersistentFlags().Lookup("end-of-day"))

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(validateCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".bai2ctl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("$HOME")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("BAI2CTL")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// optionsFromConfig builds bai2.Options from whatever viper resolved
// across flags, environment variables, and the config file.
func optionsFromConfig() bai2.Options {
	endOfDay := bai2.ClockTime{Hour: 23, Minute: 59}
	if raw := viper.GetString("end_of_day"); raw != "" {
		if hh, mm, ok := splitHHMM(raw); ok {
			endOfDay = bai2.ClockTime{Hour: hh, Minute: mm}
		}
	}
	return bai2.Options{
		Calendar:           bai2calendar.Standard{Location: time.UTC},
		CurrencyLookup:     bai2currency.FromISOText{},
		EndOfDay:           endOfDay,
		StrictRecordCounts: viper.GetBool("strict_record_counts"),
	}
}

func splitHHMM(raw string) (hour, minute int, ok bool) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, errH := time.Parse("15", parts[0])
	m, errM := time.Parse("04", parts[1])
	if errH != nil || errM != nil {
		return 0, 0, false
	}
	return h.Hour(), m.Minute(), true
}
