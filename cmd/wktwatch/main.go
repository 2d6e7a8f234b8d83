// wktwatch validates a directory of .wkt files, either once
// ("validate"), on a recurring cron schedule ("watch"), or reformats a
// single file ("fmt"). Its CLI surface uses cobra and its config file
// accepts JSON or TOML, following spatialmodel-inmap's inmap/cmd
// package; its daily event log and cron scheduling follow
// apps/rtcmlogger and rtcmlogger/logger.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/goblimey/go-tools/dailylogger"
	"github.com/spf13/cobra"

	"github.com/goblimey/go-wktcrs/cmd/wktwatch/config"
	"github.com/goblimey/go-wktcrs/cmd/wktwatch/watcher"
	"github.com/goblimey/go-wktcrs/dispatch"
	"github.com/goblimey/go-wktcrs/serialize"
	"github.com/goblimey/go-wktcrs/wkterror"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "wktwatch",
	Short: "Validate and watch directories of WKT-CRS documents.",
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "wktwatch.json", "configuration file (.json or .toml)")
	rootCmd.AddCommand(validateCmd, watchCmd, fmtCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wktwatch:", err)
		os.Exit(1)
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every .wkt file in the configured directory once.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.GetConfig(configFile)
		if err != nil {
			return err
		}
		results, err := watcher.Sweep(cfg.Directory, cfg.Strict)
		if err != nil {
			return err
		}
		return reportResults(results)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-sweep the configured directory on its cron schedule until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.GetConfig(configFile)
		if err != nil {
			return err
		}
		installSink(cfg)

		sched, err := watcher.NewScheduler(cfg.Directory, cfg.Schedule, cfg.Strict, func(results []watcher.Result) {
			for _, r := range results {
				if r.Error != nil {
					log.Printf("wktwatch: %s: %v", r.Path, r.Error)
				}
			}
		})
		if err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		return nil
	},
}

var (
	fmtExpand bool
	fmtParens bool
	fmtOld    bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Reformat a single WKT-CRS document and print it to standard output.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.GetConfig(configFile)
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		obj, werr := dispatch.Parse(raw, cfg.Strict)
		if werr != nil {
			return werr
		}
		var opts serialize.Options
		if fmtExpand {
			opts |= serialize.ExpandSP
		}
		if fmtParens {
			opts |= serialize.Parens
		}
		if fmtOld {
			opts |= serialize.OldSyntax
		}
		fmt.Println(dispatch.Emit(obj, opts))
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtExpand, "expand", false, "re-indent output using two-space indents")
	fmtCmd.Flags().BoolVar(&fmtParens, "parens", false, "emit () instead of []")
	fmtCmd.Flags().BoolVar(&fmtOld, "wkt1", false, "emit WKT1 legacy keywords and layout")
}

// installSink routes rejected-document errors to a daily-rotated log
// file, the way apps/rtcmlogger routes its event log through
// dailylogger.New.
func installSink(cfg *config.Config) {
	if !cfg.LogEvents {
		return
	}
	dir := cfg.EventLogDirectory
	if dir == "" {
		dir = "."
	}
	dailyWriter := dailylogger.New(dir, "wktwatch.", ".log")
	logger := log.New(dailyWriter, "", log.LstdFlags)
	wkterror.SetSink(wkterror.NewLogSink(logger), nil)
}

func reportResults(results []watcher.Result) error {
	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Error)
			continue
		}
		fmt.Printf("%s: ok\n", r.Path)
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed validation", failed)
	}
	return nil
}
