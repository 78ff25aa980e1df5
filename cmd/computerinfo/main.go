package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-tangra/go-tangra-computerinfo/internal/app"
	"github.com/go-tangra/go-tangra-computerinfo/internal/config"
)

var (
	version    = "dev"
	commitHash = "unknown"
	buildDate  = "unknown"
)

var (
	cfgFile   string
	debugDir  string
	jsonDir   string
	uploadURL string
)

var rootCmd = newRootCmd()

// newRootCmd builds the collecting command. Unknown flags and positional
// arguments are accepted and ignored.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "computerinfo",
		Short: "Collect a hardware and software inventory of this computer",
		Long: `computerinfo gathers CPU, board, memory, disk, display, network and
installed software facts, prints them as JSON and optionally saves them to a
file or posts them to an HTTP endpoint.

  -D, --debug [dir]   write a daily log file (default <exe dir>/Logs)
  -J, --json  [dir]   save computerInfo.json (default <exe dir>)`,
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		Run:                runCollect,
	}

	cmd.Flags().StringVarP(&debugDir, "debug", "D", "", "enable file logging, optionally to the given directory")
	cmd.Flags().StringVarP(&jsonDir, "json", "J", "", "save the JSON record, optionally to the given directory")
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default: ./computerinfo.yaml)")
	cmd.Flags().StringVar(&uploadURL, "upload-url", "", "POST the record to this URL")
	return cmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("computerinfo %s (commit: %s, built: %s)\n", version, commitHash, buildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "computerinfo: %v\n", err)
	}
}

func runCollect(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Printf("[Config] %v; using defaults\n", err)
		cfg = config.Default()
	}
	if uploadURL != "" {
		cfg.Upload.URL = uploadURL
	}

	exeDir, err := config.ExeDir()
	if err != nil {
		exeDir = "."
	}

	var opts config.Options
	if cmd.Flags().Changed("debug") {
		opts.DebugEnabled = true
		opts.LogDir = dirOr(debugDir, filepath.Join(exeDir, "Logs"))
	}
	if cmd.Flags().Changed("json") {
		opts.JSONEnabled = true
		opts.JSONDir = dirOr(jsonDir, exeDir)
	}

	a := &app.App{
		Config:  cfg,
		Options: opts,
		Stdout:  cmd.OutOrStdout(),
	}
	a.Run(context.Background())
}

func dirOr(dir, fallback string) string {
	if dir == "" {
		return fallback
	}
	return dir
}
