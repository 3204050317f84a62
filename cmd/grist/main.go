package main

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/grist/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")

	flags := declareRunFlags()
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Printf("Grist - Access Log Analyzer\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	flags.apply(&cfg)

	sources := flag.Args()
	if len(sources) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no input files (use - for stdin)")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg, sources); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: grist [flags] <logfile ...>\n\n")
	fmt.Fprintf(flag.CommandLine.Output(), "Analyzes combined-format access logs. Flags:\n")
	flag.PrintDefaults()
}

// runFlags holds the per-run flag values so explicitly set flags can
// override config-file and environment values after parsing.
type runFlags struct {
	cfg appConfig
}

func declareRunFlags() *runFlags {
	f := &runFlags{}
	flag.StringVar(&f.cfg.Format, "format", defaultFormat, "output format: plain, csv, json")
	flag.StringVar(&f.cfg.SortKey, "sort", defaultSortKey, "sort key: none, ip, date, method, status, size")
	flag.BoolVar(&f.cfg.Verbose, "verbose", false, "list every surviving record")
	flag.StringVar(&f.cfg.OnError, "on-error", defaultOnError, "batch policy for a failed source: halt, continue")
	flag.IntVar(&f.cfg.Workers, "workers", defaultWorkers, "process up to this many files concurrently")
	flag.BoolVar(&f.cfg.Serve, "serve", false, "serve results over the HTTP API after analysis")
	flag.StringVar(&f.cfg.APIAddr, "api-addr", "", "HTTP API listen address")
	flag.StringVar(&f.cfg.FilterFile, "filter-file", "", "YAML file with filter criteria")
	flag.StringVar(&f.cfg.IP, "ip", "", "keep records from this exact IP")
	flag.StringVar(&f.cfg.From, "from", "", "keep records at or after this date")
	flag.StringVar(&f.cfg.To, "to", "", "keep records at or before this date")
	flag.StringVar(&f.cfg.Method, "method", "", "keep records with this exact HTTP method")
	flag.IntVar(&f.cfg.Status, "status", 0, "keep records with this exact status code")
	flag.StringVar(&f.cfg.Pattern, "pattern", "", "keep records whose raw line matches this regex")
	flag.Int64Var(&f.cfg.MinSize, "min-size", -1, "keep records with at least this many bytes")
	return f
}

// apply copies every flag the user set on the command line over the
// loaded configuration. Unset flags keep the config/env/default value.
func (f *runFlags) apply(cfg *appConfig) {
	set := map[string]bool{}
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["format"] {
		cfg.Format = f.cfg.Format
	}
	if set["sort"] {
		cfg.SortKey = f.cfg.SortKey
	}
	if set["verbose"] {
		cfg.Verbose = f.cfg.Verbose
	}
	if set["on-error"] {
		cfg.OnError = f.cfg.OnError
	}
	if set["workers"] {
		cfg.Workers = f.cfg.Workers
	}
	if set["serve"] {
		cfg.Serve = f.cfg.Serve
	}
	if set["api-addr"] {
		cfg.APIAddr = f.cfg.APIAddr
	}
	if set["filter-file"] {
		cfg.FilterFile = f.cfg.FilterFile
	}
	if set["ip"] {
		cfg.IP = f.cfg.IP
	}
	if set["from"] {
		cfg.From = f.cfg.From
	}
	if set["to"] {
		cfg.To = f.cfg.To
	}
	if set["method"] {
		cfg.Method = f.cfg.Method
	}
	if set["status"] {
		cfg.Status = f.cfg.Status
	}
	if set["pattern"] {
		cfg.Pattern = f.cfg.Pattern
	}
	if set["min-size"] {
		cfg.MinSize = f.cfg.MinSize
	}
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("GRIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("format", defaultFormat)
	v.SetDefault("sort-key", defaultSortKey)
	v.SetDefault("verbose", false)
	v.SetDefault("on-error", defaultOnError)
	v.SetDefault("workers", defaultWorkers)
	v.SetDefault("serve", false)
	v.SetDefault("api-port", defaultAPIPort)
	v.SetDefault("min-size", -1)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "grist", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if cfg.OnError != policyHalt && cfg.OnError != policyContinue {
		return cfg, fmt.Errorf("invalid on-error policy %q (want halt or continue)", cfg.OnError)
	}
	if cfg.APIPort <= 0 || cfg.APIPort > 65535 {
		return cfg, fmt.Errorf("invalid api-port: %d", cfg.APIPort)
	}
	if cfg.APIAddr == "" {
		cfg.APIAddr = net.JoinHostPort(defaultBindHost, strconv.Itoa(cfg.APIPort))
	}

	return cfg, nil
}
