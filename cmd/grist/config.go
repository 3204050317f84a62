package main

const (
	defaultFormat   = "plain"
	defaultSortKey  = "none"
	defaultOnError  = "halt"
	defaultWorkers  = 1
	defaultBindHost = "127.0.0.1"
	defaultAPIPort  = 3000
)

// Batch policies for a failed input source.
const (
	policyHalt     = "halt"
	policyContinue = "continue"
)

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
type appConfig struct {
	Format  string `mapstructure:"format"`
	SortKey string `mapstructure:"sort-key"`
	Verbose bool   `mapstructure:"verbose"`
	OnError string `mapstructure:"on-error"`
	Workers int    `mapstructure:"workers"`

	Serve   bool   `mapstructure:"serve"`
	APIPort int    `mapstructure:"api-port"`
	APIAddr string `mapstructure:"api-addr"`

	FilterFile string `mapstructure:"filter-file"`
	IP         string `mapstructure:"ip"`
	From       string `mapstructure:"from"`
	To         string `mapstructure:"to"`
	Method     string `mapstructure:"method"`
	Status     int    `mapstructure:"status"`
	Pattern    string `mapstructure:"pattern"`
	MinSize    int64  `mapstructure:"min-size"`

	ConfigPath string `mapstructure:"-"` // not from config file
}
