package config

import (
	"github.com/spf13/pflag"
)

const (
	FlagConfig  = "config"
	FlagServer  = "server"
	FlagSession = "session"
	FlagTimeout = "timeout"
)

// RegisterFlags declares the configuration flags on fs. Defaults shown in
// help come from a freshly defaulted Config.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to a JSON config file")
	fs.StringP(FlagServer, "a", d.ServerEndpointAddr, "address and port of the gRPC server")
	fs.String(FlagSession, d.SessionFile, "path to the session file")
	fs.Duration(FlagTimeout, d.RequestTimeout, "per-request timeout")
}

// Load builds a Config from defaults, the JSON file named by --config and
// the flags the user set explicitly, in that order.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path, err := fs.GetString(FlagConfig)
	if err != nil {
		return nil, err
	}
	if err := LoadJSON(cfg, path); err != nil {
		return nil, err
	}

	if fs.Changed(FlagServer) {
		if cfg.ServerEndpointAddr, err = fs.GetString(FlagServer); err != nil {
			return nil, err
		}
	}
	if fs.Changed(FlagSession) {
		if cfg.SessionFile, err = fs.GetString(FlagSession); err != nil {
			return nil, err
		}
	}
	if fs.Changed(FlagTimeout) {
		if cfg.RequestTimeout, err = fs.GetDuration(FlagTimeout); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
