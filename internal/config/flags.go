package config

import (
	"github.com/spf13/pflag"
)

const (
	flagUsername   = "username"
	flagPassword   = "password"
	flagTOTPSecret = "totp-secret"
	flagHTTPSProxy = "https-proxy"
	flagDebug      = "debug"
)

// AddFlags registers the command line flags read by ReadFlags.
func AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringP(flagUsername, "u", "", "No-IP account username")
	flagSet.StringP(flagPassword, "p", "", "No-IP account password")
	flagSet.StringP(flagTOTPSecret, "s", "", "base32 TOTP secret of the No-IP account")
	flagSet.StringP(flagHTTPSProxy, "t", "", "proxy server address for the browser")
	flagSet.BoolP(flagDebug, "d", false, "enable debug logging and screenshots")
}

// ReadFlags returns the settings set with command line flags.
// Flags not set on the command line are left to their zero value.
func ReadFlags(flagSet *pflag.FlagSet) (config Config, err error) {
	stringFlags := map[string]*string{
		flagUsername:   &config.Credentials.Username,
		flagPassword:   &config.Credentials.Password,
		flagTOTPSecret: &config.Credentials.TOTPSecret,
		flagHTTPSProxy: &config.Browser.Proxy,
	}
	for name, field := range stringFlags {
		*field, err = flagSet.GetString(name)
		if err != nil {
			return config, err
		}
	}

	if flagSet.Changed(flagDebug) {
		debug, err := flagSet.GetBool(flagDebug)
		if err != nil {
			return config, err
		}
		config.Logger.Debug = &debug
	}

	return config, nil
}
