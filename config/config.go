// Copyright (C) 2025 Justin Grote
//
// This file is part of PIMFast.
//
// PIMFast is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PIMFast is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config defines the command line, environment and config file
// options and binds them through viper.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	client_config "github.com/JustinGrote/PIMFast/client/config"
)

type Option struct {
	Name       string
	Shorthand  string
	Usage      string
	Default    interface{}
	Persistent bool
}

func (s Option) Set(value interface{}) {
	viper.Set(s.Name, value)
}

type StringOption struct{ Option }

func (s StringOption) Value() string { return viper.GetString(s.Name) }

type IntOption struct{ Option }

func (s IntOption) Value() int { return viper.GetInt(s.Name) }

type BoolOption struct{ Option }

func (s BoolOption) Value() bool { return viper.GetBool(s.Name) }

var (
	ConfigFile = StringOption{Option{Name: "config", Shorthand: "c", Usage: "Location of the configuration file", Default: "", Persistent: true}}
	Verbosity  = IntOption{Option{Name: "verbosity", Shorthand: "v", Usage: "Log verbosity; higher values log more", Default: 0, Persistent: true}}
	JsonLogs   = BoolOption{Option{Name: "json", Usage: "Emit logs as JSON", Default: false, Persistent: true}}
	LogFile    = StringOption{Option{Name: "log-file", Usage: "Also write logs to this file", Default: "", Persistent: true}}
	Proxy      = StringOption{Option{Name: "proxy", Usage: "HTTP proxy url", Default: "", Persistent: true}}

	AppId         = StringOption{Option{Name: "app", Shorthand: "a", Usage: "Application id of the client registration", Default: "", Persistent: true}}
	Tenant        = StringOption{Option{Name: "tenant", Shorthand: "t", Usage: "Home tenant id of the signed-in account", Default: "", Persistent: true}}
	Username      = StringOption{Option{Name: "username", Shorthand: "u", Usage: "Sign-in name of the account", Default: "", Persistent: true}}
	Password      = StringOption{Option{Name: "password", Usage: "Password for the account", Default: "", Persistent: true}}
	UserObjectId  = StringOption{Option{Name: "object-id", Usage: "Directory object id of the account", Default: "", Persistent: true}}
	ClientSecret  = StringOption{Option{Name: "secret", Usage: "Client secret of the registration", Default: "", Persistent: true}}
	ClientCert    = StringOption{Option{Name: "cert", Usage: "Path or PEM of the client certificate", Default: "", Persistent: true}}
	ClientKey     = StringOption{Option{Name: "key", Usage: "Path or PEM of the certificate's signing key", Default: "", Persistent: true}}
	ClientKeyPass = StringOption{Option{Name: "keypass", Usage: "Passphrase of the signing key", Default: "", Persistent: true}}
	RefreshToken  = StringOption{Option{Name: "refresh-token", Shorthand: "r", Usage: "Refresh token of an already signed-in account", Default: "", Persistent: true}}

	AuthorityUrl = StringOption{Option{Name: "authority-url", Usage: "Authority base url", Default: "", Persistent: true}}
	GraphUrl     = StringOption{Option{Name: "graph-url", Usage: "MS Graph base url", Default: "", Persistent: true}}
	MgmtUrl      = StringOption{Option{Name: "mgmt-url", Usage: "Azure Resource Manager base url", Default: "", Persistent: true}}
)

func Options() []Option {
	return []Option{
		ConfigFile.Option,
		Verbosity.Option,
		JsonLogs.Option,
		LogFile.Option,
		Proxy.Option,
		AppId.Option,
		Tenant.Option,
		Username.Option,
		Password.Option,
		UserObjectId.Option,
		ClientSecret.Option,
		ClientCert.Option,
		ClientKey.Option,
		ClientKeyPass.Option,
		RefreshToken.Option,
		AuthorityUrl.Option,
		GraphUrl.Option,
		MgmtUrl.Option,
	}
}

// RegisterFlags declares every option as a cobra flag and binds it into
// viper so flag, env and config file values resolve in the usual order.
func RegisterFlags(cmd *cobra.Command, options []Option) {
	for _, option := range options {
		var flags *pflag.FlagSet
		if option.Persistent {
			flags = cmd.PersistentFlags()
		} else {
			flags = cmd.Flags()
		}

		switch value := option.Default.(type) {
		case string:
			flags.StringP(option.Name, option.Shorthand, value, option.Usage)
		case int:
			flags.IntP(option.Name, option.Shorthand, value, option.Usage)
		case bool:
			flags.BoolP(option.Name, option.Shorthand, value, option.Usage)
		}
		viper.BindPFlag(option.Name, flags.Lookup(option.Name))
	}
}

// LoadValues reads environment variables and the config file, if one exists.
func LoadValues() error {
	viper.SetEnvPrefix("pimfast")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if configFile := ConfigFile.Value(); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("json")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pimfast"))
		}
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}

// ClientConfig assembles the client credential configuration from the
// resolved option values.
func ClientConfig() client_config.Config {
	return client_config.Config{
		ApplicationId: AppId.Value(),
		Authority:     AuthorityUrl.Value(),
		ClientSecret:  ClientSecret.Value(),
		ClientCert:    ClientCert.Value(),
		ClientKey:     ClientKey.Value(),
		ClientKeyPass: ClientKeyPass.Value(),
		RefreshToken:  RefreshToken.Value(),
		Username:      Username.Value(),
		Password:      Password.Value(),
		Graph:         GraphUrl.Value(),
		Management:    MgmtUrl.Value(),
		ProxyUrl:      Proxy.Value(),
	}
}
