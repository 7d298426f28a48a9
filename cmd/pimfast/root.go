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

package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"golang.org/x/net/proxy"

	"github.com/JustinGrote/PIMFast"
	"github.com/JustinGrote/PIMFast/client"
	client_config "github.com/JustinGrote/PIMFast/client/config"
	"github.com/JustinGrote/PIMFast/client/rest"
	"github.com/JustinGrote/PIMFast/config"
	"github.com/JustinGrote/PIMFast/logger"
	"github.com/JustinGrote/PIMFast/models"
)

var log logr.Logger

var rootCmd = &cobra.Command{
	Use:               "pimfast",
	Short:             "Surface the PIM roles an account can activate, across Azure, Entra and groups",
	PersistentPreRunE: persistentPreRunE,
	SilenceUsage:      true,
}

func init() {
	config.RegisterFlags(rootCmd, config.Options())
	proxy.RegisterDialerType("http", rest.NewProxyDialer)
	proxy.RegisterDialerType("https", rest.NewProxyDialer)
}

func persistentPreRunE(cmd *cobra.Command, args []string) error {
	// need to set config flag value explicitly
	if cmd != nil {
		if configFlag := cmd.Flag(config.ConfigFile.Name).Value.String(); configFlag != "" {
			config.ConfigFile.Set(configFlag)
		}
	}

	if err := config.LoadValues(); err != nil {
		return err
	}

	if logr, err := logger.GetLogger(); err != nil {
		return err
	} else {
		log = *logr
		if config.ConfigFileUsed() != "" {
			log.V(1).Info(fmt.Sprintf("Config File: %v", config.ConfigFileUsed()))
		}
		return nil
	}
}

func exit(err error) {
	log.Error(err, "encountered unrecoverable error")
	os.Exit(1)
}

func testConnections(cfg client_config.Config) error {
	if _, err := rest.Dial(log, cfg.ProxyUrl, cfg.AuthorityUrl()); err != nil {
		return fmt.Errorf("unable to connect to %s: %w", cfg.AuthorityUrl(), err)
	} else if _, err := rest.Dial(log, cfg.ProxyUrl, cfg.GraphUrl()); err != nil {
		return fmt.Errorf("unable to connect to %s: %w", cfg.GraphUrl(), err)
	} else if _, err := rest.Dial(log, cfg.ProxyUrl, cfg.ManagementUrl()); err != nil {
		return fmt.Errorf("unable to connect to %s: %w", cfg.ManagementUrl(), err)
	} else {
		return nil
	}
}

func newSession() (*pimfast.Session, models.Account) {
	cfg := config.ClientConfig()
	if err := testConnections(cfg); err != nil {
		exit(err)
	}

	azClient, err := client.NewClient(cfg)
	if err != nil {
		exit(err)
	}

	account := models.Account{
		Id:       config.Username.Value(),
		ObjectId: config.UserObjectId.Value(),
		TenantId: config.Tenant.Value(),
		Username: config.Username.Value(),
	}
	if account.Id == "" {
		account.Id = config.UserObjectId.Value()
	}

	return pimfast.NewSession(azClient, log), account
}
