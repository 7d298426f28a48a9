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
	"encoding/json"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveTenantCmd)
}

var resolveTenantCmd = &cobra.Command{
	Use:          "resolve-tenant <scope>",
	Long:         "Resolves which tenant owns the given role scope",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	Run:          resolveTenantCmdImpl,
}

func resolveTenantCmdImpl(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, os.Kill)
	defer stop()

	session, account := newSession()
	defer session.Close()

	record, err := session.ResolveScopeTenant(ctx, account, args[0])
	if err != nil {
		exit(err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(record); err != nil {
		exit(err)
	}
}
