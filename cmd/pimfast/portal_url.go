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
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JustinGrote/PIMFast/resourceid"
)

func init() {
	rootCmd.AddCommand(portalUrlCmd)
}

var portalUrlCmd = &cobra.Command{
	Use:          "portal-url <scope-or-url>",
	Long:         "Converts a role scope to an Azure portal deep link, or a portal link back to its scope",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	Run:          portalUrlCmdImpl,
}

func portalUrlCmdImpl(cmd *cobra.Command, args []string) {
	arg := args[0]

	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		scope, err := resourceid.FromPortalURL(arg)
		if err != nil {
			exit(err)
		}
		fmt.Println(scope)
		return
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, os.Kill)
	defer stop()

	session, account := newSession()
	defer session.Close()

	record, err := session.ResolveScopeTenant(ctx, account, arg)
	if err != nil {
		exit(err)
	}

	domain := record.DefaultDomain
	if domain == "" {
		domain = record.TenantId
	}

	url, err := resourceid.ToPortalURL(arg, domain, "")
	if err != nil {
		exit(err)
	}
	fmt.Println(url)
}
