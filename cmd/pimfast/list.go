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
	"time"

	"github.com/spf13/cobra"

	"github.com/JustinGrote/PIMFast/models"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:          "list",
	Long:         "Lists the account's eligible roles with their activation state",
	SilenceUsage: true,
	Run:          listCmdImpl,
}

type listedRole struct {
	models.EligibleRole
	Activated      bool                `json:"activated"`
	NewlyActivated bool                `json:"newlyActivated"`
	Tenant         models.TenantRecord `json:"tenant"`
}

func listCmdImpl(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, os.Kill)
	defer stop()

	session, account := newSession()
	defer session.Close()

	log.V(1).Info("refreshing eligible roles", "account", account.Id)
	start := time.Now()

	snapshot, err := session.RefreshRoles(ctx, account)
	if err != nil {
		exit(err)
	}

	now := time.Now()
	encoder := json.NewEncoder(os.Stdout)
	for _, role := range snapshot.EligibleRoles {
		record, err := session.ResolveRoleTenant(ctx, account, role)
		if err != nil {
			log.Error(err, "unable to resolve role tenant", "role", role.Schedule.Id)
		}
		if err := encoder.Encode(listedRole{
			EligibleRole:   role,
			Activated:      snapshot.Active.IsActivated(role),
			NewlyActivated: snapshot.Active.IsNewlyActivated(role, now),
			Tenant:         record,
		}); err != nil {
			exit(err)
		}
	}

	log.V(1).Info("refresh completed", "roles", len(snapshot.EligibleRoles), "active", snapshot.Active.Len(), "duration", time.Since(start).String())
}
