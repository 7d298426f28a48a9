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

package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JustinGrote/PIMFast/enums"
	"github.com/JustinGrote/PIMFast/models"
)

func armRole(id string) models.EligibleRole {
	return models.EligibleRole{
		AccountId: "acct-1",
		Schedule: models.CommonRoleSchedule{
			Id:               id,
			Scope:            "/subscriptions/sub-1",
			RoleDefinitionId: "def-1",
			PrincipalId:      "user-1",
			SourceType:       enums.SourceArm,
		},
	}
}

func armAssignment(id string, linkedId string) models.CommonRoleAssignmentScheduleInstance {
	return models.CommonRoleAssignmentScheduleInstance{
		CommonRoleSchedule: models.CommonRoleSchedule{
			Id:               id,
			Scope:            "/subscriptions/sub-1",
			RoleDefinitionId: "def-1",
			PrincipalId:      "user-1",
			SourceType:       enums.SourceArm,
		},
		Status:                                  "Provisioned",
		LinkedRoleEligibilityScheduleInstanceId: linkedId,
	}
}

func graphRole(id string) models.EligibleRole {
	return models.EligibleRole{
		AccountId: "acct-1",
		Schedule: models.CommonRoleSchedule{
			Id:               id,
			Scope:            "/",
			RoleDefinitionId: "def-graph",
			PrincipalId:      "user-1",
			SourceType:       enums.SourceGraph,
		},
	}
}

func graphAssignment(id string) models.CommonRoleAssignmentScheduleInstance {
	return models.CommonRoleAssignmentScheduleInstance{
		CommonRoleSchedule: models.CommonRoleSchedule{
			Id:               id,
			Scope:            "/",
			RoleDefinitionId: "def-graph",
			PrincipalId:      "user-1",
			SourceType:       enums.SourceGraph,
		},
		Status: "Activated",
	}
}

func TestReconcile(t *testing.T) {
	t.Run("arm joins on the eligibility instance link", func(t *testing.T) {
		role := armRole("elig-1")
		lookup := Reconcile(
			[]models.EligibleRole{role},
			[]models.CommonRoleAssignmentScheduleInstance{armAssignment("assign-1", "elig-1")},
		)

		match, ok := lookup.Match(role)
		require.True(t, ok)
		require.Equal(t, "assign-1", match.Id)
		require.Equal(t, 1, lookup.Len())
	})

	t.Run("arm assignment without the link never matches", func(t *testing.T) {
		role := armRole("elig-1")
		lookup := Reconcile(
			[]models.EligibleRole{role},
			[]models.CommonRoleAssignmentScheduleInstance{armAssignment("assign-1", "")},
		)

		_, ok := lookup.Match(role)
		require.False(t, ok)
	})

	t.Run("graph joins on the identity triple", func(t *testing.T) {
		role := graphRole("elig-g1")
		lookup := Reconcile(
			[]models.EligibleRole{role},
			[]models.CommonRoleAssignmentScheduleInstance{graphAssignment("assign-g1")},
		)

		match, ok := lookup.Match(role)
		require.True(t, ok)
		require.Equal(t, "assign-g1", match.Id)
	})

	t.Run("any differing triple field breaks the match", func(t *testing.T) {
		role := graphRole("elig-g1")
		mutations := map[string]func(*models.CommonRoleAssignmentScheduleInstance){
			"roleDefinitionId": func(a *models.CommonRoleAssignmentScheduleInstance) { a.RoleDefinitionId = "other" },
			"scope":            func(a *models.CommonRoleAssignmentScheduleInstance) { a.Scope = "/administrativeUnits/au-1" },
			"principalId":      func(a *models.CommonRoleAssignmentScheduleInstance) { a.PrincipalId = "user-2" },
			"sourceType":       func(a *models.CommonRoleAssignmentScheduleInstance) { a.SourceType = enums.SourceGroup },
		}

		for name, mutate := range mutations {
			assignment := graphAssignment("assign-g1")
			mutate(&assignment)

			lookup := Reconcile(
				[]models.EligibleRole{role},
				[]models.CommonRoleAssignmentScheduleInstance{assignment},
			)

			_, ok := lookup.Match(role)
			require.False(t, ok, "mutated %s", name)
		}
	})

	t.Run("multiple triple candidates resolve to no match", func(t *testing.T) {
		role := graphRole("elig-g1")
		lookup := Reconcile(
			[]models.EligibleRole{role},
			[]models.CommonRoleAssignmentScheduleInstance{
				graphAssignment("assign-g1"),
				graphAssignment("assign-g2"),
			},
		)

		_, ok := lookup.Match(role)
		require.False(t, ok)
		require.Equal(t, 0, lookup.Len())
	})

	t.Run("empty inputs produce an empty lookup", func(t *testing.T) {
		lookup := Reconcile(nil, nil)
		require.Equal(t, 0, lookup.Len())
	})
}

func TestIsActivated(t *testing.T) {
	t.Run("arm requires Provisioned", func(t *testing.T) {
		role := armRole("elig-1")

		provisioned := armAssignment("assign-1", "elig-1")
		lookup := Reconcile([]models.EligibleRole{role}, []models.CommonRoleAssignmentScheduleInstance{provisioned})
		require.True(t, lookup.IsActivated(role))

		pending := armAssignment("assign-1", "elig-1")
		pending.Status = "PendingApproval"
		lookup = Reconcile([]models.EligibleRole{role}, []models.CommonRoleAssignmentScheduleInstance{pending})
		require.False(t, lookup.IsActivated(role))
	})

	t.Run("graph requires Activated", func(t *testing.T) {
		role := graphRole("elig-g1")

		activated := graphAssignment("assign-g1")
		lookup := Reconcile([]models.EligibleRole{role}, []models.CommonRoleAssignmentScheduleInstance{activated})
		require.True(t, lookup.IsActivated(role))

		// standing access reconciles but does not count as an activation
		standing := graphAssignment("assign-g1")
		standing.Status = "Assigned"
		lookup = Reconcile([]models.EligibleRole{role}, []models.CommonRoleAssignmentScheduleInstance{standing})
		require.False(t, lookup.IsActivated(role))

		_, ok := lookup.Match(role)
		require.True(t, ok)
	})

	t.Run("unmatched role is not activated", func(t *testing.T) {
		role := graphRole("elig-g1")
		lookup := Reconcile([]models.EligibleRole{role}, nil)
		require.False(t, lookup.IsActivated(role))
	})
}

func TestIsNewlyActivated(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newLookup := func(start *time.Time) (Lookup, models.EligibleRole) {
		role := armRole("elig-1")
		assignment := armAssignment("assign-1", "elig-1")
		assignment.StartDateTime = start
		return Reconcile([]models.EligibleRole{role}, []models.CommonRoleAssignmentScheduleInstance{assignment}), role
	}

	t.Run("just under the minimum duration", func(t *testing.T) {
		start := now.Add(-4*time.Minute - 59*time.Second)
		lookup, role := newLookup(&start)
		require.True(t, lookup.IsNewlyActivated(role, now))
	})

	t.Run("just over the minimum duration", func(t *testing.T) {
		start := now.Add(-5*time.Minute - time.Second)
		lookup, role := newLookup(&start)
		require.False(t, lookup.IsNewlyActivated(role, now))
	})

	t.Run("exactly at the minimum duration", func(t *testing.T) {
		start := now.Add(-5 * time.Minute)
		lookup, role := newLookup(&start)
		require.False(t, lookup.IsNewlyActivated(role, now))
	})

	t.Run("no start time", func(t *testing.T) {
		lookup, role := newLookup(nil)
		require.False(t, lookup.IsNewlyActivated(role, now))
	})

	t.Run("not activated at all", func(t *testing.T) {
		role := armRole("elig-1")
		lookup := Reconcile([]models.EligibleRole{role}, nil)
		require.False(t, lookup.IsNewlyActivated(role, now))
	})
}
