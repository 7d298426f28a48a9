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

package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JustinGrote/PIMFast/enums"
	"github.com/JustinGrote/PIMFast/models"
	"github.com/JustinGrote/PIMFast/models/azure"
)

func armEligibility() azure.RoleEligibilityScheduleInstance {
	instance := azure.RoleEligibilityScheduleInstance{
		Id: "/subscriptions/sub-1/providers/Microsoft.Authorization/roleEligibilityScheduleInstances/inst-1",
	}
	instance.Properties = azure.RoleEligibilityScheduleInstanceProperties{
		Scope:            "/subscriptions/sub-1",
		RoleDefinitionId: "/subscriptions/sub-1/providers/Microsoft.Authorization/roleDefinitions/def-1",
		PrincipalId:      "user-1",
		StartDateTime:    "2025-06-01T10:00:00Z",
		EndDateTime:      "2025-06-01T18:00:00Z",
		ExpandedProperties: azure.ExpandedProperties{
			Principal:      azure.ExpandedProperty{Id: "user-1", DisplayName: "Alex Wilber"},
			RoleDefinition: azure.ExpandedProperty{Id: "def-1", DisplayName: "Contributor"},
			Scope:          azure.ExpandedProperty{Id: "/subscriptions/sub-1", DisplayName: "Production", Type: "subscription"},
		},
	}
	return instance
}

func TestArmSchedule(t *testing.T) {
	t.Run("maps a complete record", func(t *testing.T) {
		schedule, err := ArmSchedule(armEligibility())
		require.NoError(t, err)

		require.Equal(t, "/subscriptions/sub-1", schedule.Scope)
		require.Equal(t, enums.ScopeSubscription, schedule.ScopeType)
		require.Equal(t, "Contributor", schedule.RoleDefinitionDisplayName)
		require.Equal(t, "Production", schedule.ScopeDisplayName)
		require.Equal(t, "Alex Wilber", schedule.PrincipalDisplayName)
		require.Equal(t, enums.SourceArm, schedule.SourceType)
		require.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), *schedule.StartDateTime)
		require.NotNil(t, schedule.EndDateTime)
	})

	t.Run("keeps the native record", func(t *testing.T) {
		instance := armEligibility()
		schedule, err := ArmSchedule(instance)
		require.NoError(t, err)
		require.Equal(t, instance, schedule.Source)
	})

	t.Run("missing display names become Unknown", func(t *testing.T) {
		instance := armEligibility()
		instance.Properties.ExpandedProperties.RoleDefinition.DisplayName = ""
		instance.Properties.ExpandedProperties.Scope.DisplayName = ""

		schedule, err := ArmSchedule(instance)
		require.NoError(t, err)
		require.Equal(t, models.UnknownDisplayName, schedule.RoleDefinitionDisplayName)
		require.Equal(t, models.UnknownDisplayName, schedule.ScopeDisplayName)
	})

	t.Run("missing timestamps stay nil", func(t *testing.T) {
		instance := armEligibility()
		instance.Properties.StartDateTime = ""
		instance.Properties.EndDateTime = ""

		schedule, err := ArmSchedule(instance)
		require.NoError(t, err)
		require.Nil(t, schedule.StartDateTime)
		require.Nil(t, schedule.EndDateTime)
	})

	t.Run("missing identifiers fail", func(t *testing.T) {
		for name, mutate := range map[string]func(*azure.RoleEligibilityScheduleInstance){
			"id":               func(i *azure.RoleEligibilityScheduleInstance) { i.Id = "" },
			"scope":            func(i *azure.RoleEligibilityScheduleInstance) { i.Properties.Scope = "" },
			"roleDefinitionId": func(i *azure.RoleEligibilityScheduleInstance) { i.Properties.RoleDefinitionId = "" },
			"principalId":      func(i *azure.RoleEligibilityScheduleInstance) { i.Properties.PrincipalId = "" },
		} {
			instance := armEligibility()
			mutate(&instance)

			_, err := ArmSchedule(instance)
			require.ErrorIs(t, err, ErrIncompleteProviderRecord, "field %s", name)
		}
	})

	t.Run("unparseable scope falls back to the expanded type", func(t *testing.T) {
		instance := armEligibility()
		instance.Properties.Scope = "/subscriptions/sub-1/unexpected"
		instance.Properties.ExpandedProperties.Scope.Type = "Subscription"

		schedule, err := ArmSchedule(instance)
		require.NoError(t, err)
		require.Equal(t, enums.ScopeSubscription, schedule.ScopeType)
	})

	t.Run("unclassifiable scope fails", func(t *testing.T) {
		instance := armEligibility()
		instance.Properties.Scope = "/subscriptions/sub-1/unexpected"
		instance.Properties.ExpandedProperties.Scope.Type = ""

		_, err := ArmSchedule(instance)
		require.ErrorIs(t, err, ErrIncompleteProviderRecord)
	})
}

func TestArmAssignment(t *testing.T) {
	instance := azure.RoleAssignmentScheduleInstance{
		Id: "/subscriptions/sub-1/providers/Microsoft.Authorization/roleAssignmentScheduleInstances/assign-1",
	}
	instance.Properties = azure.RoleAssignmentScheduleInstanceProperties{
		Scope:                                   "/subscriptions/sub-1",
		RoleDefinitionId:                        "def-1",
		PrincipalId:                             "user-1",
		Status:                                  "Provisioned",
		AssignmentType:                          "Activated",
		LinkedRoleEligibilityScheduleInstanceId: "elig-inst-1",
		ExpandedProperties: azure.ExpandedProperties{
			Scope: azure.ExpandedProperty{Type: "subscription"},
		},
	}

	assignment, err := ArmAssignment(instance)
	require.NoError(t, err)
	require.Equal(t, "Provisioned", assignment.Status)
	require.Equal(t, "elig-inst-1", assignment.LinkedRoleEligibilityScheduleInstanceId)
	require.Equal(t, enums.SourceArm, assignment.SourceType)
}

func TestGraphSchedule(t *testing.T) {
	t.Run("tenant-wide directory role", func(t *testing.T) {
		instance := azure.UnifiedRoleEligibilityScheduleInstance{
			Entity:           azure.Entity{Id: "graph-inst-1"},
			PrincipalId:      "user-1",
			RoleDefinitionId: "62e90394-69f5-4237-9190-012177145e10",
			DirectoryScopeId: "/",
			RoleDefinition:   azure.UnifiedRoleDefinition{DisplayName: "Global Administrator"},
		}

		schedule, err := GraphSchedule(instance)
		require.NoError(t, err)
		require.Equal(t, "/", schedule.Scope)
		require.Equal(t, "Directory", schedule.ScopeDisplayName)
		require.Equal(t, enums.ScopeDirectory, schedule.ScopeType)
		require.Equal(t, "Global Administrator", schedule.RoleDefinitionDisplayName)
		require.Equal(t, enums.SourceGraph, schedule.SourceType)
	})

	t.Run("empty directory scope means tenant-wide", func(t *testing.T) {
		instance := azure.UnifiedRoleEligibilityScheduleInstance{
			Entity:           azure.Entity{Id: "graph-inst-1"},
			PrincipalId:      "user-1",
			RoleDefinitionId: "def-1",
		}

		schedule, err := GraphSchedule(instance)
		require.NoError(t, err)
		require.Equal(t, "/", schedule.Scope)
		require.Equal(t, "Directory", schedule.ScopeDisplayName)
	})

	t.Run("administrative unit scope is kept verbatim", func(t *testing.T) {
		instance := azure.UnifiedRoleEligibilityScheduleInstance{
			Entity:           azure.Entity{Id: "graph-inst-1"},
			PrincipalId:      "user-1",
			RoleDefinitionId: "def-1",
			DirectoryScopeId: "/administrativeUnits/au-1",
		}

		schedule, err := GraphSchedule(instance)
		require.NoError(t, err)
		require.Equal(t, "/administrativeUnits/au-1", schedule.Scope)
		require.Equal(t, "/administrativeUnits/au-1", schedule.ScopeDisplayName)
	})

	t.Run("missing identifiers fail", func(t *testing.T) {
		_, err := GraphSchedule(azure.UnifiedRoleEligibilityScheduleInstance{
			Entity:      azure.Entity{Id: "graph-inst-1"},
			PrincipalId: "user-1",
		})
		require.ErrorIs(t, err, ErrIncompleteProviderRecord)
	})
}

func TestGraphAssignment(t *testing.T) {
	instance := azure.UnifiedRoleAssignmentScheduleInstance{
		Entity:           azure.Entity{Id: "graph-assign-1"},
		PrincipalId:      "user-1",
		RoleDefinitionId: "def-1",
		DirectoryScopeId: "/",
		AssignmentType:   "Activated",
	}

	assignment, err := GraphAssignment(instance)
	require.NoError(t, err)
	// graph has no status field; the assignment type stands in
	require.Equal(t, "Activated", assignment.Status)
	require.Equal(t, "", assignment.LinkedRoleEligibilityScheduleInstanceId)
}

func TestGroupSchedule(t *testing.T) {
	t.Run("member access", func(t *testing.T) {
		instance := azure.PrivilegedAccessGroupEligibilityScheduleInstance{
			Entity:      azure.Entity{Id: "group-inst-1"},
			AccessId:    "member",
			GroupId:     "group-1",
			PrincipalId: "user-1",
			Group:       azure.DirectoryObject{DisplayName: "SQL Admins"},
		}

		schedule, err := GroupSchedule(instance)
		require.NoError(t, err)
		require.Equal(t, "group-1", schedule.Scope)
		require.Equal(t, "member", schedule.RoleDefinitionId)
		require.Equal(t, "Group Member", schedule.RoleDefinitionDisplayName)
		require.Equal(t, "SQL Admins", schedule.ScopeDisplayName)
		require.Equal(t, enums.ScopeGroup, schedule.ScopeType)
		require.Equal(t, enums.SourceGroup, schedule.SourceType)
	})

	t.Run("owner access", func(t *testing.T) {
		instance := azure.PrivilegedAccessGroupEligibilityScheduleInstance{
			Entity:      azure.Entity{Id: "group-inst-1"},
			AccessId:    "owner",
			GroupId:     "group-1",
			PrincipalId: "user-1",
		}

		schedule, err := GroupSchedule(instance)
		require.NoError(t, err)
		require.Equal(t, "Group Owner", schedule.RoleDefinitionDisplayName)
		require.Equal(t, models.UnknownDisplayName, schedule.ScopeDisplayName)
	})

	t.Run("missing group id fails", func(t *testing.T) {
		_, err := GroupSchedule(azure.PrivilegedAccessGroupEligibilityScheduleInstance{
			Entity:      azure.Entity{Id: "group-inst-1"},
			AccessId:    "member",
			PrincipalId: "user-1",
		})
		require.ErrorIs(t, err, ErrIncompleteProviderRecord)
	})
}

func TestGroupAssignment(t *testing.T) {
	instance := azure.PrivilegedAccessGroupAssignmentScheduleInstance{
		Entity:         azure.Entity{Id: "group-assign-1"},
		AccessId:       "member",
		GroupId:        "group-1",
		PrincipalId:    "user-1",
		AssignmentType: "Assigned",
		StartDateTime:  "2025-06-01T10:00:00Z",
	}

	assignment, err := GroupAssignment(instance)
	require.NoError(t, err)
	require.Equal(t, "Assigned", assignment.Status)
	require.Equal(t, "group-1", assignment.Scope)
	require.NotNil(t, assignment.StartDateTime)
}
