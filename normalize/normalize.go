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

// Package normalize maps the three provider-native PIM record shapes into
// the common role model. Mapping is pure: a record only fails on a missing
// mandatory identifier, never on missing display names or timestamps.
package normalize

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JustinGrote/PIMFast/enums"
	"github.com/JustinGrote/PIMFast/models"
	"github.com/JustinGrote/PIMFast/models/azure"
	"github.com/JustinGrote/PIMFast/resourceid"
)

// ErrIncompleteProviderRecord is returned when a provider record is missing
// a mandatory identifier. Callers conventionally skip the record rather than
// abort the fetch.
var ErrIncompleteProviderRecord = errors.New("pimfast: incomplete provider record")

// ArmSchedule maps an ARM role eligibility schedule instance into the common
// model. The scope display name and type come from the server-expanded
// properties when present, otherwise from classifying the scope locally.
func ArmSchedule(instance azure.RoleEligibilityScheduleInstance) (models.CommonRoleSchedule, error) {
	props := instance.Properties
	if err := requireFields(
		[2]string{"id", instance.Id},
		[2]string{"scope", props.Scope},
		[2]string{"roleDefinitionId", props.RoleDefinitionId},
		[2]string{"principalId", props.PrincipalId},
	); err != nil {
		return models.CommonRoleSchedule{}, err
	}

	scopeType, err := armScopeType(props.Scope, props.ExpandedProperties)
	if err != nil {
		return models.CommonRoleSchedule{}, err
	}

	return models.CommonRoleSchedule{
		Id:                        instance.Id,
		Scope:                     props.Scope,
		RoleDefinitionId:          props.RoleDefinitionId,
		RoleDefinitionDisplayName: displayName(props.ExpandedProperties.RoleDefinition.DisplayName),
		ScopeDisplayName:          displayName(props.ExpandedProperties.Scope.DisplayName),
		ScopeType:                 scopeType,
		PrincipalId:               props.PrincipalId,
		PrincipalDisplayName:      props.ExpandedProperties.Principal.DisplayName,
		StartDateTime:             parseTime(props.StartDateTime),
		EndDateTime:               parseTime(props.EndDateTime),
		SourceType:                enums.SourceArm,
		Source:                    instance,
	}, nil
}

// ArmAssignment maps an ARM role assignment schedule instance into the
// common model, keeping the eligibility-instance link the reconciliation
// join depends on.
func ArmAssignment(instance azure.RoleAssignmentScheduleInstance) (models.CommonRoleAssignmentScheduleInstance, error) {
	props := instance.Properties
	if err := requireFields(
		[2]string{"id", instance.Id},
		[2]string{"scope", props.Scope},
		[2]string{"roleDefinitionId", props.RoleDefinitionId},
		[2]string{"principalId", props.PrincipalId},
	); err != nil {
		return models.CommonRoleAssignmentScheduleInstance{}, err
	}

	scopeType, err := armScopeType(props.Scope, props.ExpandedProperties)
	if err != nil {
		return models.CommonRoleAssignmentScheduleInstance{}, err
	}

	return models.CommonRoleAssignmentScheduleInstance{
		CommonRoleSchedule: models.CommonRoleSchedule{
			Id:                        instance.Id,
			Scope:                     props.Scope,
			RoleDefinitionId:          props.RoleDefinitionId,
			RoleDefinitionDisplayName: displayName(props.ExpandedProperties.RoleDefinition.DisplayName),
			ScopeDisplayName:          displayName(props.ExpandedProperties.Scope.DisplayName),
			ScopeType:                 scopeType,
			PrincipalId:               props.PrincipalId,
			PrincipalDisplayName:      props.ExpandedProperties.Principal.DisplayName,
			StartDateTime:             parseTime(props.StartDateTime),
			EndDateTime:               parseTime(props.EndDateTime),
			SourceType:                enums.SourceArm,
			Source:                    instance,
		},
		Status:                                  props.Status,
		LinkedRoleEligibilityScheduleInstanceId: props.LinkedRoleEligibilityScheduleInstanceId,
	}, nil
}

// GraphSchedule maps an Entra directory-role eligibility instance into the
// common model. Directory roles have no ARM scope; the directory scope id
// ("/" for tenant-wide) stands in.
func GraphSchedule(instance azure.UnifiedRoleEligibilityScheduleInstance) (models.CommonRoleSchedule, error) {
	if err := requireFields(
		[2]string{"id", instance.Id},
		[2]string{"roleDefinitionId", instance.RoleDefinitionId},
		[2]string{"principalId", instance.PrincipalId},
	); err != nil {
		return models.CommonRoleSchedule{}, err
	}

	return models.CommonRoleSchedule{
		Id:                        instance.Id,
		Scope:                     directoryScope(instance.DirectoryScopeId),
		RoleDefinitionId:          instance.RoleDefinitionId,
		RoleDefinitionDisplayName: displayName(instance.RoleDefinition.DisplayName),
		ScopeDisplayName:          directoryScopeDisplayName(instance.DirectoryScopeId),
		ScopeType:                 enums.ScopeDirectory,
		PrincipalId:               instance.PrincipalId,
		PrincipalDisplayName:      instance.Principal.DisplayName,
		StartDateTime:             parseTime(instance.StartDateTime),
		EndDateTime:               parseTime(instance.EndDateTime),
		SourceType:                enums.SourceGraph,
		Source:                    instance,
	}, nil
}

// GraphAssignment maps an Entra directory-role assignment instance into the
// common model. Graph carries no status field; the assignment type
// ("Activated" or "Assigned") serves as the provider-native status.
func GraphAssignment(instance azure.UnifiedRoleAssignmentScheduleInstance) (models.CommonRoleAssignmentScheduleInstance, error) {
	if err := requireFields(
		[2]string{"id", instance.Id},
		[2]string{"roleDefinitionId", instance.RoleDefinitionId},
		[2]string{"principalId", instance.PrincipalId},
	); err != nil {
		return models.CommonRoleAssignmentScheduleInstance{}, err
	}

	return models.CommonRoleAssignmentScheduleInstance{
		CommonRoleSchedule: models.CommonRoleSchedule{
			Id:                        instance.Id,
			Scope:                     directoryScope(instance.DirectoryScopeId),
			RoleDefinitionId:          instance.RoleDefinitionId,
			RoleDefinitionDisplayName: displayName(instance.RoleDefinition.DisplayName),
			ScopeDisplayName:          directoryScopeDisplayName(instance.DirectoryScopeId),
			ScopeType:                 enums.ScopeDirectory,
			PrincipalId:               instance.PrincipalId,
			PrincipalDisplayName:      instance.Principal.DisplayName,
			StartDateTime:             parseTime(instance.StartDateTime),
			EndDateTime:               parseTime(instance.EndDateTime),
			SourceType:                enums.SourceGraph,
			Source:                    instance,
		},
		Status: instance.AssignmentType,
	}, nil
}

// GroupSchedule maps a PIM-for-groups eligibility instance into the common
// model. The group object id stands in for the scope and the access id
// ("member" or "owner") for the role definition id.
func GroupSchedule(instance azure.PrivilegedAccessGroupEligibilityScheduleInstance) (models.CommonRoleSchedule, error) {
	if err := requireFields(
		[2]string{"id", instance.Id},
		[2]string{"accessId", instance.AccessId},
		[2]string{"groupId", instance.GroupId},
		[2]string{"principalId", instance.PrincipalId},
	); err != nil {
		return models.CommonRoleSchedule{}, err
	}

	return models.CommonRoleSchedule{
		Id:                        instance.Id,
		Scope:                     instance.GroupId,
		RoleDefinitionId:          instance.AccessId,
		RoleDefinitionDisplayName: groupRoleDisplayName(instance.AccessId),
		ScopeDisplayName:          displayName(instance.Group.DisplayName),
		ScopeType:                 enums.ScopeGroup,
		PrincipalId:               instance.PrincipalId,
		PrincipalDisplayName:      instance.Principal.DisplayName,
		StartDateTime:             parseTime(instance.StartDateTime),
		EndDateTime:               parseTime(instance.EndDateTime),
		SourceType:                enums.SourceGroup,
		Source:                    instance,
	}, nil
}

// GroupAssignment maps a PIM-for-groups assignment instance into the common
// model.
func GroupAssignment(instance azure.PrivilegedAccessGroupAssignmentScheduleInstance) (models.CommonRoleAssignmentScheduleInstance, error) {
	if err := requireFields(
		[2]string{"id", instance.Id},
		[2]string{"accessId", instance.AccessId},
		[2]string{"groupId", instance.GroupId},
		[2]string{"principalId", instance.PrincipalId},
	); err != nil {
		return models.CommonRoleAssignmentScheduleInstance{}, err
	}

	return models.CommonRoleAssignmentScheduleInstance{
		CommonRoleSchedule: models.CommonRoleSchedule{
			Id:                        instance.Id,
			Scope:                     instance.GroupId,
			RoleDefinitionId:          instance.AccessId,
			RoleDefinitionDisplayName: groupRoleDisplayName(instance.AccessId),
			ScopeDisplayName:          displayName(instance.Group.DisplayName),
			ScopeType:                 enums.ScopeGroup,
			PrincipalId:               instance.PrincipalId,
			PrincipalDisplayName:      instance.Principal.DisplayName,
			StartDateTime:             parseTime(instance.StartDateTime),
			EndDateTime:               parseTime(instance.EndDateTime),
			SourceType:                enums.SourceGroup,
			Source:                    instance,
		},
		Status: instance.AssignmentType,
	}, nil
}

func requireFields(fields ...[2]string) error {
	for _, field := range fields {
		if field[1] == "" {
			return fmt.Errorf("%w: missing %s", ErrIncompleteProviderRecord, field[0])
		}
	}
	return nil
}

// armScopeType prefers the locally-classified scope type and falls back to
// the server-expanded one for scope shapes outside the grammar.
func armScopeType(scope string, expanded azure.ExpandedProperties) (enums.ScopeType, error) {
	if identity, err := resourceid.Parse(scope); err == nil {
		return identity.ScopeType(), nil
	}
	if expanded.Scope.Type != "" {
		return enums.ScopeType(strings.ToLower(expanded.Scope.Type)), nil
	}
	return "", fmt.Errorf("%w: unclassifiable scope %q", ErrIncompleteProviderRecord, scope)
}

func directoryScope(directoryScopeId string) string {
	if directoryScopeId == "" {
		return "/"
	}
	return directoryScopeId
}

func directoryScopeDisplayName(directoryScopeId string) string {
	if directoryScopeId == "" || directoryScopeId == "/" {
		return "Directory"
	}
	return directoryScopeId
}

func groupRoleDisplayName(accessId string) string {
	switch enums.AccessId(accessId) {
	case enums.AccessMember:
		return "Group Member"
	case enums.AccessOwner:
		return "Group Owner"
	default:
		return models.UnknownDisplayName
	}
}

func displayName(value string) string {
	if value == "" {
		return models.UnknownDisplayName
	}
	return value
}

func parseTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return &parsed
	}
	return nil
}
