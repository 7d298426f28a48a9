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

// Package reconcile joins eligible roles against active assignment schedule
// instances and derives activation-state predicates over the result.
package reconcile

import (
	"time"

	"github.com/JustinGrote/PIMFast/enums"
	"github.com/JustinGrote/PIMFast/models"
)

// Roles must stay active for at least this long before the upstream service
// accepts a deactivation request.
const minimumActivationDuration = 5 * time.Minute

// Lookup maps eligible roles to their matching active assignment, if any.
// A Lookup is rebuilt wholesale by Reconcile whenever either input set
// changes and is never mutated afterwards.
type Lookup struct {
	matches map[string]models.CommonRoleAssignmentScheduleInstance
}

// Reconcile finds at most one active assignment per eligible role.
//
// Arm assignments link back to the eligibility instance they were activated
// from, giving an exact join. Graph and group records have no reverse
// linkage upstream, so they join on the (roleDefinitionId, scope,
// principalId) triple within the same source. Zero or multiple candidates
// both resolve to "no current assignment": reporting an arbitrary candidate
// would be worse than reporting none.
func Reconcile(eligible []models.EligibleRole, active []models.CommonRoleAssignmentScheduleInstance) Lookup {
	byLinkedId := make(map[string][]models.CommonRoleAssignmentScheduleInstance)
	byTriple := make(map[tripleKey][]models.CommonRoleAssignmentScheduleInstance)

	for _, assignment := range active {
		switch assignment.SourceType {
		case enums.SourceArm:
			if id := assignment.LinkedRoleEligibilityScheduleInstanceId; id != "" {
				byLinkedId[id] = append(byLinkedId[id], assignment)
			}
		case enums.SourceGraph, enums.SourceGroup:
			key := tripleOf(assignment.CommonRoleSchedule)
			byTriple[key] = append(byTriple[key], assignment)
		}
	}

	matches := make(map[string]models.CommonRoleAssignmentScheduleInstance, len(eligible))
	for _, role := range eligible {
		var candidates []models.CommonRoleAssignmentScheduleInstance
		switch role.Schedule.SourceType {
		case enums.SourceArm:
			candidates = byLinkedId[role.Schedule.Id]
		case enums.SourceGraph, enums.SourceGroup:
			candidates = byTriple[tripleOf(role.Schedule)]
		}

		if len(candidates) == 1 {
			matches[role.Key()] = candidates[0]
		}
	}

	return Lookup{matches: matches}
}

// Match returns the active assignment reconciled to the role, if one exists.
func (l Lookup) Match(role models.EligibleRole) (models.CommonRoleAssignmentScheduleInstance, bool) {
	match, ok := l.matches[role.Key()]
	return match, ok
}

// IsActivated reports whether the role has a reconciled assignment whose
// status is the source's active value.
func (l Lookup) IsActivated(role models.EligibleRole) bool {
	match, ok := l.matches[role.Key()]
	return ok && match.Status == role.Schedule.SourceType.ActiveStatus()
}

// IsNewlyActivated reports whether the role activated recently enough that
// the upstream service would still refuse to deactivate it. False when the
// assignment carries no start time.
func (l Lookup) IsNewlyActivated(role models.EligibleRole, now time.Time) bool {
	if !l.IsActivated(role) {
		return false
	}
	match := l.matches[role.Key()]
	if match.StartDateTime == nil {
		return false
	}
	return now.Sub(*match.StartDateTime) < minimumActivationDuration
}

// Len reports how many eligible roles have a reconciled assignment.
func (l Lookup) Len() int {
	return len(l.matches)
}

type tripleKey struct {
	sourceType       enums.SourceType
	roleDefinitionId string
	scope            string
	principalId      string
}

func tripleOf(schedule models.CommonRoleSchedule) tripleKey {
	return tripleKey{
		sourceType:       schedule.SourceType,
		roleDefinitionId: schedule.RoleDefinitionId,
		scope:            schedule.Scope,
		principalId:      schedule.PrincipalId,
	}
}
