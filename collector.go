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

package pimfast

import (
	"context"
	"errors"
	"sort"

	"github.com/JustinGrote/PIMFast/client/query"
	"github.com/JustinGrote/PIMFast/enums"
	"github.com/JustinGrote/PIMFast/models"
	"github.com/JustinGrote/PIMFast/normalize"
	"github.com/JustinGrote/PIMFast/reconcile"
)

// RoleSnapshot is the result of one refresh: the account's eligible roles
// and the reconciled view of which are currently active.
type RoleSnapshot struct {
	EligibleRoles []models.EligibleRole
	Active        reconcile.Lookup
}

type providerResult struct {
	source   enums.SourceType
	eligible []models.EligibleRole
	active   []models.CommonRoleAssignmentScheduleInstance
	err      error
}

// RefreshRoles lists eligibility and assignment schedule instances from all
// three role providers concurrently and reconciles them into one snapshot.
//
// A provider that fails outright contributes an empty set rather than
// failing the refresh: the account may simply lack licensing or consent for
// that provider, and the others are still worth showing.
func (s *Session) RefreshRoles(ctx context.Context, account models.Account) (RoleSnapshot, error) {
	results := make(chan providerResult, 3)

	go func() { results <- s.collectArmRoles(ctx, account) }()
	go func() { results <- s.collectDirectoryRoles(ctx, account) }()
	go func() { results <- s.collectGroupRoles(ctx, account) }()

	var (
		eligible []models.EligibleRole
		active   []models.CommonRoleAssignmentScheduleInstance
	)
	for i := 0; i < 3; i++ {
		result := <-results
		if result.err != nil {
			s.log.Error(result.err, "role provider failed, continuing without it", "provider", result.source, "account", account.Id)
			continue
		}
		eligible = append(eligible, result.eligible...)
		active = append(active, result.active...)
	}

	// Provider goroutines race, so order the merged set for stable output.
	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].Key() < eligible[j].Key()
	})

	return RoleSnapshot{
		EligibleRoles: eligible,
		Active:        reconcile.Reconcile(eligible, active),
	}, ctx.Err()
}

func (s *Session) collectArmRoles(ctx context.Context, account models.Account) providerResult {
	result := providerResult{source: enums.SourceArm}

	for item := range s.azure.ListRoleEligibilityScheduleInstances(ctx, account, query.RMParams{}) {
		if item.Error != nil {
			result.err = item.Error
			return result
		}
		if schedule, err := normalize.ArmSchedule(item.Ok); err != nil {
			s.skipRecord(err, enums.SourceArm, item.Ok.Id)
		} else {
			result.eligible = append(result.eligible, models.EligibleRole{AccountId: account.Id, Schedule: schedule})
		}
	}

	for item := range s.azure.ListRoleAssignmentScheduleInstances(ctx, account, query.RMParams{}) {
		if item.Error != nil {
			result.err = item.Error
			return result
		}
		if assignment, err := normalize.ArmAssignment(item.Ok); err != nil {
			s.skipRecord(err, enums.SourceArm, item.Ok.Id)
		} else {
			result.active = append(result.active, assignment)
		}
	}

	return result
}

func (s *Session) collectDirectoryRoles(ctx context.Context, account models.Account) providerResult {
	result := providerResult{source: enums.SourceGraph}

	for item := range s.azure.ListUnifiedRoleEligibilityScheduleInstances(ctx, account, query.GraphParams{}) {
		if item.Error != nil {
			result.err = item.Error
			return result
		}
		if schedule, err := normalize.GraphSchedule(item.Ok); err != nil {
			s.skipRecord(err, enums.SourceGraph, item.Ok.Id)
		} else {
			result.eligible = append(result.eligible, models.EligibleRole{AccountId: account.Id, Schedule: schedule})
		}
	}

	for item := range s.azure.ListUnifiedRoleAssignmentScheduleInstances(ctx, account, query.GraphParams{}) {
		if item.Error != nil {
			result.err = item.Error
			return result
		}
		if assignment, err := normalize.GraphAssignment(item.Ok); err != nil {
			s.skipRecord(err, enums.SourceGraph, item.Ok.Id)
		} else {
			result.active = append(result.active, assignment)
		}
	}

	return result
}

func (s *Session) collectGroupRoles(ctx context.Context, account models.Account) providerResult {
	result := providerResult{source: enums.SourceGroup}

	for item := range s.azure.ListGroupEligibilityScheduleInstances(ctx, account, query.GraphParams{}) {
		if item.Error != nil {
			result.err = item.Error
			return result
		}
		if schedule, err := normalize.GroupSchedule(item.Ok); err != nil {
			s.skipRecord(err, enums.SourceGroup, item.Ok.Id)
		} else {
			result.eligible = append(result.eligible, models.EligibleRole{AccountId: account.Id, Schedule: schedule})
		}
	}

	for item := range s.azure.ListGroupAssignmentScheduleInstances(ctx, account, query.GraphParams{}) {
		if item.Error != nil {
			result.err = item.Error
			return result
		}
		if assignment, err := normalize.GroupAssignment(item.Ok); err != nil {
			s.skipRecord(err, enums.SourceGroup, item.Ok.Id)
		} else {
			result.active = append(result.active, assignment)
		}
	}

	return result
}

// skipRecord logs a record the normalizer rejected. Incomplete provider
// records are routine enough to log quietly; anything else is unexpected.
func (s *Session) skipRecord(err error, source enums.SourceType, id string) {
	if errors.Is(err, normalize.ErrIncompleteProviderRecord) {
		s.log.V(1).Info("skipping incomplete schedule instance", "provider", source, "id", id)
	} else {
		s.log.Error(err, "skipping schedule instance", "provider", source, "id", id)
	}
}
