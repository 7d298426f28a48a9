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

package models

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/JustinGrote/PIMFast/enums"
	"github.com/JustinGrote/PIMFast/models/azure"
)

// RoleActivationPolicy flattens the rule collection of a role management
// policy assignment into the requirements that gate activating an eligible
// role. Read-only: evaluating or enforcing these requirements is the
// upstream service's job.
type RoleActivationPolicy struct {
	azure.UnifiedRoleManagementPolicyAssignment

	Id               string `json:"id,omitempty"`
	RoleDefinitionId string `json:"roleDefinitionId,omitempty"`

	MaximumDuration string `json:"maximumDuration,omitempty"`

	RequiresApproval              bool `json:"requiresApproval,omitempty"`
	RequiresMFA                   bool `json:"requiresMFA,omitempty"`
	RequiresJustification         bool `json:"requiresJustification,omitempty"`
	RequiresTicketInformation     bool `json:"requiresTicketInformation,omitempty"`
	RequiresAuthenticationContext bool `json:"requiresAuthenticationContext,omitempty"`

	UserApprovers  []string `json:"userApprovers,omitempty"`
	GroupApprovers []string `json:"groupApprovers,omitempty"`
}

type policyRuleType struct {
	Type enums.RoleManagementPolicyRuleType `json:"@odata.type"`
}

// NewRoleActivationPolicy unmarshalls the assignment's Policy.Rules into
// their concrete types and extracts the end-user activation requirements.
func NewRoleActivationPolicy(assignment azure.UnifiedRoleManagementPolicyAssignment) (RoleActivationPolicy, error) {
	policy := RoleActivationPolicy{
		UnifiedRoleManagementPolicyAssignment: assignment,

		Id:               assignment.Id,
		RoleDefinitionId: assignment.RoleDefinitionId,
	}

	for _, rule := range assignment.Policy.Rules {
		var ruleType policyRuleType
		if err := json.Unmarshal(rule, &ruleType); err != nil {
			return policy, err
		}

		switch ruleType.Type {
		case enums.PolicyRuleApproval:
			if err := policy.applyApprovalRule(rule); err != nil {
				return policy, err
			}
		case enums.PolicyRuleExpiration:
			if err := policy.applyExpirationRule(rule); err != nil {
				return policy, err
			}
		case enums.PolicyRuleEnablement:
			if err := policy.applyEnablementRule(rule); err != nil {
				return policy, err
			}
		case enums.PolicyRuleAuthenticationContext:
			if err := policy.applyAuthenticationContextRule(rule); err != nil {
				return policy, err
			}
		default:
			continue
		}
	}

	return policy, nil
}

func (p *RoleActivationPolicy) applyApprovalRule(data json.RawMessage) error {
	var rule azure.UnifiedRoleManagementPolicyApprovalRule
	if err := json.Unmarshal(data, &rule); err != nil {
		return fmt.Errorf("error unmarshalling approval rule: %w", err)
	}

	for _, stage := range rule.Setting.ApprovalStages {
		for _, approver := range stage.PrimaryApprovers {
			switch approver.Type {
			case enums.ApprovalStageSingleUser:
				p.UserApprovers = append(p.UserApprovers, approver.UserId)
			case enums.ApprovalStageGroupMembers:
				p.GroupApprovers = append(p.GroupApprovers, approver.GroupId)
			}
		}
	}

	p.RequiresApproval = rule.Setting.IsApprovalRequired
	return nil
}

func (p *RoleActivationPolicy) applyExpirationRule(data json.RawMessage) error {
	var rule azure.UnifiedRoleManagementPolicyExpirationRule
	if err := json.Unmarshal(data, &rule); err != nil {
		return fmt.Errorf("error unmarshalling expiration rule: %w", err)
	}

	// Only the end-user activation window is of interest here; the admin
	// assignment window shares the rule type but a different target.
	if rule.Target.Caller == "EndUser" {
		p.MaximumDuration = rule.MaximumDuration
	}
	return nil
}

func (p *RoleActivationPolicy) applyEnablementRule(data json.RawMessage) error {
	var rule azure.UnifiedRoleManagementPolicyEnablementRule
	if err := json.Unmarshal(data, &rule); err != nil {
		return fmt.Errorf("error unmarshalling enablement rule: %w", err)
	}

	// Policies carry an admin-target enablement rule alongside the end-user
	// one; only the end-user activation requirements matter here.
	if rule.Target.Caller == "EndUser" {
		p.RequiresMFA = slices.Contains(rule.EnabledRules, "MultiFactorAuthentication")
		p.RequiresJustification = slices.Contains(rule.EnabledRules, "Justification")
		p.RequiresTicketInformation = slices.Contains(rule.EnabledRules, "Ticketing")
	}
	return nil
}

func (p *RoleActivationPolicy) applyAuthenticationContextRule(data json.RawMessage) error {
	var rule azure.UnifiedRoleManagementPolicyAuthenticationContextRule
	if err := json.Unmarshal(data, &rule); err != nil {
		return fmt.Errorf("error unmarshalling authentication context rule: %w", err)
	}

	if rule.Target.Caller == "EndUser" {
		p.RequiresAuthenticationContext = rule.IsEnabled
	}
	return nil
}
