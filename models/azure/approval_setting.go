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

package azure

// ApprovalSettings represents the approvalSettings resource type
// https://learn.microsoft.com/en-us/graph/api/resources/approvalsettings?view=graph-rest-1.0
type ApprovalSettings struct {
	Type                             string                 `json:"@odata.type,omitempty"`
	ApprovalMode                     string                 `json:"approvalMode,omitempty"`
	ApprovalStages                   []UnifiedApprovalStage `json:"approvalStages,omitempty"`
	IsApprovalRequired               bool                   `json:"isApprovalRequired,omitempty"`
	IsApprovalRequiredForExtension   bool                   `json:"isApprovalRequiredForExtension,omitempty"`
	IsRequestorJustificationRequired bool                   `json:"isRequestorJustificationRequired,omitempty"`
}

// UnifiedApprovalStage represents the unifiedApprovalStage resource type
// https://learn.microsoft.com/en-us/graph/api/resources/unifiedapprovalstage?view=graph-rest-1.0
type UnifiedApprovalStage struct {
	Type                            string                  `json:"@odata.type,omitempty"`
	ApprovalStageTimeOutInDays      int32                   `json:"approvalStageTimeOutInDays,omitempty"`
	IsApproverJustificationRequired bool                    `json:"isApproverJustificationRequired,omitempty"`
	EscalationTimeInMinutes         int32                   `json:"escalationTimeInMinutes,omitempty"`
	PrimaryApprovers                []ApprovalStageApprover `json:"primaryApprovers,omitempty"`
	IsEscalationEnabled             bool                    `json:"isEscalationEnabled,omitempty"`
	EscalationApprovers             []ApprovalStageApprover `json:"escalationApprovers,omitempty"`
}

// ApprovalStageApprover is a subjectSet collection entry; Type discriminates
// single-user from group-member approvers.
type ApprovalStageApprover struct {
	Type    string `json:"@odata.type,omitempty"`
	UserId  string `json:"userId,omitempty"`
	GroupId string `json:"groupId,omitempty"`
}
