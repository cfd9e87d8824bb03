package events

import "time"

const ProposalStatusChangedTopic = "kgb.proposal.status.v1"

type ProposalStatusChangedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	ProposalID  string    `json:"proposal_id"`
	EmployeeNIP string    `json:"employee_nip"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}
