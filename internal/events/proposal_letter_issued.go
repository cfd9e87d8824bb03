package events

import "time"

const ProposalLetterIssuedTopic = "kgb.proposal.letter.v1"

// ProposalLetterIssuedEvent dipublish saat SK KGB diterbitkan.
// Consumer memakai payload ini untuk menulis riwayat KGB pegawai.
type ProposalLetterIssuedEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	ProposalID      string    `json:"proposal_id"`
	EmployeeNIP     string    `json:"employee_nip"`
	EmployeeName    string    `json:"employee_name"`
	OldBaseSalary   int64     `json:"old_base_salary"`
	NewBaseSalary   int64     `json:"new_base_salary"`
	LetterNumber    string    `json:"letter_number"`
	LetterIssueDate string    `json:"letter_issue_date"`
	OccurredAt      time.Time `json:"occurred_at"`
}
