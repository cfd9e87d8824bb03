package history

type CreateKGBRecordRequest struct {
	ProposalID      string `json:"proposal_id" binding:"required,uuid"`
	EmployeeNIP     string `json:"employee_nip" binding:"required"`
	EmployeeName    string `json:"employee_name" binding:"required"`
	OldBaseSalary   int64  `json:"old_base_salary" binding:"gte=0"`
	NewBaseSalary   int64  `json:"new_base_salary" binding:"required,gte=0"`
	LetterNumber    string `json:"letter_number" binding:"required"`
	LetterIssueDate string `json:"letter_issue_date" binding:"required"`
}

type KGBRecordFilterRequest struct {
	Search string `form:"search"`
}

type KGBRecordResponse struct {
	ID              string `json:"id"`
	ProposalID      string `json:"proposal_id"`
	EmployeeNIP     string `json:"employee_nip"`
	EmployeeName    string `json:"employee_name"`
	OldBaseSalary   int64  `json:"old_base_salary"`
	NewBaseSalary   int64  `json:"new_base_salary"`
	LetterNumber    string `json:"letter_number"`
	LetterIssueDate string `json:"letter_issue_date"`
}
