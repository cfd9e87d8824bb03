package proposal

type CreateProposalRequest struct {
	EmployeeNIP   string `json:"employee_nip" binding:"required"`
	EmployeeName  string `json:"employee_name" binding:"required"`
	Golongan      string `json:"golongan" binding:"required"`
	Jabatan       string `json:"jabatan"`
	UnitKerja     string `json:"unit_kerja"`
	MasaKerja     string `json:"masa_kerja"`
	OldBaseSalary int64  `json:"old_base_salary" binding:"gte=0"`
	NewBaseSalary int64  `json:"new_base_salary" binding:"required,gte=0"`
}

type ApproveProposalRequest struct {
	Note string `json:"note"`
}

type RejectProposalRequest struct {
	Note string `json:"note"`
}

type AttachDecisionFileRequest struct {
	FileName string `json:"file_name" binding:"required"`
	FileData string `json:"file_data" binding:"required"` // base64, boleh dengan prefix data URL
}

type IssueDecisionLetterRequest struct {
	// LetterNumber wajib diisi, kecuali AutoNumber diminta eksplisit.
	LetterNumber string `json:"letter_number"`
	AutoNumber   bool   `json:"auto_number"`
	IssueDate    string `json:"issue_date" binding:"required"`
}

type ProposalFilterRequest struct {
	Search string `form:"search"`
	Status string `form:"status" binding:"omitempty,oneof=all PENDING APPROVED REJECTED"`
}

type ProposalResponse struct {
	ID             string `json:"id"`
	EmployeeNIP    string `json:"employee_nip"`
	EmployeeName   string `json:"employee_name"`
	Golongan       string `json:"golongan"`
	Jabatan        string `json:"jabatan,omitempty"`
	UnitKerja      string `json:"unit_kerja,omitempty"`
	MasaKerja      string `json:"masa_kerja,omitempty"`
	OldBaseSalary  int64  `json:"old_base_salary"`
	NewBaseSalary  int64  `json:"new_base_salary"`
	SubmissionDate string `json:"submission_date"`

	Status     string  `json:"status"`
	ReviewNote *string `json:"review_note,omitempty"`
	ReviewedBy *string `json:"reviewed_by,omitempty"`
	ReviewedAt *string `json:"reviewed_at,omitempty"`

	LetterNumber    *string `json:"letter_number,omitempty"`
	LetterIssueDate *string `json:"letter_issue_date,omitempty"`

	DecisionFileName *string `json:"decision_file_name,omitempty"`
	HasDecisionFile  bool    `json:"has_decision_file"`

	CreatedBy string `json:"created_by"`
}

type ProposalStatsResponse struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type DecisionLetterResponse struct {
	ProposalID   string   `json:"proposal_id"`
	LetterNumber string   `json:"letter_number"`
	IssueDate    string   `json:"issue_date"`
	Lines        []string `json:"lines"`
}
