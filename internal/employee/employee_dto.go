package employee

type CreateEmployeeRequest struct {
	NIP        string `json:"nip" binding:"required"`
	FullName   string `json:"full_name" binding:"required"`
	Golongan   string `json:"golongan" binding:"required"`
	Jabatan    string `json:"jabatan"`
	UnitKerja  string `json:"unit_kerja"`
	HireDate   string `json:"hire_date" binding:"required"`
	BaseSalary int64  `json:"base_salary" binding:"required,gte=0"`
}

type UpdateEmployeeRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Golongan   string `json:"golongan" binding:"required"`
	Jabatan    string `json:"jabatan"`
	UnitKerja  string `json:"unit_kerja"`
	HireDate   string `json:"hire_date" binding:"required"`
	BaseSalary int64  `json:"base_salary" binding:"required,gte=0"`
}

type EmployeeFilterRequest struct {
	Search string `form:"search"`
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	NIP        string `json:"nip"`
	FullName   string `json:"full_name"`
	Golongan   string `json:"golongan"`
	Jabatan    string `json:"jabatan,omitempty"`
	UnitKerja  string `json:"unit_kerja,omitempty"`
	HireDate   string `json:"hire_date"`
	BaseSalary int64  `json:"base_salary"`
	MasaKerja  string `json:"masa_kerja"`
}
