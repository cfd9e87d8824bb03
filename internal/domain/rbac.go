package domain

// Role adalah himpunan tertutup peran aplikasi KGB ANRI.
// Tidak ada role dinamis: admin memverifikasi usulan, pegawai hanya
// melihat data miliknya sendiri.
const (
	RoleAdmin   = "admin"
	RolePegawai = "pegawai"
)

const (
	ResourceProposal = "proposal"
	ResourceEmployee = "employee"
	ResourceHistory  = "history"
)

const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionVerify = "verify"
)

type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
