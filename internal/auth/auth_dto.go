package auth

type RegisterRequest struct {
	NIP      string `json:"nip" binding:"required"`
	Username string `json:"username" binding:"required,min=3"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=admin pegawai"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID       string `json:"id"`
	NIP      string `json:"nip"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}
