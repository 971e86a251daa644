package inout

type UpdateRoleReq struct {
	Role string `json:"role" binding:"required,oneof=USER ADMIN"`
}

type UpdateBanReq struct {
	IsBanned *bool `json:"isBanned" binding:"required"`
}
