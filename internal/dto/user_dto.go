package dto

type RegisterRequest struct {
	Nickname string `json:"nickname" validate:"required,max=64"`
	Avatar   string `json:"avatar" validate:"omitempty,max=255"`
}

type UpdateUserRequest struct {
	Nickname string `json:"nickname" validate:"omitempty,max=64"`
	Avatar   string `json:"avatar" validate:"omitempty,max=255"`
}
