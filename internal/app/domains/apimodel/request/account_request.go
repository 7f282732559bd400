package request

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Nguyen Van A"`
	Phone    string `json:"phone" binding:"required" example:"0901234567"`
	Email    string `json:"email" binding:"omitempty,email" example:"a@example.com"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required" example:"USER"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required" example:"0901234567"`
	Password string `json:"password" binding:"required"`
}
