package models

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile" binding:"required"`
	Dob      string `json:"dob" binding:"required"`
	Username string `json:"username" binding:"required,min=4"`
	Password string `json:"password" binding:"required,min=8"`
}

type CreateStaffRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Mobile       string `json:"mobile" binding:"required"`
	Dob          string `json:"dob" binding:"required"`
	Username     string `json:"username" binding:"required,min=4"`
	Password     string `json:"password" binding:"required,min=8"`
	StaffDetails string `json:"staff_details"`
}

type CreateAdminRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Username     string `json:"username" binding:"required,min=4"`
	Password     string `json:"password" binding:"required,min=8"`
	AdminDetails string `json:"admin_details"`
}

type SignInRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdatePasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateUserByStaffRequest struct {
	Mobile        string        `json:"mobile" binding:"required"`
	Dob           string        `json:"dob" binding:"required"`
	AccountStatus AccountStatus `json:"account_status" binding:"required,oneof=ACTIVE BLOCKED"`
}

type UpdateUserByAdminRequest struct {
	Name          string        `json:"name" binding:"required"`
	Email         string        `json:"email" binding:"required,email"`
	Mobile        string        `json:"mobile" binding:"required"`
	Dob           string        `json:"dob" binding:"required"`
	Username      string        `json:"username" binding:"required,min=4"`
	AccountStatus AccountStatus `json:"account_status" binding:"required,oneof=ACTIVE BLOCKED"`
}

type UpdateStaffByAdminRequest struct {
	Name          string        `json:"name" binding:"required"`
	Email         string        `json:"email" binding:"required,email"`
	Mobile        string        `json:"mobile" binding:"required"`
	Dob           string        `json:"dob" binding:"required"`
	Username      string        `json:"username" binding:"required,min=4"`
	AccountStatus AccountStatus `json:"account_status" binding:"required,oneof=ACTIVE BLOCKED"`
	StaffDetails  string        `json:"staff_details"`
}

type UpdateAdminByAdminRequest struct {
	Name          string        `json:"name" binding:"required"`
	Email         string        `json:"email" binding:"required,email"`
	Username      string        `json:"username" binding:"required,min=4"`
	AccountStatus AccountStatus `json:"account_status" binding:"required,oneof=ACTIVE BLOCKED"`
	AdminDetails  string        `json:"admin_details"`
}

type CreateProjectRequest struct {
	Username    string `json:"username" binding:"required"`
	ProjectName string `json:"project_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Mobile      string `json:"mobile" binding:"required"`
	Address     string `json:"address" binding:"required"`
}

type ProjectFilter struct {
	Stage  ProjectStage  `form:"stage" binding:"omitempty,oneof=PLANNING DESIGN DEVELOPMENT TESTING DEPLOYMENT COMPLETED"`
	Status ProjectStatus `form:"status" binding:"omitempty,oneof=WAITING_FOR_APPROVE APPROVED REJECTED IN_PROGRESS ON_HOLD COMPLETED CANCELLED"`
	Search string        `form:"search"`
}

type UpdateProjectRequest struct {
	ProjectName    string `json:"project_name" binding:"required"`
	ProjectDetails string `json:"project_details" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Mobile         string `json:"mobile" binding:"required"`
	Address        string `json:"address" binding:"required"`
}

type UpdateProjectStaffRequest struct {
	ProjectDetails string        `json:"project_details"`
	PaymentIDs     string        `json:"payment_ids"`
	Stage          ProjectStage  `json:"stage" binding:"required,oneof=PLANNING DESIGN DEVELOPMENT TESTING DEPLOYMENT COMPLETED"`
	Status         ProjectStatus `json:"status" binding:"required,oneof=WAITING_FOR_APPROVE APPROVED REJECTED IN_PROGRESS ON_HOLD COMPLETED CANCELLED"`
}

type UpdateProjectAdminRequest struct {
	ProjectName    string        `json:"project_name" binding:"required"`
	ProjectDetails string        `json:"project_details" binding:"required"`
	Email          string        `json:"email" binding:"required,email"`
	Mobile         string        `json:"mobile" binding:"required"`
	Address        string        `json:"address" binding:"required"`
	ProjectValue   string        `json:"project_value" binding:"required"`
	PaidAmount     string        `json:"paid_amount" binding:"required"`
	RefundAmount   string        `json:"refund_amount" binding:"required"`
	PaymentIDs     string        `json:"payment_ids"`
	Stage          ProjectStage  `json:"stage" binding:"required,oneof=PLANNING DESIGN DEVELOPMENT TESTING DEPLOYMENT COMPLETED"`
	Status         ProjectStatus `json:"status" binding:"required,oneof=WAITING_FOR_APPROVE APPROVED REJECTED IN_PROGRESS ON_HOLD COMPLETED CANCELLED"`
}

type UpdateProjectStageRequest struct {
	Stage ProjectStage `json:"stage" binding:"required,oneof=PLANNING DESIGN DEVELOPMENT TESTING DEPLOYMENT COMPLETED"`
}

type UpdateProjectStatusRequest struct {
	Status ProjectStatus `json:"status" binding:"required,oneof=WAITING_FOR_APPROVE APPROVED REJECTED IN_PROGRESS ON_HOLD COMPLETED CANCELLED"`
}

type UpdateProjectValueRequest struct {
	ProjectValue string `json:"project_value" binding:"required"`
}

type AddPaidAmountRequest struct {
	Amount    string `json:"amount" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
}

type ContactUsRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Mobile  string `json:"mobile" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type MobileOTPRequest struct {
	Mobile string `json:"mobile" binding:"required"`
}

type CredentialsNoticeRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type ExistResponse struct {
	Exist bool `json:"exist"`
}

type MsgResponse struct {
	Msg string `json:"msg"`
}
