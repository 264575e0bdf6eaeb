package dto

// CreateUserRequest is accepted as JSON or multipart form data; the optional
// profilePicture file is handled separately by the handler.
type CreateUserRequest struct {
	Username      string `json:"username" form:"username"`
	Password      string `json:"password" form:"password"`
	Email         string `json:"email" form:"email"`
	DisplayName   string `json:"displayName" form:"displayName"`
	FirstName     string `json:"firstName" form:"firstName"`
	LastName      string `json:"lastName" form:"lastName"`
	Phone         string `json:"phone" form:"phone"`
	Profession    string `json:"profession" form:"profession"`
	Description   string `json:"description" form:"description"`
	Category      string `json:"category" form:"category"`
	Instagram     string `json:"instagram" form:"instagram"`
	Twitter       string `json:"twitter" form:"twitter"`
	Youtube       string `json:"youtube" form:"youtube"`
	Tiktok        string `json:"tiktok" form:"tiktok"`
	AccountStatus string `json:"accountStatus" form:"accountStatus"`
}

type AssignRoleRequest struct {
	RoleID uint `json:"roleId"`
}

type AssignCelebrityRoleRequest struct {
	CelebrityID uint `json:"celebrityId"`
}
