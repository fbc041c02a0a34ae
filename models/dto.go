package models

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateUserRequest is the admin-side user creation payload. Unlike
// registration it may carry an explicit role.
type CreateUserRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role" binding:"omitempty,oneof=user admin superadmin"`
}

type UpdateUserRequest struct {
	Username    *string   `json:"username" binding:"omitempty,min=3,max=50"`
	Email       *string   `json:"email" binding:"omitempty,email"`
	Role        *UserRole `json:"role" binding:"omitempty,oneof=user admin superadmin"`
	Permissions *[]string `json:"permissions"`
}

type CreatePostRequest struct {
	Title         string     `json:"title" binding:"required,min=1,max=100"`
	Content       string     `json:"content" binding:"required"`
	Excerpt       string     `json:"excerpt" binding:"omitempty,max=200"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags"`
	FeaturedImage string     `json:"featured_image"`
	Status        PostStatus `json:"status" binding:"omitempty,oneof=draft published"`
}

type UpdatePostRequest struct {
	Title         *string     `json:"title" binding:"omitempty,min=1,max=100"`
	Content       *string     `json:"content"`
	Excerpt       *string     `json:"excerpt" binding:"omitempty,max=200"`
	Category      *string     `json:"category"`
	Tags          *[]string   `json:"tags"`
	FeaturedImage *string     `json:"featured_image"`
	Status        *PostStatus `json:"status" binding:"omitempty,oneof=draft published"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=500"`
}
