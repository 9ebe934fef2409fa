package dto

// UpdateProfileRequest carries the profile fields a member may change about themselves.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateProfileRequest struct {
	Name      *string `json:"name" binding:"omitempty,notblank,max=100"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=30"`
	Bio       *string `json:"bio" binding:"omitempty,max=1000"`
	AvatarURL *string `json:"avatarUrl" binding:"omitempty,url"`
}

// LoginRequest selects the member to sign in as. An empty MemberID signs in as the first member.
type LoginRequest struct {
	MemberID string `json:"memberId"`
}

// LoginResponse returns the session token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
	MemberID  string `json:"memberId"`
	Role      string `json:"role"`
}
