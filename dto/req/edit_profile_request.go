package req

type EditProfileRequest struct {
	FullName  string `json:"fullName" validate:"required,min=2,max=255"`
	Bio       string `json:"bio" validate:"max=1000"`
	AvatarURL string `json:"avatarUrl" validate:"omitempty,url"`
	Role      string `json:"role" validate:"omitempty,oneof=student alumni staff"`
}
