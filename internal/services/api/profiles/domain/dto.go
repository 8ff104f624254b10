package domain

import "context"

// UpdateInput is the PATCH /me body, nil fields are left alone
type UpdateInput struct {
	Username    *string `json:"username" validate:"omitempty,min=1,max=64" example:"pizzafan"`
	DisplayName *string `json:"displayName" validate:"omitempty,max=128" example:"Pizza Fan"`
	Bio         *string `json:"bio" validate:"omitempty,max=512"`
}

// Response is the wire shape for a profile with graph and review totals
type Response struct {
	ID             string `json:"id"`
	Username       string `json:"username,omitempty"`
	DisplayName    string `json:"displayName,omitempty"`
	AvatarURL      string `json:"avatarUrl,omitempty"`
	Bio            string `json:"bio,omitempty"`
	ReviewCount    int64  `json:"reviewCount"`
	FollowerCount  int64  `json:"followerCount"`
	FollowingCount int64  `json:"followingCount"`
}

// ServicePort is the interface implemented by the profiles service
type ServicePort interface {
	Me(ctx context.Context, userID string) (Response, error)
	UpdateMe(ctx context.Context, userID string, in UpdateInput) (Response, error)
}
