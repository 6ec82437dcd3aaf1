package grading

import (
	"github.com/stbguild/guildhall/internal/models"
	"github.com/stbguild/guildhall/internal/services/auth"
)

// GradeMemberInput contains parameters for grading a member
type GradeMemberInput struct {
	Actor    *auth.Actor
	MemberID string
}

// GradeMemberOutput contains the result of grading a member
type GradeMemberOutput struct {
	// Grade is the assigned S-D letter
	Grade string

	// Summary is the model's one line assessment
	Summary string

	Member *models.Profile
}
