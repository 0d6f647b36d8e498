// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"recipeme/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput is the submitted sign-up form.
type SignUpInput struct {
	Username        string `form:"username" validate:"required,min=2,max=20"`
	Password        string `form:"password" validate:"required,maxbytes=72"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginInput is the submitted login form.
type LoginInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// --- Output DTOs ---

// OutcomeKind tells the delivery layer how to respond to a form submission.
type OutcomeKind int

const (
	// OutcomeInvalid means the form must be shown again with FieldErrors. Nothing was changed.
	OutcomeInvalid OutcomeKind = iota
	// OutcomeSuccess means the action completed; follow Redirect.
	OutcomeSuccess
	// OutcomeFailure means a business rule rejected the action; follow Redirect.
	OutcomeFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Outcome is the result of an auth flow.
type Outcome struct {
	Kind        OutcomeKind
	Redirect    string
	Notices     []entity.Notice
	FieldErrors entity.FieldErrors
}

// Route targets used by the auth flows.
const (
	RouteHome   = "/home"
	RouteSignUp = "/sign_up"
	RouteLogin  = "/login"
)

// AuthUsecase drives sign-up, login and logout against the caller's session.
// The session is mutated in place; persisting it is up to the caller.
type AuthUsecase interface {
	SignUp(ctx context.Context, session *entity.Session, input *SignUpInput) (*Outcome, error)
	Login(ctx context.Context, session *entity.Session, input *LoginInput) (*Outcome, error)
	Logout(ctx context.Context, session *entity.Session) *Outcome
}
