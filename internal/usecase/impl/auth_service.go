// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "recipeme/internal/delivery/context"
	"recipeme/internal/domain/entity"
	domainerrors "recipeme/internal/domain/errors"
	"recipeme/internal/domain/repository"
	"recipeme/internal/domain/service"
	"recipeme/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	validator service.FormValidator
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Validator service.FormValidator
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates an account for a free username and logs the session into it.
func (srv *authService) SignUp(ctx context.Context, session *entity.Session, input *usecase.SignUpInput) (*usecase.Outcome, error) {
	if fieldErrors := srv.validator.Validate(input); len(fieldErrors) > 0 {
		return invalidOutcome(fieldErrors), nil
	}

	var created bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up username")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}

		user := &entity.User{
			ID:           uuid.New(),
			Username:     input.Username,
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		created = true

		return nil
	})

	switch {
	case errors.Is(err, domainerrors.ErrUserAlreadyExists):
		// Lost a race with a concurrent sign-up for the same name.
		created = false
	case err != nil:
		srv.log(ctx).Error("Sign-up failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sign-up transaction")
	}

	if !created {
		srv.log(ctx).Info("Sign-up rejected, username taken", slog.String("username", input.Username))

		return failureOutcome(usecase.RouteSignUp, entity.Notice{
			Message:  fmt.Sprintf("Username '%s' already exists! Please choose a different username", input.Username),
			Category: entity.NoticeDanger,
		}), nil
	}

	session.Authenticate(input.Username)
	srv.log(ctx).Info("Account created", slog.String("username", input.Username))

	return successOutcome(usecase.RouteHome, entity.Notice{
		Message:  fmt.Sprintf("Account created for '%s'!", input.Username),
		Category: entity.NoticeSuccess,
	}), nil
}

// Login authenticates the session. An unknown username is reported before any password check.
func (srv *authService) Login(ctx context.Context, session *entity.Session, input *usecase.LoginInput) (*usecase.Outcome, error) {
	if fieldErrors := srv.validator.Validate(input); len(fieldErrors) > 0 {
		return invalidOutcome(fieldErrors), nil
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login rejected, unknown username", slog.String("username", input.Username))

			return failureOutcome(usecase.RouteLogin, entity.Notice{
				Message:  fmt.Sprintf("Username '%s' does not exist", input.Username),
				Category: entity.NoticeDanger,
			}), nil
		}
		srv.log(ctx).Error("Login lookup failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected, wrong password", slog.String("username", input.Username))

		return failureOutcome(usecase.RouteLogin, entity.Notice{
			Message:  "Incorrect password please try again!",
			Category: entity.NoticeDanger,
		}), nil
	}

	session.Authenticate(input.Username)
	srv.log(ctx).Info("User logged in", slog.String("username", input.Username))

	return successOutcome(usecase.RouteHome, entity.Notice{
		Message:  fmt.Sprintf("You are logged in as '%s'", input.Username),
		Category: entity.NoticeSuccess,
	}), nil
}

// Logout wipes the session. Calling it on an anonymous session is harmless.
func (srv *authService) Logout(ctx context.Context, session *entity.Session) *usecase.Outcome {
	if session.IsAuthenticated() {
		srv.log(ctx).Info("User logged out", slog.String("username", session.Username))
	}
	session.Clear()

	return &usecase.Outcome{Kind: usecase.OutcomeSuccess, Redirect: usecase.RouteHome}
}

func invalidOutcome(fieldErrors entity.FieldErrors) *usecase.Outcome {
	return &usecase.Outcome{Kind: usecase.OutcomeInvalid, FieldErrors: fieldErrors}
}

func successOutcome(redirect string, notice entity.Notice) *usecase.Outcome {
	return &usecase.Outcome{Kind: usecase.OutcomeSuccess, Redirect: redirect, Notices: []entity.Notice{notice}}
}

func failureOutcome(redirect string, notice entity.Notice) *usecase.Outcome {
	return &usecase.Outcome{Kind: usecase.OutcomeFailure, Redirect: redirect, Notices: []entity.Notice{notice}}
}
