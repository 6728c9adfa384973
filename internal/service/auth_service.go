package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"theatre-booking/internal/auth"
	"theatre-booking/internal/cache"
	"theatre-booking/internal/model"
	"theatre-booking/internal/queue"
	"theatre-booking/internal/repository"
	apperrors "theatre-booking/pkg/app_errors"
	"theatre-booking/pkg/logger"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	// SendMagicLink queues a sign-in link for destination.
	SendMagicLink(ctx context.Context, destination string) error
	// VerifyMagicLink consumes a link and finds or creates the user behind it.
	VerifyMagicLink(ctx context.Context, token string) (*model.MagicLinkIdentity, error)
	LoginOrCompleteSignup(ctx context.Context, identity *model.MagicLinkIdentity) (*model.LoginResult, error)
	CompleteSignup(ctx context.Context, req model.CompleteSignupRequest) (*model.TokenPair, error)
	Register(ctx context.Context, req model.RegisterRequest) (*model.TokenPair, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.TokenPair, error)
	// RefreshTokens rotates: the presented refresh token is expired and a new pair issued.
	RefreshTokens(ctx context.Context, userID uuid.UUID, refreshToken string) (*model.TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error
}

type AuthOptions struct {
	CallbackURL string
	BcryptCost  int
}

type AuthServiceImpl struct {
	users   repository.UserRepository
	tokens  repository.RefreshTokenRepository
	issuer  *auth.TokenIssuer
	guard   cache.MagicLinkGuard
	mail    queue.MailQueue
	options AuthOptions
}

func NewAuthService(
	users repository.UserRepository,
	tokens repository.RefreshTokenRepository,
	issuer *auth.TokenIssuer,
	guard cache.MagicLinkGuard,
	mail queue.MailQueue,
	options AuthOptions,
) AuthService {
	return &AuthServiceImpl{
		users:   users,
		tokens:  tokens,
		issuer:  issuer,
		guard:   guard,
		mail:    mail,
		options: options,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthServiceImpl) SendMagicLink(ctx context.Context, destination string) error {
	destination = normalizeEmail(destination)

	token, err := s.issuer.NewMagicLinkToken(destination)
	if err != nil {
		return err
	}

	link, err := url.Parse(s.options.CallbackURL)
	if err != nil {
		return err
	}
	q := link.Query()
	q.Set("token", token)
	link.RawQuery = q.Encode()

	msg := &model.MailMessage{
		ID:          uuid.New().String(),
		Destination: destination,
		Subject:     "Your sign-in link",
		Link:        link.String(),
		QueuedAt:    time.Now().UTC(),
	}

	if err := s.mail.PublishMail(ctx, msg); err != nil {
		logger.WithComponent("service").Error("queue magic link mail failed", zap.String("destination", destination), zap.Error(err))
		return apperrors.ErrInternalServerError
	}

	return nil
}

// consume verifies a magic-link style token and burns its id.
func (s *AuthServiceImpl) consume(ctx context.Context, token string) (*auth.MagicLink, error) {
	link, err := s.issuer.ParseMagicLinkToken(token)
	if err != nil {
		return nil, err
	}

	fresh, err := s.guard.Consume(ctx, link.TokenID, time.Until(link.ExpiresAt))
	if err != nil {
		return nil, err
	}
	if !fresh {
		return nil, apperrors.ErrInvalidToken
	}

	return link, nil
}

func (s *AuthServiceImpl) VerifyMagicLink(ctx context.Context, token string) (*model.MagicLinkIdentity, error) {
	link, err := s.consume(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, link.Destination)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		user, err = s.users.Create(ctx, &model.User{Email: link.Destination})
		// lost a race with a parallel first sign-in
		if errors.Is(err, apperrors.ErrEmailTaken) {
			user, err = s.users.FindByEmail(ctx, link.Destination)
		}
	}
	if err != nil {
		return nil, err
	}

	next := model.NextActionCompleteSignup
	if user.HasCompletedSignup() {
		next = model.NextActionSignIn
	}

	return &model.MagicLinkIdentity{
		UserID:     user.ID,
		Email:      user.Email,
		NextAction: next,
	}, nil
}

func (s *AuthServiceImpl) LoginOrCompleteSignup(ctx context.Context, identity *model.MagicLinkIdentity) (*model.LoginResult, error) {
	if identity.NextAction == model.NextActionSignIn {
		tokens, err := s.issueTokens(ctx, identity.UserID)
		if err != nil {
			return nil, err
		}
		return &model.LoginResult{NextAction: model.NextActionSignIn, Tokens: tokens}, nil
	}

	signupToken, err := s.issuer.NewMagicLinkToken(identity.Email)
	if err != nil {
		return nil, err
	}

	return &model.LoginResult{
		Message:     "Please complete your signup",
		NextAction:  model.NextActionCompleteSignup,
		SignupToken: signupToken,
	}, nil
}

func (s *AuthServiceImpl) CompleteSignup(ctx context.Context, req model.CompleteSignupRequest) (*model.TokenPair, error) {
	link, err := s.consume(ctx, req.Token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, link.Destination)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrSignupRequired
		}
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if _, err := s.users.Update(ctx, user.ID, model.UpdateUserParams{Name: &name}); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user.ID)
}

func (s *AuthServiceImpl) Register(ctx context.Context, req model.RegisterRequest) (*model.TokenPair, error) {
	hash, err := auth.HashPassword(req.Password, s.options.BcryptCost)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	user, err := s.users.Create(ctx, &model.User{
		Email:        normalizeEmail(req.Email),
		Name:         &name,
		PasswordHash: &hash,
	})
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user.ID)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req model.LoginRequest) (*model.TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	// magic-link only accounts have no password
	if user.PasswordHash == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	ok, err := auth.CheckPassword(*user.PasswordHash, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user.ID)
}

func (s *AuthServiceImpl) RefreshTokens(ctx context.Context, userID uuid.UUID, refreshToken string) (*model.TokenPair, error) {
	stored, err := s.tokens.FindValid(ctx, userID, auth.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidToken) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	// a concurrent refresh with the same token already rotated it
	if err := s.tokens.Expire(ctx, stored.ID); err != nil {
		if errors.Is(err, apperrors.ErrInvalidToken) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	return s.issueTokens(ctx, userID)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	stored, err := s.tokens.FindValid(ctx, userID, auth.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidToken) {
			return nil
		}
		return err
	}

	if err := s.tokens.Expire(ctx, stored.ID); err != nil && !errors.Is(err, apperrors.ErrInvalidToken) {
		return err
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, userID uuid.UUID) (*model.TokenPair, error) {
	access, err := s.issuer.NewAccessToken(userID)
	if err != nil {
		return nil, err
	}

	raw, err := auth.NewRefreshToken()
	if err != nil {
		return nil, err
	}

	err = s.tokens.Create(ctx, &model.RefreshToken{
		UserID:    userID,
		TokenHash: auth.HashToken(raw),
		ExpiresAt: time.Now().UTC().Add(s.issuer.RefreshTTL()),
	})
	if err != nil {
		return nil, err
	}

	return &model.TokenPair{
		AccessToken:  access,
		RefreshToken: raw,
		UserID:       userID.String(),
	}, nil
}
