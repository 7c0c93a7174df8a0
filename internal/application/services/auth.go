package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"user-registration-api/internal/application/ports"
	domain "user-registration-api/internal/domain/user"
	"user-registration-api/internal/infrastructure/jwt"
	"user-registration-api/internal/infrastructure/mq"
	"user-registration-api/internal/infrastructure/password"
	userDTO "user-registration-api/internal/interface/api/rest/dto/user"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	userRepository domain.Repository
	passwords      *password.Service
	jwtService     *jwt.Service
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewAuthService(
	userRepository domain.Repository,
	passwords *password.Service,
	jwtService *jwt.Service,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.Auth {
	return &AuthService{
		userRepository: userRepository,
		passwords:      passwords,
		jwtService:     jwtService,
		mq:             mq,
		mCounter:       mCounter,
	}
}

// Login verifies credentials, mints a fresh token and persists it together
// with the last_login timestamp. Unknown email and wrong password both
// produce ErrInvalidCredentials so callers cannot enumerate accounts.
func (as *AuthService) Login(ctx context.Context, email, plaintext string) (*domain.User, error) {
	u, err := as.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err = as.passwords.Verify(plaintext, u.PasswordHash); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, ErrInvalidCredentials
		}
		// corrupted digest: an internal failure, not bad credentials
		return nil, err
	}

	token, err := as.jwtService.GenerateJWT(u.ID.String(), u.Email)
	if err != nil {
		return nil, ErrFailedToGenerateToken
	}

	uRet, err := as.userRepository.UpdateToken(ctx, u.ID, token)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, ErrInvalidCredentials
	}

	as.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  http.MethodPut,
		UserID:  uRet.ID.String(),
		Payload: userDTO.ToResponseUser(*uRet),
	}

	as.mCounter.WithLabelValues("user_login_total").Inc()

	return uRet, nil
}
