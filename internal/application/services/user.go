package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/unicode/norm"

	"user-registration-api/internal/application/ports"
	domain "user-registration-api/internal/domain/user"
	"user-registration-api/internal/infrastructure/jwt"
	"user-registration-api/internal/infrastructure/mq"
	"user-registration-api/internal/infrastructure/password"
	userDTO "user-registration-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	userRepository domain.Repository
	passwords      *password.Service
	jwtService     *jwt.Service
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	passwords *password.Service,
	jwtService *jwt.Service,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		passwords:      passwords,
		jwtService:     jwtService,
		mq:             mq,
		mCounter:       mCounter,
	}
}

// RegisterUser enforces email uniqueness, hashes the password and persists
// the user with its phones and first bearer token in a single transaction.
// The id is generated here so the token can embed it before the insert.
func (us *UserService) RegisterUser(ctx context.Context, u domain.User, plaintext string) (*domain.User, error) {
	exists, err := us.userRepository.ExistsByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	u.ID = uuid.New()
	u.Name = norm.NFC.String(u.Name)

	u.PasswordHash, err = us.passwords.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u.Token, err = us.jwtService.GenerateJWT(u.ID.String(), u.Email)
	if err != nil {
		return nil, ErrFailedToGenerateToken
	}

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodPost,
			UserID:  uRet.ID.String(),
			Payload: userDTO.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("user_registered_total").Inc()

	return uRet, nil
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return u, nil
}

// TouchLastLogin refreshes last_login without re-issuing a token.
func (us *UserService) TouchLastLogin(ctx context.Context, id domain.UUID) (*domain.User, error) {
	uRet, err := us.userRepository.TouchLastLogin(ctx, id)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodPatch,
			UserID:  uRet.ID.String(),
			Payload: userDTO.ToResponseUser(*uRet),
		}

		us.mCounter.WithLabelValues("user_login_touch_total").Inc()
	}

	return uRet, nil
}
