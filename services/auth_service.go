package services

import (
	"errors"
	"strings"
	"time"

	"github.com/AGTechathon/Agriminds/entity"
	"github.com/AGTechathon/Agriminds/pkg/apperr"
	"github.com/AGTechathon/Agriminds/repository"
	"github.com/AGTechathon/Agriminds/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB          *gorm.DB
	userRepo    *repository.UserRepository
	profileRepo *repository.ProfileRepository
	jwtSecret   string
	jwtTTL      time.Duration
}

func NewAuthService(db *gorm.DB, repo *repository.UserRepository, profiles *repository.ProfileRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		DB:          db,
		userRepo:    repo,
		profileRepo: profiles,
		jwtSecret:   secret,
		jwtTTL:      ttl,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     entity.Role
	Phone    string
}

// Register creates the account, and for agents the matching agent profile, in one transaction.
func (s *AuthService) Register(in RegisterInput) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if username == "" || email == "" {
		return nil, apperr.NewInvalidInput("username and email are required")
	}
	if len(in.Password) < 6 {
		return nil, apperr.NewInvalidInput("password must be at least 6 characters")
	}
	if !in.Role.Valid() {
		return nil, apperr.NewInvalidInput("invalid role")
	}
	if in.Role == entity.RoleAdmin {
		return nil, apperr.NewInvalidInput("admin accounts cannot be self-registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     in.Role,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		users := s.userRepo.WithTx(tx)
		exists, err := users.ExistsByUsernameOrEmail(username, email)
		if err != nil {
			return apperr.Internal(err)
		}
		if exists {
			return apperr.NewConflict("username or email already registered")
		}
		// the unique index still decides when two registrations race past the check
		if err := users.Create(user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.NewConflict("username or email already registered")
			}
			return apperr.Internal(err)
		}
		if in.Role.IsAgent() {
			profile := &entity.AgentProfile{
				UserID: user.ID,
				Kind:   in.Role.AgentKind(),
				Name:   username,
				Phone:  strings.TrimSpace(in.Phone),
			}
			if err := users.CreateAgentProfile(profile); err != nil {
				return apperr.Internal(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and issues a session token.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if apperr.Is(err, apperr.NotFound) {
			return "", nil, apperr.NewUnauthorized("invalid credentials")
		}
		return "", nil, apperr.Internal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.NewUnauthorized("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role), s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Internal(err)
	}
	return token, user, nil
}

// Me loads the caller, with the agent profile attached for agent roles.
func (s *AuthService) Me(userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}
	if user.Role.IsAgent() {
		p, err := s.profileRepo.FindAgent(user.ID)
		switch {
		case err == nil:
			user.AgentProfile = p
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperr.Internal(err)
		}
	}
	return user, nil
}

func (s *AuthService) ListUsers(role entity.Role, page repository.Page) ([]entity.User, int64, error) {
	if role != "" && !role.Valid() {
		return nil, 0, apperr.NewInvalidInput("invalid role")
	}
	users, total, err := s.userRepo.List(role, page)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return users, total, nil
}
