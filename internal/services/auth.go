package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/data/db"
	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/ctxutil"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/platform/validate"
)

type JWTClaims struct {
	jwt.RegisteredClaims
}

type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AuthService interface {
	RegisterUser(ctx context.Context, in RegisterInput) (*domain.User, error)
	LoginUser(ctx context.Context, email, password string) (string, *domain.User, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetMe(ctx context.Context) (*domain.User, error)
	GetAccessTTL() time.Duration
}

type AuthConfig struct {
	JWTSecretKey string
	AccessTTL    time.Duration
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

type authService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
	cfg      AuthConfig
}

func NewAuthService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, cfg AuthConfig) AuthService {
	serviceLog := log.With("service", "AuthService")
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 24 * time.Hour
	}
	return &authService{db: db, log: serviceLog, userRepo: userRepo, cfg: cfg}
}

func (as *authService) RegisterUser(ctx context.Context, in RegisterInput) (*domain.User, error) {
	const op = "auth.Register"
	email := strings.ToLower(strings.TrimSpace(in.Email))
	switch {
	case !validate.Email(email):
		return nil, domain.Validation(op, "invalid email")
	case !validate.Password(in.Password):
		return nil, domain.Validation(op, fmt.Sprintf("password must be at least %d characters", validate.MinPasswordLen))
	case !validate.Name(in.FirstName) || !validate.Name(in.LastName):
		return nil, domain.Validation(op, "first and last name are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), as.cfg.BcryptCost)
	if err != nil {
		return nil, domain.Wrap(domain.CodeInternal, op, err)
	}
	u := &domain.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  string(hash),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
	}
	if err := as.userRepo.Create(dbctx.New(ctx), u); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, domain.Conflict(op, "email already registered")
		}
		as.log.Error("Create user failed", "error", err)
		return nil, db.MapError(op, err)
	}
	as.log.Info("User registered", "user_id", u.ID)
	return u, nil
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, *domain.User, error) {
	const op = "auth.Login"
	invalid := domain.NewError(domain.CodeUnauthorized, op, "invalid email or password", nil)

	u, err := as.userRepo.GetByEmail(dbctx.New(ctx), email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, invalid
	}
	if err != nil {
		return "", nil, db.MapError(op, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, invalid
	}
	tok, err := as.generateAccessToken(u)
	if err != nil {
		return "", nil, domain.Wrap(domain.CodeInternal, op, err)
	}
	return tok, u, nil
}

func (as *authService) generateAccessToken(u *domain.User) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.cfg.AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.cfg.JWTSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	const op = "auth.Token"
	if tokenString == "" {
		return ctx, domain.NewError(domain.CodeUnauthorized, op, "missing token", nil)
	}
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.cfg.JWTSecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return ctx, domain.NewError(domain.CodeUnauthorized, op, "invalid or expired token", err)
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return ctx, domain.NewError(domain.CodeUnauthorized, op, "invalid or expired token", nil)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, domain.NewError(domain.CodeUnauthorized, op, "invalid token subject", err)
	}
	rd := &ctxutil.RequestData{
		TokenString: tokenString,
		UserID:      userID,
	}
	return ctxutil.WithRequestData(ctx, rd), nil
}

func (as *authService) GetMe(ctx context.Context) (*domain.User, error) {
	const op = "auth.Me"
	userID := ctxutil.UserID(ctx)
	if userID == uuid.Nil {
		return nil, domain.NewError(domain.CodeUnauthorized, op, "not authenticated", nil)
	}
	u, err := as.userRepo.GetByID(dbctx.New(ctx), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFound(op, "user not found")
		}
		return nil, db.MapError(op, err)
	}
	return u, nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.cfg.AccessTTL
}
