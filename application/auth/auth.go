package auth

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hendrawans/marketplace/cmd/config"
	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/model"
	otprepo "github.com/hendrawans/marketplace/repository/otp"
	redisrepo "github.com/hendrawans/marketplace/repository/redis"
	userrepo "github.com/hendrawans/marketplace/repository/user"
	"github.com/hendrawans/marketplace/thirdparty/mailer"
	"github.com/hendrawans/marketplace/utils/errors"
	"github.com/hendrawans/marketplace/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Signup(ctx context.Context, req *model.SignupRequest) error
	SendOTP(ctx context.Context, req *model.SendOTPRequest) error
	VerifyOTP(ctx context.Context, req *model.VerifyOTPRequest) (*model.VerifyOTPResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (string, error)
}

type authAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	otpRepo   otprepo.OTPRepository
	redisRepo redisrepo.RedisRepository
	mailer    mailer.Mailer
}

func NewAuthApp(config *config.Config, userRepo userrepo.UserRepository, otpRepo otprepo.OTPRepository, redisRepo redisrepo.RedisRepository, m mailer.Mailer) AuthApp {
	return &authAppImpl{
		config:    config,
		userRepo:  userRepo,
		otpRepo:   otpRepo,
		redisRepo: redisRepo,
		mailer:    m,
	}
}

// Login checks the credential and issues a token with a Redis-backed
// session. Unknown user and bad password come back as success=false bodies
// rather than error statuses, which callers rely on.
func (s *authAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("[Login] err userRepo.GetByEmail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return &model.LoginResponse{Success: false, Message: "User not found"}, nil
	}

	if err := s.userRepo.SetLastAccessed(ctx, user.ID, time.Now().UTC()); err != nil {
		logger.Error("[Login] err userRepo.SetLastAccessed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return &model.LoginResponse{Success: false, Message: "Password does not match"}, nil
	}

	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Success: true,
		Token:   token,
		SessionDetails: &model.SessionDetails{
			ID:       user.ID,
			Username: user.Name,
			Email:    user.Email,
		},
	}, nil
}

// Signup checks that the email is still free; account creation happens in
// VerifyOTP once the emailed code checks out.
func (s *authAppImpl) Signup(ctx context.Context, req *model.SignupRequest) error {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("[Signup] err userRepo.GetByEmail", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return errors.SetCustomError(constant.ErrConflict)
	}
	return nil
}

func (s *authAppImpl) SendOTP(ctx context.Context, req *model.SendOTPRequest) error {
	code := generateOTP()
	record := &model.OTPRecord{
		Email:     req.Email,
		OTP:       code,
		ExpiresAt: time.Now().UTC().Add(s.config.Auth.OTPExpiration),
	}

	if err := s.otpRepo.Upsert(ctx, record); err != nil {
		logger.Error("[SendOTP] err otpRepo.Upsert", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.mailer.SendOTP(req.Email, code); err != nil {
		logger.Error("[SendOTP] err mailer.SendOTP", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// VerifyOTP checks the emailed code inside its expiry window. An expired
// record is deleted on detection. On success the account is created with a
// generated unique id.
func (s *authAppImpl) VerifyOTP(ctx context.Context, req *model.VerifyOTPRequest) (*model.VerifyOTPResponse, error) {
	record, err := s.otpRepo.Get(ctx, req.Email)
	if err != nil {
		logger.Error("[VerifyOTP] err otpRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if record == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if time.Now().UTC().After(record.ExpiresAt) {
		if err := s.otpRepo.Delete(ctx, req.Email); err != nil {
			logger.Error("[VerifyOTP] err otpRepo.Delete expired", zap.String("error", err.Error()))
		}
		return nil, errors.SetCustomError(constant.ErrOTPExpired)
	}

	if record.OTP != req.OTP {
		return nil, errors.SetCustomError(constant.ErrOTPMismatch)
	}

	userID, err := s.generateUserID(ctx, req.Username)
	if err != nil {
		logger.Error("[VerifyOTP] err generateUserID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[VerifyOTP] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	user := &model.User{
		ID:        userID,
		Name:      req.Username,
		Password:  string(hashed),
		Email:     req.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.Error("[VerifyOTP] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.otpRepo.Delete(ctx, req.Email); err != nil {
		logger.Error("[VerifyOTP] err otpRepo.Delete", zap.String("error", err.Error()))
	}

	return &model.VerifyOTPResponse{UserID: userID}, nil
}

// ValidateToken checks the token signature and its Redis session; the
// session middleware uses it opportunistically.
func (s *authAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid claims")
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("token missing subject")
	}
	if claims.ID == "" {
		return "", fmt.Errorf("token missing jti")
	}

	sessionUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return "", fmt.Errorf("invalid or expired session")
	}
	if sessionUserID != claims.Subject {
		return "", fmt.Errorf("token does not match user session")
	}

	return claims.Subject, nil
}

func (s *authAppImpl) generateJWT(userID string) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

// generateUserID derives an id from the username plus a 5-digit suffix,
// retried until the id is free.
func (s *authAppImpl) generateUserID(ctx context.Context, username string) (string, error) {
	base := strings.ReplaceAll(strings.ToLower(username), " ", "_")

	for {
		candidate := fmt.Sprintf("%s%05d", base, 10000+rand.Intn(90000))
		existing, err := s.userRepo.GetByID(ctx, candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
	}
}

func generateOTP() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}
