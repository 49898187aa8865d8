package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	appauth "github.com/hendrawans/marketplace/application/auth"
	"github.com/hendrawans/marketplace/cmd/config"
	"github.com/hendrawans/marketplace/constant"
	otpmocks "github.com/hendrawans/marketplace/mocks/repository/otp"
	redismocks "github.com/hendrawans/marketplace/mocks/repository/redis"
	usermocks "github.com/hendrawans/marketplace/mocks/repository/user"
	mailermocks "github.com/hendrawans/marketplace/mocks/thirdparty/mailer"
	"github.com/hendrawans/marketplace/model"
	cerr "github.com/hendrawans/marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
			OTPExpiration:  10 * time.Minute,
		},
	}
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func hashPassword(t *testing.T, pwd string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func TestAuthApp_Login(t *testing.T) {
	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}

	tests := []struct {
		name        string
		req         *model.LoginRequest
		mockCall    func(t *testing.T, f fields)
		wantSuccess bool
		wantMessage string
	}{
		{
			name: "unknown user comes back as success=false",
			req:  &model.LoginRequest{Email: "ghost@example.com", Password: "whatever"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil).Once()
			},
			wantSuccess: false,
			wantMessage: "User not found",
		},
		{
			name: "wrong password comes back as success=false",
			req:  &model.LoginRequest{Email: "andi@example.com", Password: "wrong"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("GetByEmail", mock.Anything, "andi@example.com").Return(&model.User{
					ID:       "andi_12345",
					Email:    "andi@example.com",
					Password: hashPassword(t, "secret123"),
				}, nil).Once()
				f.userRepo.On("SetLastAccessed", mock.Anything, "andi_12345", mock.Anything).Return(nil).Once()
			},
			wantSuccess: false,
			wantMessage: "Password does not match",
		},
		{
			name: "success issues a token and a session",
			req:  &model.LoginRequest{Email: "andi@example.com", Password: "secret123"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("GetByEmail", mock.Anything, "andi@example.com").Return(&model.User{
					ID:       "andi_12345",
					Name:     "Andi",
					Email:    "andi@example.com",
					Password: hashPassword(t, "secret123"),
				}, nil).Once()
				f.userRepo.On("SetLastAccessed", mock.Anything, "andi_12345", mock.Anything).Return(nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.Anything, "andi_12345", time.Hour).Return(nil).Once()
			},
			wantSuccess: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			}
			tt.mockCall(t, f)

			app := appauth.NewAuthApp(testConfig(), f.userRepo, otpmocks.NewOTPRepository(t), f.redisRepo, mailermocks.NewMailer(t))

			got, err := app.Login(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if got.Success != tt.wantSuccess {
				t.Fatalf("Login() success = %v, want %v", got.Success, tt.wantSuccess)
			}
			if !tt.wantSuccess {
				if got.Message != tt.wantMessage {
					t.Fatalf("Login() message = %q, want %q", got.Message, tt.wantMessage)
				}
				if got.Token != "" {
					t.Fatalf("Login() issued a token on a failed attempt")
				}
				return
			}
			if got.Token == "" || got.SessionDetails == nil || got.SessionDetails.ID != "andi_12345" {
				t.Fatalf("Login() = %+v, want token and session details", got)
			}
		})
	}
}

func TestAuthApp_LoginThenValidateToken(t *testing.T) {
	userRepo := usermocks.NewUserRepository(t)
	redisRepo := redismocks.NewRedisRepository(t)

	userRepo.On("GetByEmail", mock.Anything, "andi@example.com").Return(&model.User{
		ID:       "andi_12345",
		Email:    "andi@example.com",
		Password: hashPassword(t, "secret123"),
	}, nil).Once()
	userRepo.On("SetLastAccessed", mock.Anything, "andi_12345", mock.Anything).Return(nil).Once()

	var jti string
	redisRepo.On("SetSession", mock.Anything, mock.Anything, "andi_12345", time.Hour).
		Run(func(args mock.Arguments) {
			jti = args.String(1)
		}).Return(nil).Once()

	app := appauth.NewAuthApp(testConfig(), userRepo, otpmocks.NewOTPRepository(t), redisRepo, mailermocks.NewMailer(t))

	resp, err := app.Login(context.Background(), &model.LoginRequest{Email: "andi@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	redisRepo.On("GetSession", mock.Anything, jti).Return("andi_12345", nil).Once()

	userID, err := app.ValidateToken(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if userID != "andi_12345" {
		t.Fatalf("ValidateToken() = %s, want andi_12345", userID)
	}
}

func TestAuthApp_ValidateToken_BadToken(t *testing.T) {
	app := appauth.NewAuthApp(testConfig(), usermocks.NewUserRepository(t), otpmocks.NewOTPRepository(t), redismocks.NewRedisRepository(t), mailermocks.NewMailer(t))

	if _, err := app.ValidateToken(context.Background(), "not-a-jwt"); err == nil {
		t.Fatalf("ValidateToken() error = nil, want invalid token")
	}
}

func TestAuthApp_Signup(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(m *usermocks.UserRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: email free",
			mockCall: func(m *usermocks.UserRepository) {
				m.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil).Once()
			},
		},
		{
			name: "error: email taken",
			mockCall: func(m *usermocks.UserRepository) {
				m.On("GetByEmail", mock.Anything, "new@example.com").Return(&model.User{ID: "u1"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			userRepo := usermocks.NewUserRepository(t)
			tt.mockCall(userRepo)

			app := appauth.NewAuthApp(testConfig(), userRepo, otpmocks.NewOTPRepository(t), redismocks.NewRedisRepository(t), mailermocks.NewMailer(t))

			err := app.Signup(context.Background(), &model.SignupRequest{Email: "new@example.com"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Signup() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestAuthApp_SendOTP(t *testing.T) {
	otpRepo := otpmocks.NewOTPRepository(t)
	m := mailermocks.NewMailer(t)

	var sentCode string
	otpRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(r *model.OTPRecord) bool {
		if r.Email != "andi@example.com" || len(r.OTP) != 6 {
			return false
		}
		sentCode = r.OTP
		return !r.ExpiresAt.Before(time.Now().UTC().Add(9 * time.Minute))
	})).Return(nil).Once()
	m.On("SendOTP", "andi@example.com", mock.MatchedBy(func(code string) bool {
		return code == sentCode
	})).Return(nil).Once()

	app := appauth.NewAuthApp(testConfig(), usermocks.NewUserRepository(t), otpRepo, redismocks.NewRedisRepository(t), m)

	if err := app.SendOTP(context.Background(), &model.SendOTPRequest{Email: "andi@example.com"}); err != nil {
		t.Fatalf("SendOTP() error = %v", err)
	}
}

func TestAuthApp_VerifyOTP(t *testing.T) {
	type fields struct {
		userRepo *usermocks.UserRepository
		otpRepo  *otpmocks.OTPRepository
	}

	liveRecord := func(code string) *model.OTPRecord {
		return &model.OTPRecord{
			Email:     "andi@example.com",
			OTP:       code,
			ExpiresAt: time.Now().UTC().Add(5 * time.Minute),
		}
	}

	req := &model.VerifyOTPRequest{
		Email:    "andi@example.com",
		Username: "Andi Wijaya",
		Password: "secret123",
		OTP:      "123456",
	}

	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "error: no pending code is not found",
			mockCall: func(f fields) {
				f.otpRepo.On("Get", mock.Anything, "andi@example.com").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: expired code is deleted and rejected",
			mockCall: func(f fields) {
				f.otpRepo.On("Get", mock.Anything, "andi@example.com").Return(&model.OTPRecord{
					Email:     "andi@example.com",
					OTP:       "123456",
					ExpiresAt: time.Now().UTC().Add(-time.Minute),
				}, nil).Once()
				f.otpRepo.On("Delete", mock.Anything, "andi@example.com").Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrOTPExpired,
		},
		{
			name: "error: wrong code is a mismatch",
			mockCall: func(f fields) {
				f.otpRepo.On("Get", mock.Anything, "andi@example.com").Return(liveRecord("999999"), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrOTPMismatch,
		},
		{
			name: "success: account created and code consumed",
			mockCall: func(f fields) {
				f.otpRepo.On("Get", mock.Anything, "andi@example.com").Return(liveRecord("123456"), nil).Once()
				// The generated id must be free before the account is created.
				f.userRepo.On("GetByID", mock.Anything, mock.MatchedBy(func(id string) bool {
					return strings.HasPrefix(id, "andi_wijaya")
				})).Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return strings.HasPrefix(u.ID, "andi_wijaya") &&
						u.Email == "andi@example.com" &&
						bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")) == nil
				})).Return(nil).Once()
				f.otpRepo.On("Delete", mock.Anything, "andi@example.com").Return(nil).Once()
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				userRepo: usermocks.NewUserRepository(t),
				otpRepo:  otpmocks.NewOTPRepository(t),
			}
			tt.mockCall(f)

			app := appauth.NewAuthApp(testConfig(), f.userRepo, f.otpRepo, redismocks.NewRedisRepository(t), mailermocks.NewMailer(t))

			got, err := app.VerifyOTP(context.Background(), req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyOTP() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !strings.HasPrefix(got.UserID, "andi_wijaya") {
				t.Fatalf("VerifyOTP() user id = %s, want andi_wijaya prefix", got.UserID)
			}
		})
	}
}
