package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/strobelightprojects/Nursery-inventory-management/internal/config"
	"github.com/strobelightprojects/Nursery-inventory-management/internal/domain/model"
	repo "github.com/strobelightprojects/Nursery-inventory-management/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase struct {
	cfg   config.Config
	staff repo.StaffRepository
}

func NewAuthUsecase(cfg config.Config, staff repo.StaffRepository) *AuthUsecase {
	return &AuthUsecase{
		cfg:   cfg,
		staff: staff,
	}
}

type StaffDTO struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type JwtAccessToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Staff StaffDTO       `json:"staff"`
	Token JwtAccessToken `json:"token"`
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return LoginOutput{}, NewAppError(KindValidation, "email and password required")
	}

	staff, err := u.staff.FindByEmail(ctx, email)
	if err != nil {
		return LoginOutput{}, NewAppError(KindStorage, "db error")
	}
	// 存在しないemailとパスワード違いは同じ返事にする
	if staff == nil {
		return LoginOutput{}, NewAppError(KindUnauthorized, "invalid email or password")
	}

	//パスワード照合（bcrypt）
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(in.Password)); err != nil {
		return LoginOutput{}, NewAppError(KindUnauthorized, "invalid email or password")
	}

	//access token発行
	accessToken, expiresIn, err := u.issueAccessToken(staff)
	if err != nil {
		return LoginOutput{}, NewAppError(KindStorage, "token error")
	}

	return LoginOutput{
		Staff: toStaffDTO(staff),
		Token: JwtAccessToken{
			AccessToken: accessToken,
			ExpiresIn:   expiresIn,
		},
	}, nil
}

type RegisterInput struct {
	Email    string
	Password string
	Role     string
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (StaffDTO, error) {
	// emailの形式チェック
	if !isValidEmailFormat(in.Email) {
		return StaffDTO{}, NewAppError(KindValidation, "invalid email format")
	}

	// password の長さチェック（最小12文字）
	if len(in.Password) < 12 {
		return StaffDTO{}, NewAppError(KindValidation, "password too short")
	}

	// よくある弱いパスワードの拒否
	if isWeakPassword(in.Password) {
		return StaffDTO{}, NewAppError(KindValidation, "weak password")
	}

	role := model.RoleStaff
	switch in.Role {
	case "", string(model.RoleStaff):
	case string(model.RoleAdmin):
		role = model.RoleAdmin
	default:
		return StaffDTO{}, NewAppError(KindValidation, "invalid role")
	}

	// email重複チェック
	existing, err := u.staff.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return StaffDTO{}, NewAppError(KindStorage, "db error")
	}
	if existing != nil {
		return StaffDTO{}, NewAppError(KindConflict, "email already exists")
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return StaffDTO{}, NewAppError(KindStorage, "hash error")
	}

	staff := &model.Staff{
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: string(pwHash),
		Role:         role,
	}
	if err := u.staff.Create(ctx, staff); err != nil {
		if err == repo.ErrConflict {
			return StaffDTO{}, NewAppError(KindConflict, "email already exists")
		}
		return StaffDTO{}, NewAppError(KindStorage, "db error")
	}

	return toStaffDTO(staff), nil
}

// 起動時に管理者アカウントを用意する。既にあれば何もしない
func (u *AuthUsecase) EnsureAdmin(ctx context.Context, email string, password string) error {
	if email == "" {
		return nil
	}
	if !isValidEmailFormat(email) {
		return fmt.Errorf("admin email is invalid")
	}
	if len(password) < 12 {
		return fmt.Errorf("admin password too short")
	}

	existing, err := u.staff.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	pwHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return u.staff.Create(ctx, &model.Staff{
		Email:        email,
		PasswordHash: string(pwHash),
		Role:         model.RoleAdmin,
	})
}

// jwt発行
func (u *AuthUsecase) issueAccessToken(staff *model.Staff) (string, int, error) {
	ttl := time.Duration(u.cfg.JWTTTLMinutes) * time.Minute
	now := time.Now()
	exp := now.Add(ttl)

	claims := jwt.MapClaims{
		"sub":  staff.ID,
		"role": string(staff.Role),
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := t.SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return "", 0, err
	}

	return signed, int(ttl.Seconds()), nil
}

func toStaffDTO(s *model.Staff) StaffDTO {
	return StaffDTO{
		ID:    s.ID,
		Email: s.Email,
		Role:  string(s.Role),
	}
}

// メールチェック
func isValidEmailFormat(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	_, err := mail.ParseAddress(trimmed)
	return err == nil
}

// よくある弱いパスワード
func isWeakPassword(password string) bool {
	normalized := strings.ToLower(strings.TrimSpace(password))

	weak := map[string]struct{}{
		"password":     {},
		"password123":  {},
		"123456789012": {},
		"1234567890":   {},
		"12345678":     {},
		"qwerty":       {},
		"qwertyuiop":   {},
		"letmein":      {},
		"admin":        {},
		"admin123":     {},
	}

	_, ok := weak[normalized]
	return ok
}
