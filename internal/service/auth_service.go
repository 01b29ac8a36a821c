package service

import (
	"fmt"
	"strings"
	"unicode"

	"bookstore-api/internal/core/auth"
	"bookstore-api/internal/domain"
	"bookstore-api/pkg/utils"
)

// Credential policy: minimum length plus character-class
// requirements, and unique email / username.
const minPasswordLength = 6

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwter: jwter}
}

// Register creates the user and issues a token for it. The token is
// returned but the caller is not logged in by the service; the client
// decides whether to use it.
func (s *AuthService) Register(userName, email, password string) (Result[*AuthResponse], error) {
	userName = strings.TrimSpace(userName)
	email = strings.TrimSpace(email)

	var violations []string
	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return Fail[*AuthResponse]("Registration failed."), err
	}
	if existing != nil {
		violations = append(violations, fmt.Sprintf("Email '%s' is already taken.", email))
	}
	existing, err = s.users.FindByUserName(userName)
	if err != nil {
		return Fail[*AuthResponse]("Registration failed."), err
	}
	if existing != nil {
		violations = append(violations, fmt.Sprintf("User name '%s' is already taken.", userName))
	}
	violations = append(violations, passwordViolations(password)...)

	if len(violations) > 0 {
		return Fail[*AuthResponse]("Registration failed: " + strings.Join(violations, "; ")), nil
	}

	u := &domain.User{
		ID:           utils.NewID(),
		UserName:     userName,
		Email:        email,
		PasswordHash: utils.HashPassword(password),
		Role:         "User",
	}
	if err := s.users.Create(u); err != nil {
		return Fail[*AuthResponse]("Registration failed."), err
	}

	resp, err := s.authResponse(u)
	if err != nil {
		return Fail[*AuthResponse]("Registration failed."), err
	}
	return OK(resp, "Registration successful."), nil
}

// Login deliberately reports the same message for an unknown email
// and a wrong password.
func (s *AuthService) Login(email, password string) (Result[*AuthResponse], error) {
	u, err := s.users.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		return Fail[*AuthResponse]("Login failed."), err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return Fail[*AuthResponse]("Invalid email or password."), nil
	}

	resp, err := s.authResponse(u)
	if err != nil {
		return Fail[*AuthResponse]("Login failed."), err
	}
	return OK(resp, "Login successful."), nil
}

func (s *AuthService) authResponse(u *domain.User) (*AuthResponse, error) {
	token, err := s.jwter.Issue(u.ID, u.UserName, u.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		Token:    token,
		UserID:   u.ID,
		UserName: u.UserName,
		Email:    u.Email,
	}, nil
}

func passwordViolations(pw string) []string {
	var out []string
	if len(pw) < minPasswordLength {
		out = append(out, fmt.Sprintf("Passwords must be at least %d characters.", minPasswordLength))
	}
	var hasDigit, hasLower, hasUpper, hasSymbol bool
	for _, r := range pw {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		default:
			hasSymbol = true
		}
	}
	if !hasSymbol {
		out = append(out, "Passwords must have at least one non alphanumeric character.")
	}
	if !hasDigit {
		out = append(out, "Passwords must have at least one digit ('0'-'9').")
	}
	if !hasLower {
		out = append(out, "Passwords must have at least one lowercase ('a'-'z').")
	}
	if !hasUpper {
		out = append(out, "Passwords must have at least one uppercase ('A'-'Z').")
	}
	return out
}
