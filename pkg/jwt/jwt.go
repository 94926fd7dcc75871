package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ime-admin-service/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the portal session claims (access and refresh tokens).
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TokenType TokenType `json:"token_type"`
	TokenID   string    `json:"token_id"`
	jwt.RegisteredClaims
}

// BookingClaims are embedded in the claimant secure-link token. The JSON
// keys are a wire contract with the booking page.
type BookingClaims struct {
	Email         string `json:"email"`
	CaseID        string `json:"caseId"`
	ExaminationID string `json:"examinationId"`
	jwt.RegisteredClaims
}

// SetupClaims are embedded in the examiner password-setup token.
type SetupClaims struct {
	Email             string `json:"email"`
	ExaminerProfileID string `json:"examinerProfileId"`
	jwt.RegisteredClaims
}

// InvitationClaims are embedded in the organization-manager invitation token.
type InvitationClaims struct {
	Email              string `json:"email"`
	OrganizationID     string `json:"organizationId"`
	OrganizationRoleID string `json:"organizationRoleId"`
	jwt.RegisteredClaims
}

// InfoRequestClaims are embedded in the examiner info-request token.
type InfoRequestClaims struct {
	Email             string `json:"email"`
	ExaminerProfileID string `json:"examinerProfileId"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

func (s *JWTService) GenerateAccessToken(userID uuid.UUID, email, role string) (string, string, error) {
	return s.generateSessionToken(userID, email, role, AccessToken, s.config.AccessExpiry)
}

func (s *JWTService) GenerateRefreshToken(userID uuid.UUID, email, role string) (string, string, error) {
	return s.generateSessionToken(userID, email, role, RefreshToken, s.config.RefreshExpiry)
}

func (s *JWTService) generateSessionToken(userID uuid.UUID, email, role string, tokenType TokenType, expiry time.Duration) (string, string, error) {
	tokenID := uuid.New().String()
	claims := Claims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		TokenID:   tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if err := s.parseInto(tokenString, claims, s.config.Secret); err != nil {
		return nil, err
	}
	return claims, nil
}

// GenerateClaimantBookingToken signs the claimant secure-link credential.
// The token itself is the bearer credential; only a UUID alias of it is
// ever persisted.
func (s *JWTService) GenerateClaimantBookingToken(email, caseID, examinationID string, expiry time.Duration) (string, error) {
	claims := BookingClaims{
		Email:         email,
		CaseID:        caseID,
		ExaminationID: examinationID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.ClaimantApprovalSecret))
}

func (s *JWTService) ValidateClaimantBookingToken(tokenString string) (*BookingClaims, error) {
	claims := &BookingClaims{}
	if err := s.parseInto(tokenString, claims, s.config.ClaimantApprovalSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *JWTService) GeneratePasswordSetupToken(email string, profileID uuid.UUID) (string, error) {
	claims := SetupClaims{
		Email:             email,
		ExaminerProfileID: profileID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.PasswordSetupExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.PasswordSetupSecret))
}

func (s *JWTService) ValidatePasswordSetupToken(tokenString string) (*SetupClaims, error) {
	claims := &SetupClaims{}
	if err := s.parseInto(tokenString, claims, s.config.PasswordSetupSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *JWTService) GenerateOrgInvitationToken(email string, organizationID, roleID uuid.UUID) (string, error) {
	claims := InvitationClaims{
		Email:              email,
		OrganizationID:     organizationID.String(),
		OrganizationRoleID: roleID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.OrgInvitationExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.OrgInvitationSecret))
}

func (s *JWTService) ValidateOrgInvitationToken(tokenString string) (*InvitationClaims, error) {
	claims := &InvitationClaims{}
	if err := s.parseInto(tokenString, claims, s.config.OrgInvitationSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *JWTService) GenerateInfoRequestToken(email string, profileID uuid.UUID) (string, error) {
	claims := InfoRequestClaims{
		Email:             email,
		ExaminerProfileID: profileID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.InfoRequestExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.InfoRequestSecret))
}

func (s *JWTService) parseInto(tokenString string, claims jwt.Claims, secret string) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

func (s *JWTService) GetAccessExpiry() time.Duration {
	return s.config.AccessExpiry
}

func (s *JWTService) GetRefreshExpiry() time.Duration {
	return s.config.RefreshExpiry
}

// FormatExpiresIn renders an hour count as a human-readable token
// lifetime: a week or more is expressed in whole days ("7d"), anything
// shorter in hours ("24h"). Token introspection tools show this string,
// so the unit choice is a contract, not cosmetics.
func FormatExpiresIn(hours int) string {
	if hours >= 168 {
		return fmt.Sprintf("%dd", hours/24)
	}
	return fmt.Sprintf("%dh", hours)
}

// ParseExpiresIn is the inverse of FormatExpiresIn. Both the JWT expiry
// and the persisted expires_at column derive from the duration returned
// here, so the two can never drift apart.
func ParseExpiresIn(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid expiry %q", s)
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return 0, fmt.Errorf("invalid expiry %q", s)
	}
	switch {
	case strings.HasSuffix(s, "d"):
		return time.Duration(n) * 24 * time.Hour, nil
	case strings.HasSuffix(s, "h"):
		return time.Duration(n) * time.Hour, nil
	}
	return 0, fmt.Errorf("invalid expiry unit in %q", s)
}
