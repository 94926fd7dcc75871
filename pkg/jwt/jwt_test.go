package jwt

import (
	"testing"
	"time"

	"ime-admin-service/config"

	"github.com/google/uuid"
)

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "session-secret",
		AccessExpiry:           15 * time.Minute,
		RefreshExpiry:          7 * 24 * time.Hour,
		PasswordSetupSecret:    "setup-secret",
		PasswordSetupExpiry:    72 * time.Hour,
		ClaimantApprovalSecret: "claimant-secret",
		OrgInvitationSecret:    "invite-secret",
		OrgInvitationExpiry:    7 * 24 * time.Hour,
		InfoRequestSecret:      "info-secret",
		InfoRequestExpiry:      7 * 24 * time.Hour,
	}
}

func TestFormatExpiresIn(t *testing.T) {
	cases := []struct {
		hours int
		want  string
	}{
		{1, "1h"},
		{24, "24h"},
		{167, "167h"},
		{168, "7d"},
		{240, "10d"},
		{2160, "90d"},
	}
	for _, c := range cases {
		if got := FormatExpiresIn(c.hours); got != c.want {
			t.Errorf("FormatExpiresIn(%d) = %q, want %q", c.hours, got, c.want)
		}
	}
}

func TestParseExpiresIn(t *testing.T) {
	d, err := ParseExpiresIn("7d")
	if err != nil || d != 7*24*time.Hour {
		t.Fatalf("7d: got %v, %v", d, err)
	}
	d, err = ParseExpiresIn("24h")
	if err != nil || d != 24*time.Hour {
		t.Fatalf("24h: got %v, %v", d, err)
	}
	for _, bad := range []string{"", "d", "7x", "xd"} {
		if _, err := ParseExpiresIn(bad); err == nil {
			t.Errorf("ParseExpiresIn(%q) should fail", bad)
		}
	}
}

func TestFormatParseAgree(t *testing.T) {
	// The formatted string must parse back to the exact duration used
	// for the token, for every whole-day hour count.
	for _, hours := range []int{1, 24, 168, 336, 2160} {
		s := FormatExpiresIn(hours)
		d, err := ParseExpiresIn(s)
		if err != nil {
			t.Fatalf("ParseExpiresIn(%q): %v", s, err)
		}
		if d != time.Duration(hours)*time.Hour {
			t.Fatalf("%d hours formatted as %q parsed to %v", hours, s, d)
		}
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(testConfig())
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "admin@example.com", "SUPER_ADMIN")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected a token ID")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID || claims.Email != "admin@example.com" || claims.Role != "SUPER_ADMIN" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.TokenType != AccessToken {
		t.Fatalf("expected access token type, got %s", claims.TokenType)
	}
}

func TestClaimantBookingTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(testConfig())

	token, err := svc.GenerateClaimantBookingToken("claimant@example.com", "case-1", "exam-1", time.Hour)
	if err != nil {
		t.Fatalf("GenerateClaimantBookingToken: %v", err)
	}

	claims, err := svc.ValidateClaimantBookingToken(token)
	if err != nil {
		t.Fatalf("ValidateClaimantBookingToken: %v", err)
	}
	if claims.Email != "claimant@example.com" || claims.CaseID != "case-1" || claims.ExaminationID != "exam-1" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestTokenPurposeIsolation(t *testing.T) {
	svc := NewJWTService(testConfig())

	setupToken, err := svc.GeneratePasswordSetupToken("examiner@example.com", uuid.New())
	if err != nil {
		t.Fatalf("GeneratePasswordSetupToken: %v", err)
	}

	// A token signed for one purpose must not verify for another.
	if _, err := svc.ValidateClaimantBookingToken(setupToken); err == nil {
		t.Fatal("password-setup token verified as a claimant booking token")
	}
	if _, err := svc.ValidateToken(setupToken); err == nil {
		t.Fatal("password-setup token verified as a session token")
	}

	if _, err := svc.ValidatePasswordSetupToken(setupToken); err != nil {
		t.Fatalf("token failed its own purpose: %v", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewJWTService(testConfig())

	token, err := svc.GenerateClaimantBookingToken("claimant@example.com", "case-1", "exam-1", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateClaimantBookingToken: %v", err)
	}
	if _, err := svc.ValidateClaimantBookingToken(token); err == nil {
		t.Fatal("expired token should fail validation")
	}
}
