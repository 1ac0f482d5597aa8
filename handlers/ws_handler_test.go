package handlers

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func TestClaimsIdentity(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		claims    jwt.MapClaims
		wantErr   bool
		wantAdmin bool
	}{
		{"customer token", jwt.MapClaims{"user_id": userID.String(), "role": "customer"}, false, false},
		{"admin token", jwt.MapClaims{"user_id": userID.String(), "role": "admin"}, false, true},
		{"missing role defaults to customer", jwt.MapClaims{"user_id": userID.String()}, false, false},
		{"missing user_id", jwt.MapClaims{"role": "customer"}, true, false},
		{"non-string user_id", jwt.MapClaims{"user_id": 42}, true, false},
		{"malformed user_id", jwt.MapClaims{"user_id": "not-a-uuid"}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID, gotAdmin, err := claimsIdentity(tt.claims)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("claimsIdentity returned error: %v", err)
			}
			if gotID != userID {
				t.Errorf("user ID = %s, want %s", gotID, userID)
			}
			if gotAdmin != tt.wantAdmin {
				t.Errorf("admin = %t, want %t", gotAdmin, tt.wantAdmin)
			}
		})
	}
}

func TestParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	userID := uuid.New()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"role":    "customer",
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	claims, err := parseToken(signed)
	if err != nil {
		t.Fatalf("parseToken returned error: %v", err)
	}
	if claims["user_id"] != userID.String() {
		t.Errorf("user_id claim = %v, want %s", claims["user_id"], userID)
	}

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
	}).SignedString([]byte("wrong-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	if _, err := parseToken(forged); err == nil {
		t.Error("expected an error for a token signed with the wrong secret")
	}
}
