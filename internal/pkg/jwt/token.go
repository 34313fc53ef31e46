package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/hubber/internal/pkg/models"
)

var (
	// ErrMissingClaim is returned when the token lacks user_id or role
	ErrMissingClaim = errors.New("missing required claim")
	// ErrInvalidRole is returned for roles the service does not know
	ErrInvalidRole = errors.New("invalid role claim")
)

// GenerateToken signs an HS256 token for the given principal
func GenerateToken(userID uuid.UUID, role models.Role, cfg *models.Config) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute).Unix()

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    string(role),
		"exp":     expiresAt,
		"iss":     cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken verifies signature and expiry and returns the claims
func ValidateToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// PrincipalFromClaims extracts the caller identity from validated claims
func PrincipalFromClaims(claims jwt.MapClaims) (models.Principal, error) {
	rawID, ok := claims["user_id"].(string)
	if !ok || rawID == "" {
		return models.Principal{}, fmt.Errorf("%w: user_id", ErrMissingClaim)
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return models.Principal{}, fmt.Errorf("user_id is not a valid UUID: %w", err)
	}

	rawRole, ok := claims["role"].(string)
	if !ok || rawRole == "" {
		return models.Principal{}, fmt.Errorf("%w: role", ErrMissingClaim)
	}
	if !models.IsValidRole(rawRole) {
		return models.Principal{}, ErrInvalidRole
	}

	return models.Principal{UserID: userID, Role: models.Role(rawRole)}, nil
}
