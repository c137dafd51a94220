package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	tokenTTL  time.Duration
}

// NewJWTService creates a new JWT service. The signing key is process-wide
// configuration; rotating it invalidates every outstanding token.
func NewJWTService(secretKey string, issuer string, ttl time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		tokenTTL:  ttl,
	}
}

// Generate implements domain.TokenService
func (j *JWTServiceImpl) Generate(userID uint, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iss":     j.issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(j.tokenTTL).Unix(),
		"jti":     uuid.NewString(), // unique per issuance, two logins never collide
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// TTLSeconds implements domain.TokenService
func (j *JWTServiceImpl) TTLSeconds() int64 {
	return int64(j.tokenTTL.Seconds())
}

// Validate implements domain.TokenService
func (j *JWTServiceImpl) Validate(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil {
		// Parse validates exp itself; surface expiry distinctly, collapse
		// everything else.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	tokenClaims := &domain.TokenClaims{
		UserID:    uint(userID),
		Role:      role,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}

	if jti, ok := claims["jti"].(string); ok {
		tokenClaims.JTI = jti
	}

	return tokenClaims, nil
}
