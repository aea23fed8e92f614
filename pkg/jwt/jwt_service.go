package jwt

import (
	"errors"
	"fmt"
	"time"

	"recipevault/domain"
	"recipevault/internal/utils"

	"github.com/golang-jwt/jwt/v4"
)

type (
	// JWTService consumes bearer tokens minted by the identity provider.
	// Claims carry the stable user id in the subject plus optional profile
	// fields used to keep the local user row in sync.
	JWTService interface {
		GenerateToken(identity domain.Identity, duration time.Duration) (string, error)
		ValidateToken(token string) (domain.Identity, error)
	}

	identityClaims struct {
		Email           string `json:"email,omitempty"`
		FirstName       string `json:"first_name,omitempty"`
		LastName        string `json:"last_name,omitempty"`
		ProfileImageURL string `json:"picture,omitempty"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "RECIPEVAULT",
	}
}

func (j *jwtService) GenerateToken(identity domain.Identity, duration time.Duration) (string, error) {
	claims := identityClaims{
		Email:           identity.Email,
		FirstName:       identity.FirstName,
		LastName:        identity.LastName,
		ProfileImageURL: identity.ProfileImageURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    j.issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (domain.Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &identityClaims{}, j.parseToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.ErrTokenExpired
		}
		return domain.Identity{}, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*identityClaims)
	if !ok || claims.Subject == "" {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	return domain.Identity{
		UserID:          claims.Subject,
		Email:           claims.Email,
		FirstName:       claims.FirstName,
		LastName:        claims.LastName,
		ProfileImageURL: claims.ProfileImageURL,
	}, nil
}
