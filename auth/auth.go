package auth

import (
	"context"
	"errors"
	"os"

	"github.com/Kotlang/opsGo/logger"
	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
)

type Claims string

// Session is the operator identity carried through a request: the raw bearer
// token (forwarded on every backend call) and the userId parsed out of it.
type Session struct {
	Token  string
	UserId string
}

func VerifyToken(token string) (*Session, error) {
	var ACCESS_SECRET = os.Getenv("ACCESS_SECRET")

	parsedToken, err := jwt.ParseWithClaims(
		token,
		&jwt.StandardClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(ACCESS_SECRET), nil
		})

	if err != nil {
		logger.Error("Failed validating token", zap.Error(err))
		return nil, errors.New("Bad authorization string")
	}

	claims, ok := parsedToken.Claims.(*jwt.StandardClaims)
	if !ok || !parsedToken.Valid {
		return nil, errors.New("Bad authorization string")
	}

	return &Session{Token: token, UserId: claims.Id}, nil
}

func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, Claims("session"), session)
}

func GetSession(ctx context.Context) *Session {
	if session, ok := ctx.Value(Claims("session")).(*Session); ok {
		return session
	}
	return nil
}

// GetToken mints an operator token. Used by the dashboard login flow and tests.
func GetToken(tenant, userId, userType string) string {
	atClaims := jwt.StandardClaims{}
	atClaims.Id = userId
	atClaims.Audience = tenant
	atClaims.Subject = userType

	var ACCESS_SECRET = os.Getenv("ACCESS_SECRET")
	at := jwt.NewWithClaims(jwt.SigningMethodHS256, atClaims)
	token, _ := at.SignedString([]byte(ACCESS_SECRET))
	return token
}
