package usecase

import (
	"quoteflow/internal/domain/actor"
	"quoteflow/internal/pkg/errs"
	"quoteflow/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (actor.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (actor.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return actor.Actor{}, err
	}

	role := actor.Role(claims.Role)
	if !role.IsValid() {
		return actor.Actor{}, errs.Newf("unknown role %q in token", claims.Role)
	}

	return actor.Actor{ID: claims.ActorID, Role: role}, nil
}
