package service

import "sos/internal/domain/entity"

// IdentityVerifier turns a bearer token issued by the identity provider into the signed-in caller.
type IdentityVerifier interface {
	VerifyToken(token string) (*entity.Caller, error)
}
