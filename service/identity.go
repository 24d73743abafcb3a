package service

import (
	"context"
	"errors"

	"github.com/emzola/scribe/data"
	"github.com/emzola/scribe/repository"
	"github.com/jellydator/ttlcache/v3"
)

// ResolveIdentity returns the public identity of a user, consulting the
// identity cache before the repository.
func (s *service) ResolveIdentity(ctx context.Context, userID int64) (data.Identity, error) {
	if item := s.identities.Get(userID); item != nil {
		return item.Value(), nil
	}
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return data.Identity{}, ErrRecordNotFound
		default:
			return data.Identity{}, err
		}
	}
	identity := user.Identity()
	s.identities.Set(userID, identity, ttlcache.DefaultTTL)
	return identity, nil
}

// rememberIdentity seeds the cache from an identity the repository already joined.
func (s *service) rememberIdentity(identity *data.Identity) {
	if identity == nil {
		return
	}
	s.identities.Set(identity.ID, *identity, ttlcache.DefaultTTL)
}
