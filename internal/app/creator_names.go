package app

import (
	"context"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
)

// unknownCreatorName is shown when the creating user no longer exists.
const unknownCreatorName = "Unknown"

// creatorNameResolver looks up creator display names, caching results so a
// list with many rows by the same user costs one query.
type creatorNameResolver struct {
	userRepo accounts.UserRepository
	cache    map[string]string
}

func newCreatorNameResolver(userRepo accounts.UserRepository) *creatorNameResolver {
	return &creatorNameResolver{
		userRepo: userRepo,
		cache:    make(map[string]string),
	}
}

func (r *creatorNameResolver) resolve(ctx context.Context, userID string) string {
	if name, ok := r.cache[userID]; ok {
		return name
	}

	name := unknownCreatorName
	if user, err := r.userRepo.GetByID(ctx, userID); err == nil {
		name = user.Name
	}

	r.cache[userID] = name
	return name
}
