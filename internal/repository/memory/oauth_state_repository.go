package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// OAuthState is a pending login: the random state sent to the provider and
// where to go once it comes back.
type OAuthState struct {
	State     string
	ReturnTo  string
	CreatedAt time.Time
}

// OAuthStateRepository keeps login states for ten minutes. Each state can
// be consumed once.
type OAuthStateRepository struct {
	cache *cache.Cache
}

func NewOAuthStateRepository() *OAuthStateRepository {
	return &OAuthStateRepository{
		cache: cache.New(10*time.Minute, 5*time.Minute),
	}
}

func (r *OAuthStateRepository) Save(state *OAuthState) {
	r.cache.Set(state.State, state, cache.DefaultExpiration)
}

// Consume returns the pending state and removes it
func (r *OAuthStateRepository) Consume(state string) (*OAuthState, bool) {
	x, found := r.cache.Get(state)
	if !found {
		return nil, false
	}
	r.cache.Delete(state)
	return x.(*OAuthState), true
}
