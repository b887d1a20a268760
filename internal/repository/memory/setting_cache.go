package memory

import (
	"time"

	"officehub-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SettingCache holds resolved auto-delete periods per user. A cached
// "disabled" means the user has no settings row.
type SettingCache struct {
	cache *cache.Cache
}

func NewSettingCache(ttl time.Duration) *SettingCache {
	// Expired entries are purged every ttl.
	c := cache.New(ttl, ttl)
	return &SettingCache{
		cache: c,
	}
}

func (r *SettingCache) Save(userId uuid.UUID, period entity.AutoDeletePeriod) {
	r.cache.Set(userId.String(), period, cache.DefaultExpiration)
}

func (r *SettingCache) Get(userId uuid.UUID) (entity.AutoDeletePeriod, bool) {
	if x, found := r.cache.Get(userId.String()); found {
		return x.(entity.AutoDeletePeriod), true
	}
	return "", false
}

func (r *SettingCache) Delete(userId uuid.UUID) {
	r.cache.Delete(userId.String())
}

func (r *SettingCache) Flush() {
	r.cache.Flush()
}
