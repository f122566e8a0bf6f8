package config

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// PublicMenuKey returns the cache key for the public (available-only) menu tree.
func (r *CacheKeyStruct) PublicMenuKey() string {
	return "menu:public"
}

var CacheKey = NewCacheKeyStruct()
