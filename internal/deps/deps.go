package deps

import (
	"github.com/and161185/dashboard/internal/auth"
	"github.com/and161185/dashboard/internal/cache"
	"go.uber.org/zap"
)

type Deps struct {
	Logger       *zap.SugaredLogger
	TokenManager *auth.TokenManager
	PageCache    *cache.PageCache
}

func NewDependencies(logger *zap.SugaredLogger, secretKey string) *Deps {
	return &Deps{
		Logger:       logger,
		TokenManager: auth.NewTokenManager(secretKey),
		PageCache:    cache.NewPageCache(cache.DefaultMaxEntries),
	}
}
