package usecase

import (
	"time"

	"restaurant-ai-service/internal/aiconfig"
	convRepo "restaurant-ai-service/internal/conversation/repository"
	"restaurant-ai-service/internal/knowledge"
	menuRepo "restaurant-ai-service/internal/menu/repository"
	"restaurant-ai-service/internal/semcache"
	"restaurant-ai-service/pkg/llmprovider"
	pkgLog "restaurant-ai-service/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	menuRepo  menuRepo.Repository
	convRepo  convRepo.Repository
	knowledge *knowledge.Cache
	semantic  *semcache.Cache
	configs   *aiconfig.Service
	generator *llmprovider.Generator
	provider  llmprovider.Provider
	timeout   time.Duration
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	menu menuRepo.Repository,
	conversations convRepo.Repository,
	knowledgeCache *knowledge.Cache,
	semanticCache *semcache.Cache,
	configs *aiconfig.Service,
	generator *llmprovider.Generator,
	provider llmprovider.Provider,
	providerTimeout time.Duration,
) *implUseCase {
	if providerTimeout <= 0 {
		providerTimeout = 30 * time.Second
	}
	return &implUseCase{
		l:         l,
		menuRepo:  menu,
		convRepo:  conversations,
		knowledge: knowledgeCache,
		semantic:  semanticCache,
		configs:   configs,
		generator: generator,
		provider:  provider,
		timeout:   providerTimeout,
	}
}
