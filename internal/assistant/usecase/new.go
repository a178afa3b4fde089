package usecase

import (
	"context"
	"time"

	"propfirm-assistant/internal/assistant/repository"
	"propfirm-assistant/internal/cache"
	"propfirm-assistant/internal/contextfilter"
	"propfirm-assistant/internal/intent"
	pkgLog "propfirm-assistant/pkg/log"
	"propfirm-assistant/pkg/llmprovider"
)

// generator is the slice of the LLM provider manager the usecase needs.
type generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.FirmRepository
	cache      *cache.Engine
	classifier *intent.Classifier
	filter     *contextfilter.Filter
	llm        generator
	now        func() time.Time
}

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.FirmRepository,
	cacheEngine *cache.Engine,
	classifier *intent.Classifier,
	filter *contextfilter.Filter,
	llm generator,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		cache:      cacheEngine,
		classifier: classifier,
		filter:     filter,
		llm:        llm,
		now:        time.Now,
	}
}
