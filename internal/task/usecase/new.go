package usecase

import (
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"smart-task-dashboard/internal/analyzer"
	"smart-task-dashboard/internal/model"
	"smart-task-dashboard/internal/task"
	"smart-task-dashboard/internal/task/repository"
	"smart-task-dashboard/pkg/datemath"
	pkgLog "smart-task-dashboard/pkg/log"
)

// DefaultAnalysisCacheSize bounds the memoised analyses.
const DefaultAnalysisCacheSize = 512

type analysisKey struct {
	text string
	day  datemath.Date
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	cache      repository.Cache
	analyzer   *analyzer.Analyzer
	clock      datemath.Clock
	calendar   task.Calendar
	calendarID string
	notifier   task.Notifier
	analyses   *lru.Cache[analysisKey, model.Analysis]
	sf         singleflight.Group
	cacheMu    sync.Mutex
	cacheGen   uint64
	newID      func() string
}

// Option configures optional collaborators of the use case.
type Option func(*implUseCase)

// WithCache enables the read-through list cache.
func WithCache(c repository.Cache) Option {
	return func(uc *implUseCase) { uc.cache = c }
}

// WithCalendar syncs due dates to calendarID. An empty id means the primary calendar.
func WithCalendar(c task.Calendar, calendarID string) Option {
	return func(uc *implUseCase) {
		uc.calendar = c
		uc.calendarID = calendarID
	}
}

// WithNotifier sends a message after each create and completion.
func WithNotifier(n task.Notifier) Option {
	return func(uc *implUseCase) { uc.notifier = n }
}

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(uc *implUseCase) { uc.newID = fn }
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	az *analyzer.Analyzer,
	clock datemath.Clock,
	opts ...Option,
) *implUseCase {
	analyses, err := lru.New[analysisKey, model.Analysis](DefaultAnalysisCacheSize)
	if err != nil {
		panic(err)
	}

	uc := &implUseCase{
		l:        l,
		repo:     repo,
		analyzer: az,
		clock:    clock,
		analyses: analyses,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

var _ task.UseCase = (*implUseCase)(nil)
