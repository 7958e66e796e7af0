package reward

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/mymath/mymath/internal/store"
)

// VideoSource lists the available reward videos.
type VideoSource interface {
	Videos() []string
}

// Award is the reward handed out for one session.
type Award struct {
	SessionID string
	VideoPath string
	AwardedAt time.Time
}

// Service picks reward videos and records them. AwardVideo runs from
// tea.Cmd goroutines, so the rng is guarded.
type Service struct {
	videos    VideoSource
	eventRepo store.EventRepo
	logger    *log.Logger

	mu  sync.Mutex
	rng *rand.Rand

	now func() time.Time
}

// NewService creates a Service. eventRepo may be nil, in which case awards
// are not persisted.
func NewService(videos VideoSource, eventRepo store.EventRepo, rng *rand.Rand, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		videos:    videos,
		eventRepo: eventRepo,
		rng:       rng,
		logger:    logger,
		now:       time.Now,
	}
}

// AwardVideo picks a random video for an eligible session. It returns nil
// when there are no videos.
func (s *Service) AwardVideo(ctx context.Context, sessionID string) *Award {
	videos := s.videos.Videos()
	if len(videos) == 0 {
		s.logger.Printf("reward: session %s eligible but no videos found", sessionID)
		return nil
	}

	award := &Award{
		SessionID: sessionID,
		VideoPath: videos[s.pick(len(videos))],
		AwardedAt: s.now(),
	}
	s.persist(ctx, award)
	return award
}

func (s *Service) pick(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *Service) persist(ctx context.Context, award *Award) {
	if s.eventRepo == nil {
		return
	}
	err := s.eventRepo.AppendRewardEvent(ctx, store.RewardEventData{
		SessionID: award.SessionID,
		VideoPath: award.VideoPath,
		AwardedAt: award.AwardedAt,
	})
	if err != nil {
		s.logger.Printf("reward: record award: %v", err)
	}
}
