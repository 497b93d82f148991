package reviewerselector

import (
	rand "math/rand/v2"
	"sync"
	"taskara-review-service/internal/domain/models"
	"taskara-review-service/internal/domain/services"
	"time"
)

var _ services.ReviewerSelector = (*RandomReviewerSelector)(nil)

// RandomReviewerSelector picks reviewers uniformly at random. Safe for concurrent use.
type RandomReviewerSelector struct {
	rnd *rand.Rand
	mu  sync.Mutex
}

func NewRandomReviewerSelector() services.ReviewerSelector {
	return NewRandomReviewerSelectorWithRand(nil)
}

func NewRandomReviewerSelectorWithRand(r *rand.Rand) services.ReviewerSelector {
	if r == nil {
		seed := uint64(time.Now().UnixNano())
		r = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &RandomReviewerSelector{rnd: r}
}

func (s *RandomReviewerSelector) Select(candidates []models.Reviewer, count int) []models.Reviewer {
	if count <= 0 || len(candidates) == 0 {
		return nil
	}

	shuffled := append([]models.Reviewer(nil), candidates...)
	if len(shuffled) > 1 {
		s.mu.Lock()
		s.rnd.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		s.mu.Unlock()
	}

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count:count]
}
