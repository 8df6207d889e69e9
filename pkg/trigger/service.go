package trigger

import (
	"context"

	"github.com/sameersinha-collab/echoproj/pkg/agent"
)

// Service pairs the trigger registry with the rendered-audio cache. It is
// the session core's view of triggers.
type Service struct {
	reg   *Registry
	cache *Cache
}

func NewService(reg *Registry, cache *Cache) *Service {
	return &Service{reg: reg, cache: cache}
}

// Message resolves a trigger name to its personalized greeting text.
func (s *Service) Message(name, childName string) (string, error) {
	return s.reg.Message(name, childName)
}

// Audio returns the rendered speech for a greeting, from cache when warm.
func (s *Service) Audio(ctx context.Context, message string, profile agent.VoiceProfile) ([]byte, error) {
	return s.cache.GetOrRender(ctx, message, profile)
}
