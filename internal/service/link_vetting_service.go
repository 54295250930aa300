package service

import (
	"context"
	"strings"
	"time"

	"github.com/fadilmartias/apostila-analyzer/internal/evaluation"
	gocache "github.com/patrickmn/go-cache"
)

const pendingLinkDescription = "Validação detalhada de link temporariamente indisponível. Verifique manualmente este recurso."

type LinkVetter interface {
	Analyze(ctx context.Context, links []string) ([]evaluation.LinkAnalysis, error)
}

// LinkCheckFunc produces the verdict for a single URL.
type LinkCheckFunc func(ctx context.Context, link string) evaluation.LinkAnalysis

type LinkVettingService struct {
	cache *gocache.Cache
	check LinkCheckFunc
}

// NewLinkVettingService caches one analysis per URL for ttl. A nil check
// falls back to PendingLinkAnalysis, which returns the same verdict for every
// URL; the cache only saves work once a real LinkCheckFunc (an HTTP probe or a
// model call) is injected.
func NewLinkVettingService(ttl time.Duration, check LinkCheckFunc) *LinkVettingService {
	if check == nil {
		check = PendingLinkAnalysis
	}
	return &LinkVettingService{
		cache: gocache.New(ttl, 2*ttl),
		check: check,
	}
}

func (s *LinkVettingService) Analyze(ctx context.Context, links []string) ([]evaluation.LinkAnalysis, error) {
	out := make([]evaluation.LinkAnalysis, 0, len(links))
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		link = strings.TrimSpace(link)
		if link == "" {
			continue
		}
		if cached, found := s.cache.Get(link); found {
			out = append(out, cached.(evaluation.LinkAnalysis))
			continue
		}
		analysis := s.check(ctx, link)
		s.cache.SetDefault(link, analysis)
		out = append(out, analysis)
	}
	return out, nil
}

func PendingLinkAnalysis(_ context.Context, link string) evaluation.LinkAnalysis {
	return evaluation.LinkAnalysis{
		Link:        link,
		Status:      string(evaluation.StatusRejected),
		Description: pendingLinkDescription,
		DisplayText: link + " - análise pendente",
	}
}
