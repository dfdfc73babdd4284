package services

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"patrimonio/internal/clients/coingecko"
	apperrors "patrimonio/internal/errors"
)

const (
	priceCacheTTL     = 30 * time.Second
	priceFetchTimeout = 10 * time.Second

	// The benchmark index has no free feed; it is served as a static
	// placeholder alongside the live quotes.
	sp500PlaceholderPrice  = 6000
	sp500PlaceholderChange = 0.25
)

// priceBasket is the fixed set of CoinGecko IDs fetched in one call.
var priceBasket = []string{"bitcoin", "ethereum", "solana", "tether-gold"}

// PriceFetcher is the upstream surface the price proxy depends on.
// *coingecko.Client satisfies it; tests substitute a fake.
type PriceFetcher interface {
	SimplePrice(ctx context.Context, ids []string) (map[string]coingecko.Quote, error)
}

// priceService serves the fixed asset basket with a TTL cache and
// stale-on-error fallback. The cache slot is mutex-guarded, but the upstream
// fetch happens outside the lock: concurrent misses may each fetch and
// overwrite the slot last-write-wins, which is harmless for an idempotent
// upstream query.
type priceService struct {
	fetcher PriceFetcher
	now     func() time.Time

	mu        sync.Mutex
	lastBook  *PriceBook
	fetchedAt time.Time
}

// NewPriceService creates a new PriceServicer backed by the given upstream.
func NewPriceService(fetcher PriceFetcher) PriceServicer {
	return &priceService{fetcher: fetcher, now: time.Now}
}

// GetLivePrices returns the basket payload, served from cache while it is
// younger than the TTL. On upstream failure the last good payload is served
// instead when one exists: rate-limit fallbacks return it unmodified, while
// timeout and generic-error fallbacks return a copy flagged cached=true.
// With a cold cache those branches surface 429, 504, and 500 respectively.
func (s *priceService) GetLivePrices(ctx context.Context) (*PriceBook, error) {
	s.mu.Lock()
	if s.lastBook != nil && s.now().Sub(s.fetchedAt) < priceCacheTTL {
		book := *s.lastBook
		s.mu.Unlock()
		return &book, nil
	}
	s.mu.Unlock()

	fetchCtx, cancel := context.WithTimeout(ctx, priceFetchTimeout)
	defer cancel()

	quotes, err := s.fetcher.SimplePrice(fetchCtx, priceBasket)
	if err != nil {
		return s.fallback(err)
	}

	book := &PriceBook{
		Bitcoin:   AssetQuote{Price: quotes["bitcoin"].USD, Change24h: quotes["bitcoin"].USD24hChange},
		Ethereum:  AssetQuote{Price: quotes["ethereum"].USD, Change24h: quotes["ethereum"].USD24hChange},
		Solana:    AssetQuote{Price: quotes["solana"].USD, Change24h: quotes["solana"].USD24hChange},
		Gold:      AssetQuote{Price: quotes["tether-gold"].USD, Change24h: quotes["tether-gold"].USD24hChange},
		SP500:     AssetQuote{Price: sp500PlaceholderPrice, Change24h: sp500PlaceholderChange},
		Timestamp: s.now().UTC(),
		Cached:    false,
	}

	s.mu.Lock()
	s.lastBook = book
	s.fetchedAt = s.now()
	s.mu.Unlock()

	result := *book
	return &result, nil
}

// fallback serves the stale payload when one exists, otherwise maps the
// failure to its client-facing error.
func (s *priceService) fallback(err error) (*PriceBook, error) {
	s.mu.Lock()
	stale := s.lastBook
	s.mu.Unlock()

	switch {
	case errors.Is(err, coingecko.ErrRateLimited):
		if stale != nil {
			// Served as stored, without the cached flag. Only the timeout
			// and generic-error branches mark staleness.
			book := *stale
			return &book, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrPriceRateLimited, err)

	case isTimeout(err):
		if stale != nil {
			book := *stale
			book.Cached = true
			return &book, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrPriceTimeout, err)

	default:
		if stale != nil {
			book := *stale
			book.Cached = true
			return &book, nil
		}
		return nil, apperrors.WithMessage(apperrors.ErrPriceUpstream, err.Error())
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
