package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/osse101/FactoryModExplorer_Go/internal/logger"
	"github.com/osse101/FactoryModExplorer_Go/internal/metrics"
)

var (
	ErrEmptyLocation     = errors.New(ErrMsgEmptyLocation)
	ErrTooLarge          = errors.New(ErrMsgTooLarge)
	ErrUnexpectedStatus  = errors.New(ErrMsgUnexpectedStatus)
	ErrUnsupportedScheme = errors.New(ErrMsgUnsupportedScheme)
)

// Document is the raw text of a configuration together with where and when
// it was read. Documents are shared through the cache and must not be modified.
type Document struct {
	Location  string
	Body      []byte
	Digest    string
	FetchedAt time.Time
	// FromCache is set on the copy handed out for a cache hit
	FromCache bool
}

// Fetcher reads configuration documents from URLs or local files.
type Fetcher interface {
	Fetch(ctx context.Context, location string) (*Document, error)
	// Invalidate drops a cached document so the next Fetch reads it again
	Invalidate(location string)
}

// Options configures a Fetcher.
type Options struct {
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
	// Client overrides the default HTTP client; Timeout is ignored when set
	Client *http.Client
}

type fetcher struct {
	client *http.Client
	cache  *documentCache
	group  singleflight.Group
	now    func() time.Time
}

// NewFetcher creates a Fetcher with a response cache.
func NewFetcher(opts Options) Fetcher {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	size := opts.CacheSize
	if size <= 0 {
		size = 1
	}
	return &fetcher{
		client: client,
		cache:  newDocumentCache(size, opts.CacheTTL),
		now:    time.Now,
	}
}

// Fetch returns the document at location. Concurrent fetches of one location
// share a single read.
func (f *fetcher) Fetch(ctx context.Context, location string) (*Document, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}
	log := logger.FromContext(ctx)

	if doc, ok := f.cache.Get(location); ok {
		metrics.SourceCacheHits.Inc()
		log.Debug(LogMsgCacheHit, "location", location, "digest", doc.Digest)
		hit := *doc
		hit.FromCache = true
		return &hit, nil
	}
	metrics.SourceCacheMisses.Inc()

	ch := f.group.DoChan(location, func() (any, error) {
		// Detached from the first caller so one cancelled request doesn't
		// fail everyone waiting on the same location
		return f.read(context.WithoutCancel(ctx), location)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Document), nil
	}
}

func (f *fetcher) Invalidate(location string) {
	location = strings.TrimSpace(location)
	f.cache.Invalidate(location)
	f.group.Forget(location)
	logger.Debug(LogMsgInvalidated, "location", location)
}

func (f *fetcher) read(ctx context.Context, location string) (*Document, error) {
	log := logger.FromContext(ctx)
	scheme := Scheme(location)
	log.Debug(LogMsgFetching, "location", location, "scheme", scheme)

	var (
		body []byte
		err  error
	)
	switch scheme {
	case SchemeHTTP, SchemeHTTPS:
		body, err = f.readHTTP(ctx, location)
	case SchemeFile:
		body, err = readFile(strings.TrimPrefix(location, fileURLPrefix))
	default:
		err = fmt.Errorf(ErrFmtScheme, ErrUnsupportedScheme, scheme)
	}
	metrics.RecordFetch(scheme, err, len(body))
	if err != nil {
		log.Warn(LogMsgFetchFailed, "location", location, "error", err)
		return nil, err
	}

	doc := &Document{
		Location:  location,
		Body:      body,
		Digest:    Digest(body),
		FetchedAt: f.now(),
	}
	f.cache.Set(doc)
	log.Info(LogMsgFetched, "location", location, "bytes", len(body), "digest", doc.Digest)
	return doc, nil
}

func (f *fetcher) readHTTP(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtBuildRequest, location, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtRequest, location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf(ErrFmtStatus, ErrUnexpectedStatus, location, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf(ErrFmtReadBody, location, err)
	}
	if len(body) > MaxBodyBytes {
		return nil, fmt.Errorf(ErrFmtTooLarge, ErrTooLarge, location, MaxBodyBytes)
	}
	return body, nil
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtReadFile, path, err)
	}
	if info.Size() > MaxBodyBytes {
		return nil, fmt.Errorf(ErrFmtTooLarge, ErrTooLarge, path, MaxBodyBytes)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtReadFile, path, err)
	}
	return body, nil
}

// Scheme classifies a location. Anything that isn't an http(s) URL is a file path.
func Scheme(location string) string {
	lower := strings.ToLower(location)
	switch {
	case strings.HasPrefix(lower, "https://"):
		return SchemeHTTPS
	case strings.HasPrefix(lower, "http://"):
		return SchemeHTTP
	case strings.Contains(lower, "://") && !strings.HasPrefix(lower, fileURLPrefix):
		return lower[:strings.Index(lower, "://")]
	default:
		return SchemeFile
	}
}

// Digest returns the hex sha256 of a document body.
func Digest(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
