package checkout

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultScriptURL  = "https://checkout.razorpay.com/v1/checkout.js"
	scriptLoadTimeout = 30 * time.Second
	maxScriptBytes    = 2 << 20
)

// ScriptSource exposes the loaded checkout script to the bridge and the hosted page.
type ScriptSource interface {
	Ready() bool
	Script() []byte
}

// ScriptLoader fetches the provider checkout script at most once per success.
// Concurrent Load calls share one fetch; a failed fetch is not remembered.
type ScriptLoader struct {
	url    string
	client *http.Client
	group  singleflight.Group

	mu     sync.RWMutex
	script []byte
}

var _ ScriptSource = (*ScriptLoader)(nil)

func NewScriptLoader(url string, client *http.Client) *ScriptLoader {
	if url == "" {
		url = DefaultScriptURL
	}
	if client == nil {
		client = &http.Client{Timeout: scriptLoadTimeout}
	}
	return &ScriptLoader{url: url, client: client}
}

var (
	defaultLoader     *ScriptLoader
	defaultLoaderOnce sync.Once
)

// Default returns the process-wide loader for DefaultScriptURL.
func Default() *ScriptLoader {
	defaultLoaderOnce.Do(func() {
		defaultLoader = NewScriptLoader(DefaultScriptURL, nil)
	})
	return defaultLoader
}

func (l *ScriptLoader) Ready() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.script != nil
}

func (l *ScriptLoader) Script() []byte {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.script
}

func (l *ScriptLoader) URL() string {
	return l.url
}

// Load returns nil once the script is available. A caller whose ctx ends stops
// waiting, but the shared fetch keeps going for the others.
func (l *ScriptLoader) Load(ctx context.Context) error {
	if l.Ready() {
		return nil
	}

	ch := l.group.DoChan(l.url, func() (any, error) {
		if l.Ready() {
			return nil, nil
		}
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), scriptLoadTimeout)
		defer cancel()

		b, err := l.fetch(fetchCtx)
		if err != nil {
			log.Printf("[checkout][loader] load failed url=%s err=%v", l.url, err)
			return nil, err
		}

		l.mu.Lock()
		l.script = b
		l.mu.Unlock()
		log.Printf("[checkout][loader] loaded url=%s bytes=%d", l.url, len(b))
		return nil, nil
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		return res.Err
	}
}

func (l *ScriptLoader) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("checkout script returned status %d", resp.StatusCode)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxScriptBytes))
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("checkout script is empty")
	}
	return b, nil
}
