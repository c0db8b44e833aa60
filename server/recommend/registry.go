package recommend

import (
	"sync"

	"github.com/launchpath/launchpath/store"
)

// Registry holds one engine instance for callers that resolve the engine
// through shared state instead of threading it through the call graph. The
// zero value is ready to use.
type Registry struct {
	mu     sync.Mutex
	engine *Engine
}

// Get returns the held engine, lazily creating one with empty catalogues on
// first use. Two calls with no intervening Set return the same instance.
func (r *Registry) Get() *Engine {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.engine == nil {
		r.engine = NewEngine(nil, nil, nil)
	}
	return r.engine
}

// Set replaces the held engine wholesale. The previous engine is discarded,
// never merged.
func (r *Registry) Set(engine *Engine) {
	r.mu.Lock()
	r.engine = engine
	r.mu.Unlock()
}

// defaultRegistry backs GetEngine and InitializeEngine for callers that want
// the process-wide instance.
var defaultRegistry Registry

// GetEngine returns the process-wide engine instance.
func GetEngine() *Engine {
	return defaultRegistry.Get()
}

// InitializeEngine builds a new engine from the given catalogues, installs
// it as the process-wide instance, and returns it.
func InitializeEngine(theories []*store.Theory, blogPosts []*store.BlogPostReference, projects []*store.ProjectReference) *Engine {
	engine := NewEngine(theories, blogPosts, projects)
	defaultRegistry.Set(engine)
	return engine
}
