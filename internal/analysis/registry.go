package analysis

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Registry manages tokenizer instances by name.
type Registry struct {
	tokenizers map[string]Tokenizer
	mu         sync.RWMutex
}

// NewRegistry creates a Registry with the built-in tokenizers registered.
func NewRegistry() *Registry {
	r := &Registry{
		tokenizers: make(map[string]Tokenizer),
	}
	r.tokenizers["word"] = NewWordTokenizer(0)
	r.tokenizers["standard"] = NewStandardTokenizer()
	r.tokenizers["whitespace"] = NewWhitespaceTokenizer()
	r.tokenizers["keyword"] = NewKeywordTokenizer()
	return r
}

// Get returns the tokenizer registered under the given name.
func (r *Registry) Get(name string) (Tokenizer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tokenizers[name]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown tokenizer %q", name)
	}
	return t, nil
}

// Register adds a custom tokenizer to the registry.
func (r *Registry) Register(name string, t Tokenizer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tokenizers[name]; exists {
		return errors.Errorf("tokenizer already registered: %q", name)
	}
	r.tokenizers[name] = t
	return nil
}

// Names returns the sorted names of all registered tokenizers.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tokenizers))
	for name := range r.tokenizers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
