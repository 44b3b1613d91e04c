package switchboard

import (
	"reflect"
	"sync"
)

// BindingCache provides thread-safe caching of binding plans per struct
// type, so a type's tags are only inspected the first time it is bound.
type BindingCache struct {
	cache sync.Map // map[reflect.Type]*BindingPlan
}

// NewBindingCache creates a new thread-safe binding cache
func NewBindingCache() *BindingCache {
	return &BindingCache{}
}

// GetOrCreate returns the plan for t, building it with factory if it is
// not cached yet. Concurrent callers may each run factory, but all of
// them get back the plan that was stored first. Factory errors are not
// cached.
func (bc *BindingCache) GetOrCreate(t reflect.Type, factory func() (*BindingPlan, error)) (*BindingPlan, error) {
	if v, ok := bc.cache.Load(t); ok {
		return v.(*BindingPlan), nil
	}

	plan, err := factory()
	if err != nil {
		return nil, err
	}

	actual, _ := bc.cache.LoadOrStore(t, plan)
	return actual.(*BindingPlan), nil
}

// Get retrieves the plan for t if it exists
func (bc *BindingCache) Get(t reflect.Type) (*BindingPlan, bool) {
	if v, ok := bc.cache.Load(t); ok {
		return v.(*BindingPlan), true
	}
	return nil, false
}

// Delete removes the plan for t
func (bc *BindingCache) Delete(t reflect.Type) {
	bc.cache.Delete(t)
}

// Clear removes all cached plans
func (bc *BindingCache) Clear() {
	bc.cache.Range(func(key, _ any) bool {
		bc.cache.Delete(key)
		return true
	})
}
