package registry

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/typeforge/dynrec"
	"github.com/typeforge/dynrec/errors"
)

// Registry is a thread-safe catalog of layout descriptors keyed by
// compile-time type identity and schemas keyed by name.
type Registry struct {
	staticMu sync.RWMutex
	static   map[reflect.Type]*dynrec.Descriptor

	schemaMu sync.RWMutex
	schemas  map[string]*dynrec.Schema
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		static:  make(map[reflect.Type]*dynrec.Descriptor),
		schemas: make(map[string]*dynrec.Schema),
	}
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// Register inserts T's descriptor by type identity. Registering a type
// that is already present replaces the entry with an equivalent one.
func Register[T any](r *Registry) {
	d := dynrec.Describe[T]()
	r.staticMu.Lock()
	r.static[d.Type()] = d
	r.staticMu.Unlock()

	Logger().Debug("descriptor registered", zap.String("type", d.TypeName()))
}

// Layout returns the cached descriptor for T, computing and caching a
// new one on first request.
func Layout[T any](r *Registry) *dynrec.Descriptor {
	typ := reflect.TypeOf((*T)(nil)).Elem()

	r.staticMu.RLock()
	d, ok := r.static[typ]
	r.staticMu.RUnlock()
	if ok {
		return d
	}

	d = dynrec.Describe[T]()
	r.staticMu.Lock()
	// Another goroutine may have won the race; keep its entry so every
	// holder shares one descriptor.
	if prior, ok := r.static[typ]; ok {
		d = prior
	} else {
		r.static[typ] = d
	}
	r.staticMu.Unlock()

	return d
}

// Lookup returns the registered descriptor for a type identity without
// computing one on a miss.
func (r *Registry) Lookup(typ reflect.Type) (*dynrec.Descriptor, bool) {
	r.staticMu.RLock()
	d, ok := r.static[typ]
	r.staticMu.RUnlock()
	return d, ok
}

// AddSchema inserts a schema by name, replacing any prior schema of
// the same name.
func (r *Registry) AddSchema(s *dynrec.Schema) {
	r.schemaMu.Lock()
	r.schemas[s.Name()] = s
	r.schemaMu.Unlock()

	Logger().Debug("schema registered",
		zap.String("schema", s.Name()),
		zap.Int("fields", s.Len()),
		zap.Uint64("size", uint64(s.Size())))
}

// Schema returns the schema registered under name.
func (r *Registry) Schema(name string) (*dynrec.Schema, bool) {
	r.schemaMu.RLock()
	s, ok := r.schemas[name]
	r.schemaMu.RUnlock()
	return s, ok
}

// Instantiate creates a record from the schema registered under name.
// An unknown name is a programming error and panics.
func (r *Registry) Instantiate(name string) *dynrec.Record {
	s, ok := r.Schema(name)
	if !ok {
		panic(errors.SchemaUnknown(name))
	}
	return dynrec.NewRecord(s)
}
