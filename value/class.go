package value

import (
	"fmt"
	"math/big"
	"reflect"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// classRegistry maps textual class names to Go types so that CLASS
// scalars survive a round trip through the text and binary codecs.
type classRegistry struct {
	mu     sync.RWMutex
	byName map[string]reflect.Type
	byType map[reflect.Type]string
}

var classes = newClassRegistry()

func newClassRegistry() *classRegistry {
	r := &classRegistry{
		byName: make(map[string]reflect.Type),
		byType: make(map[reflect.Type]string),
	}
	for _, t := range Types() {
		r.register(goType(t).String(), goType(t))
	}
	return r
}

func (r *classRegistry) register(name string, t reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[name] = t
	if _, exists := r.byType[t]; !exists {
		r.byType[t] = name
	}
}

// RegisterClass makes t resolvable by name for CLASS scalars.
// The first name registered for a type is the one used when encoding it.
func RegisterClass(name string, t reflect.Type) error {
	if name == "" {
		return fmt.Errorf("class name cannot be empty")
	}
	if t == nil {
		return fmt.Errorf("class %q: type cannot be nil", name)
	}
	classes.register(name, t)
	return nil
}

// LookupClass resolves a registered class name.
func LookupClass(name string) (reflect.Type, bool) {
	classes.mu.RLock()
	defer classes.mu.RUnlock()
	t, ok := classes.byName[name]
	return t, ok
}

// ClassName returns the name t is encoded under. Unregistered types
// fall back to reflect's own rendering, which LookupClass cannot resolve.
func ClassName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	classes.mu.RLock()
	defer classes.mu.RUnlock()
	if name, ok := classes.byType[t]; ok {
		return name
	}
	return t.String()
}

// goType returns the Go type used to represent scalars of kind t.
func goType(t Type) reflect.Type {
	switch t {
	case Boolean:
		return reflect.TypeOf(false)
	case Char:
		return reflect.TypeOf(rune(0))
	case Byte:
		return reflect.TypeOf(int8(0))
	case Short:
		return reflect.TypeOf(int16(0))
	case Int:
		return reflect.TypeOf(int32(0))
	case Long:
		return reflect.TypeOf(int64(0))
	case Float:
		return reflect.TypeOf(float32(0))
	case Double:
		return reflect.TypeOf(float64(0))
	case String:
		return reflect.TypeOf("")
	case Date:
		return reflect.TypeOf(time.Time{})
	case BigInteger:
		return reflect.TypeOf((*big.Int)(nil))
	case BigDecimal:
		return reflect.TypeOf(decimal.Decimal{})
	case ByteArray:
		return reflect.TypeOf([]byte(nil))
	case Class:
		return reflect.TypeOf((*reflect.Type)(nil)).Elem()
	}
	return nil
}
