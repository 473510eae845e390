package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable values (edges, points, pointers) into
// random readable names. It leaks memory but generates names lazily, so it
// costs nothing unless something actually asks for a name. It makes log lines
// and debug renders much easier to cross-reference than raw coordinates.

var (
	mu   sync.Mutex
	memo map[interface{}]string
	used map[string]struct{}
)

func init() {
	memo = make(map[interface{}]string)
	used = make(map[string]struct{})
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the name for obj, creating one on first use. Nil pointers (and
// other nil values) are all called "Ø". Uncomparable values cannot be
// remembered and get their %v form instead.
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		if value.IsNil() {
			return "Ø"
		}
	}
	if !value.Type().Comparable() {
		return fmt.Sprintf("%v", obj)
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fresh()
	memo[obj] = r
	return r
}

// Generate a name that has not been handed out yet. Collisions are rare, but
// two different things sharing a name would defeat the purpose.
func fresh() string {
	for attempt := 0; ; attempt++ {
		r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
		if attempt > 8 {
			r = fmt.Sprintf("%s%d", r, len(used))
		}
		if _, taken := used[r]; !taken {
			used[r] = struct{}{}
			return r
		}
	}
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
