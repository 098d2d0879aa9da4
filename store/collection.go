package store

import (
	"reflect"
	"strings"
	"sync"

	"github.com/google/uuid"
)

/*

Collection is a keyed in-memory record set for one entity type. Records are
plain structs with an `Id string` field and json tags naming their wire
fields; filters address fields by those tags. Enumeration follows insertion
order. A coarse mutex serializes access: every exported operation is a single
critical section, so individual store calls are atomic while multi-step
sequences built on top of them (cascade deletion, subscription rewrites) are
not, matching the documented best-effort semantics of the callers.

*/

type Collection[T any] struct {
	name  string
	mu    sync.RWMutex
	items map[string]T
	order []string
}

// NewCollection creates an empty collection. The name only shows up in logs
// and error context.
func NewCollection[T any](name string) *Collection[T] {
	return &Collection[T]{
		name:  name,
		items: make(map[string]T),
	}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

// Create persists a new record and returns it. A missing id is assigned a
// fresh uuid; a provided id is kept, which seeding fixed reference data
// relies on.
func (c *Collection[T]) Create(record T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := recordId(record)
	if id == "" {
		id = uuid.New().String()
		setRecordId(&record, id)
	}
	if _, taken := c.items[id]; taken {
		var zero T
		return zero, ErrAlreadyExists
	}

	c.items[id] = record
	c.order = append(c.order, id)
	return record, nil
}

// FindOne returns the first record matching the filter in insertion order,
// or ErrNotFound. Multiple matches are not an error.
func (c *Collection[T]) FindOne(f Filter) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		record := c.items[id]
		if matches(record, f) {
			return record, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// FindMany returns all records matching every given filter, in insertion
// order. With no filters it returns the whole collection.
func (c *Collection[T]) FindMany(filters ...Filter) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	records := make([]T, 0, len(c.order))
	for _, id := range c.order {
		record := c.items[id]
		ok := true
		for _, f := range filters {
			if !matches(record, f) {
				ok = false
				break
			}
		}
		if ok {
			records = append(records, record)
		}
	}
	return records
}

// Change merges the non-nil fields of patch into the record identified by id
// and returns the updated record. Patch is a struct whose pointer fields
// carry the new values; fields without a counterpart on the record are
// ignored.
func (c *Collection[T]) Change(id string, patch any) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}

	applyPatch(&record, patch)
	c.items[id] = record
	return record, nil
}

// Delete removes and returns the record identified by id.
func (c *Collection[T]) Delete(id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, ok := c.items[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}

	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return record, nil
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func recordId(record any) string {
	f := reflect.ValueOf(record).FieldByName("Id")
	if !f.IsValid() || f.Kind() != reflect.String {
		return ""
	}
	return f.String()
}

func setRecordId(record any, id string) {
	f := reflect.ValueOf(record).Elem().FieldByName("Id")
	if f.IsValid() && f.Kind() == reflect.String {
		f.SetString(id)
	}
}

// fieldByKey resolves a wire name (json tag, falling back to a
// case-insensitive field name match) to a struct field value.
func fieldByKey(rv reflect.Value, key string) (reflect.Value, bool) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		tag := rt.Field(i).Tag.Get("json")
		if comma := strings.Index(tag, ","); comma >= 0 {
			tag = tag[:comma]
		}
		if tag == key {
			return rv.Field(i), true
		}
	}
	for i := 0; i < rt.NumField(); i++ {
		if strings.EqualFold(rt.Field(i).Name, key) {
			return rv.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func matches(record any, f Filter) bool {
	fv, ok := fieldByKey(reflect.ValueOf(record), f.Key)
	if !ok {
		return false
	}

	switch f.Op {
	case OpEquals:
		return fv.Kind() == reflect.String && fv.String() == f.Value
	case OpInArray:
		if fv.Kind() != reflect.Slice {
			return false
		}
		for i := 0; i < fv.Len(); i++ {
			element := fv.Index(i)
			if element.Kind() == reflect.String && element.String() == f.Value {
				return true
			}
		}
	}
	return false
}

// applyPatch copies every non-nil pointer field of patch onto the
// same-named field of target.
func applyPatch(target any, patch any) {
	tv := reflect.ValueOf(target).Elem()
	pv := reflect.ValueOf(patch)
	if pv.Kind() == reflect.Ptr {
		pv = pv.Elem()
	}

	pt := pv.Type()
	for i := 0; i < pt.NumField(); i++ {
		field := pv.Field(i)
		if field.Kind() != reflect.Ptr || field.IsNil() {
			continue
		}
		tf := tv.FieldByName(pt.Field(i).Name)
		if !tf.IsValid() || !tf.CanSet() {
			continue
		}
		value := field.Elem()
		if value.Type().AssignableTo(tf.Type()) {
			tf.Set(value)
		}
	}
}
