package validate

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps a field name to the messages collected for it.
type FieldErrors map[string][]string

// Error aggregates every field failure found in one input, so callers can
// redisplay all of them at once instead of fixing fields one at a time.
type Error struct {
	Fields FieldErrors
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// collector builds up an Error field by field; nil result means valid input.
type collector struct {
	fields FieldErrors
}

func (c *collector) add(field, message string) {
	if c.fields == nil {
		c.fields = make(FieldErrors)
	}
	c.fields[field] = append(c.fields[field], message)
}

func (c *collector) err() *Error {
	if c.fields == nil {
		return nil
	}
	return &Error{Fields: c.fields}
}
