// Package config provides the layered key-value configuration of git-todos.
package config

import (
	"sort"
	"strconv"
	"strings"
)

// Config is an immutable key-value view of the effective configuration.
// Keys are dotted ("label.TODO", "github.assignee.alice"). The zero value is an empty configuration.
type Config struct {
	values map[string]string
}

// New creates a Config from a copy of the given values.
func New(values map[string]string) Config {
	c := Config{values: make(map[string]string, len(values))}
	for k, v := range values {
		c.values[k] = v
	}
	return c
}

// Get returns the raw value of a key and whether it is set.
func (c Config) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// String returns the value of a key, empty when unset.
func (c Config) String(key string) string {
	return c.values[key]
}

// Bool returns the boolean value of a key; anything but a truthy word is false.
func (c Config) Bool(key string) bool {
	return IsTruthy(c.values[key])
}

// Int returns the integer value of a key, or def when unset or not a number.
func (c Config) Int(key string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.values[key]))
	if err != nil {
		return def
	}
	return n
}

// List splits a comma-separated value, dropping blanks.
func (c Config) List(key string) []string {
	return SplitList(c.values[key])
}

// WithPrefix returns the entries whose key starts with prefix, keyed by the remainder.
func (c Config) WithPrefix(prefix string) map[string]string {
	out := map[string]string{}
	for k, v := range c.values {
		if rest, ok := strings.CutPrefix(k, prefix); ok && rest != "" {
			out[rest] = v
		}
	}
	return out
}

// With returns a copy of the configuration with key set to value.
func (c Config) With(key, value string) Config {
	next := New(c.values)
	next.values[key] = value
	return next
}

// Keys returns every key, sorted.
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns a copy of every entry.
func (c Config) All() map[string]string {
	return New(c.values).values
}

// merge sets key, replacing an existing key that differs only by case.
// git lower-cases the last segment of config keys ("label.TODO" comes back as "label.todo").
func (c Config) merge(key, value string) {
	for existing := range c.values {
		if existing != key && strings.EqualFold(existing, key) {
			c.values[existing] = value
			return
		}
	}
	c.values[key] = value
}

// IsTruthy reports whether a config value reads as true.
func IsTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "on", "1":
		return true
	}
	return false
}

// SplitList splits a comma-separated value, trimming items and dropping blanks.
func SplitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
