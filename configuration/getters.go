package configuration

import (
	"strings"

	"github.com/spf13/cast"
)

// Exists returns true if the given key was loaded from any source.
func (c *Configuration) Exists(key string) bool {
	return c.ko.Exists(strings.ToLower(key))
}

// String returns the value of the given key as a string.
func (c *Configuration) String(key string) string {
	return cast.ToString(c.ko.Get(strings.ToLower(key)))
}

// Strings returns the value of the given key as a string slice.
func (c *Configuration) Strings(key string) []string {
	return cast.ToStringSlice(c.ko.Get(strings.ToLower(key)))
}

// Bool returns the value of the given key as a bool.
func (c *Configuration) Bool(key string) bool {
	return cast.ToBool(c.ko.Get(strings.ToLower(key)))
}

// Int returns the value of the given key as an int.
func (c *Configuration) Int(key string) int {
	return cast.ToInt(c.ko.Get(strings.ToLower(key)))
}

// All returns a flattened copy of all loaded parameters.
func (c *Configuration) All() map[string]interface{} {
	return c.ko.All()
}
