package configuration

import (
	flag "github.com/spf13/pflag"
)

// NewUnsortedFlagSet returns a FlagSet whose usage lists the flags in the order they were defined.
func NewUnsortedFlagSet(name string, errorHandling flag.ErrorHandling) *flag.FlagSet {
	flagSet := flag.NewFlagSet(name, errorHandling)
	flagSet.SortFlags = false

	return flagSet
}
