package cmd

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/astrodon/astrodon-cli/internal/config"
)

// unrestricted is the value a bare permission flag takes.
const unrestricted = "*"

// allowlistValue is a pflag.Value for permission flags. Given without a value
// the flag grants the permission unrestricted; otherwise every occurrence
// adds its comma-separated entries.
type allowlistValue struct {
	list *config.Allowlist
}

var _ pflag.Value = (*allowlistValue)(nil)

func newAllowlistValue(list *config.Allowlist) *allowlistValue {
	return &allowlistValue{list: list}
}

func (v *allowlistValue) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || s == unrestricted {
		*v.list = config.Unrestricted()

		return nil
	}

	// An earlier bare flag already grants everything.
	if v.list.IsUnrestricted() {
		return nil
	}

	for _, entry := range strings.Split(s, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			*v.list = append(*v.list, entry)
		}
	}

	return nil
}

func (v *allowlistValue) String() string {
	if v.list == nil || *v.list == nil {
		return ""
	}

	if v.list.IsUnrestricted() {
		return unrestricted
	}

	return strings.Join(*v.list, ",")
}

func (v *allowlistValue) Type() string {
	return "list"
}

// addAllowlistFlag registers a permission flag on fs that writes to list.
func addAllowlistFlag(fs *pflag.FlagSet, list *config.Allowlist, name, usage string) {
	f := fs.VarPF(newAllowlistValue(list), name, "", usage)
	f.NoOptDefVal = unrestricted
}
