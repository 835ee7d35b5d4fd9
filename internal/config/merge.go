package config

// PermissionFlags are permission overrides supplied on the command line.
// A nil Allowlist or nil pointer means the flag was not given.
type PermissionFlags struct {
	AllowEnv   Allowlist
	AllowNet   Allowlist
	AllowFFI   Allowlist
	AllowRead  Allowlist
	AllowWrite Allowlist
	AllowRun   Allowlist

	Prompt      *bool
	AllowHrtime *bool

	// AllowAll grants every list-valued permission without restriction.
	AllowAll bool
}

// MergePermissions overlays flags on the permissions from a config file.
// A flag that was given wins over the file; AllowAll makes every list-valued
// permission unrestricted regardless of either.
func MergePermissions(file Permissions, flags PermissionFlags) Permissions {
	list := func(cli, cfg Allowlist) Allowlist {
		switch {
		case flags.AllowAll:
			return Unrestricted()
		case cli != nil:
			return cli
		default:
			return cfg
		}
	}

	flag := func(cli *bool, cfg bool) bool {
		if cli != nil {
			return *cli
		}

		return cfg
	}

	return Permissions{
		AllowEnv:    list(flags.AllowEnv, file.AllowEnv),
		AllowNet:    list(flags.AllowNet, file.AllowNet),
		AllowFFI:    list(flags.AllowFFI, file.AllowFFI),
		AllowRead:   list(flags.AllowRead, file.AllowRead),
		AllowWrite:  list(flags.AllowWrite, file.AllowWrite),
		AllowRun:    list(flags.AllowRun, file.AllowRun),
		Prompt:      flag(flags.Prompt, file.Prompt),
		AllowHrtime: flag(flags.AllowHrtime, file.AllowHrtime),
	}
}
