package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclAppConfig is the top-level structure of an HCL config file.
type hclAppConfig struct {
	Name             string          `hcl:"name,optional"`
	ID               string          `hcl:"id,optional"`
	Main             string          `hcl:"main,optional"`
	Version          string          `hcl:"version,optional"`
	Author           string          `hcl:"author,optional"`
	ShortDescription string          `hcl:"short_description,optional"`
	LongDescription  string          `hcl:"long_description,optional"`
	Homepage         string          `hcl:"homepage,optional"`
	Copyright        string          `hcl:"copyright,optional"`
	Unstable         bool            `hcl:"unstable,optional"`
	Permissions      *hclPermissions `hcl:"permissions,block"`
	Build            *hclBuild       `hcl:"build,block"`
}

// hclPermissions is decoded by hand so list-or-bool values and unset
// attributes stay distinguishable.
type hclPermissions struct {
	Remain hcl.Body `hcl:",remain"`
}

type hclBuild struct {
	Out    string `hcl:"out,optional"`
	Name   string `hcl:"name,optional"`
	Assets string `hcl:"assets,optional"`
	Icon   string `hcl:"icon,optional"`
}

func parseHCL(data []byte, name string) (*AppConfig, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, diags
	}

	var raw hclAppConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, diags
	}

	cfg := &AppConfig{
		Name:             raw.Name,
		ID:               raw.ID,
		Main:             raw.Main,
		Version:          raw.Version,
		Author:           raw.Author,
		ShortDescription: raw.ShortDescription,
		LongDescription:  raw.LongDescription,
		Homepage:         raw.Homepage,
		Copyright:        raw.Copyright,
		Unstable:         raw.Unstable,
	}

	if raw.Build != nil {
		cfg.Build = BuildConfig(*raw.Build)
	}

	if raw.Permissions != nil {
		perms, err := decodeHCLPermissions(raw.Permissions.Remain)
		if err != nil {
			return nil, err
		}

		cfg.Permissions = perms
	}

	return cfg, nil
}

func decodeHCLPermissions(body hcl.Body) (Permissions, error) {
	var perms Permissions

	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return perms, diags
	}

	lists := map[string]*Allowlist{
		"allow_env":   &perms.AllowEnv,
		"allow_net":   &perms.AllowNet,
		"allow_ffi":   &perms.AllowFFI,
		"allow_read":  &perms.AllowRead,
		"allow_write": &perms.AllowWrite,
		"allow_run":   &perms.AllowRun,
	}
	flags := map[string]*bool{
		"prompt":       &perms.Prompt,
		"allow_hrtime": &perms.AllowHrtime,
	}

	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return perms, diags
		}

		switch {
		case lists[name] != nil:
			list, err := allowlistFromCty(val)
			if err != nil {
				return perms, fmt.Errorf("%s: %s: %w", attr.Range, name, err)
			}

			*lists[name] = list
		case flags[name] != nil:
			if err := gocty.FromCtyValue(val, flags[name]); err != nil {
				return perms, fmt.Errorf("%s: %s: %w", attr.Range, name, err)
			}
		default:
			return perms, fmt.Errorf("%s: unknown permission %q", attr.Range, name)
		}
	}

	return perms, nil
}

func allowlistFromCty(val cty.Value) (Allowlist, error) {
	if val.IsNull() {
		return nil, nil
	}

	ty := val.Type()

	switch {
	case ty == cty.Bool:
		if val.True() {
			return Unrestricted(), nil
		}

		return nil, nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		list := Unrestricted()

		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()

			str, err := convert.Convert(elem, cty.String)
			if err != nil {
				return nil, err
			}

			list = append(list, str.AsString())
		}

		return list, nil
	default:
		return nil, fmt.Errorf("must be a boolean or a list, got %s", ty.FriendlyName())
	}
}
