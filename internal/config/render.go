package config

import (
	"fmt"
	"sort"
	"strings"
)

// RenderDefaultTOML renders the option table as a commented config.toml.
// Dotted keys become sections; sections sort after top-level keys.
func RenderDefaultTOML() string {
	var top []ConfigOption
	sections := map[string][]ConfigOption{}
	for _, o := range GetConfigOptions() {
		if i := strings.IndexByte(o.Key, '.'); i >= 0 {
			sec := o.Key[:i]
			sections[sec] = append(sections[sec], ConfigOption{Key: o.Key[i+1:], Default: o.Default, Comment: o.Comment})
		} else {
			top = append(top, o)
		}
	}

	var b strings.Builder
	b.WriteString("# lovelog configuration\n\n")
	for _, o := range top {
		writeOption(&b, o)
	}
	names := make([]string, 0, len(sections))
	for n := range sections {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(&b, "[%s]\n", n)
		for _, o := range sections[n] {
			writeOption(&b, o)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeOption(b *strings.Builder, o ConfigOption) {
	if o.Comment != "" {
		fmt.Fprintf(b, "# %s\n", o.Comment)
	}
	fmt.Fprintf(b, "%s = %s\n", o.Key, tomlValue(o.Default))
}

func tomlValue(v any) string {
	switch t := v.(type) {
	case string:
		return fmt.Sprintf("%q", t)
	case bool:
		return fmt.Sprintf("%t", t)
	case int:
		return fmt.Sprintf("%d", t)
	case []string:
		if len(t) == 0 {
			return "[]"
		}
		parts := make([]string, 0, len(t))
		for _, s := range t {
			parts = append(parts, fmt.Sprintf("%q", s))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", t)
	}
}
