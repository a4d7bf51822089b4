package render

import (
	"slices"
	"strings"

	theme "github.com/goliatone/go-theme"
)

func themeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":           cfg.Theme,
		"variant":        cfg.Variant,
		"tokens":         cfg.Tokens,
		"css_vars_style": cssVarsStyle(cfg.CSSVars),
	}
}

func themeStylesheet(cfg *theme.RendererConfig) string {
	if cfg == nil || cfg.AssetURL == nil {
		return ""
	}
	return strings.TrimSpace(cfg.AssetURL(stylesheetAsset))
}

func themeLayout(cfg *theme.RendererConfig) string {
	if cfg == nil {
		return ""
	}
	return strings.TrimSpace(cfg.Partials[layoutPartial])
}

// cssVarsStyle renders vars as a :root block in key order.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var b strings.Builder
	b.WriteString(":root {")
	for _, key := range keys {
		b.WriteString(" ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";")
	}
	b.WriteString(" }")
	return b.String()
}
