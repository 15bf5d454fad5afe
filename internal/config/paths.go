package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// expandPath expands ~ and environment variables in a configured path.
// $VAR and ${VAR} work everywhere; %VAR% and ~\ only on Windows.
func expandPath(p string) string {
	if p == "" {
		return p
	}

	expanded := os.ExpandEnv(p)
	if runtime.GOOS == "windows" {
		expanded = expandPercentVars(expanded, os.LookupEnv)
	}

	rest, ok := cutHome(expanded)
	if !ok {
		return expanded
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return expanded
	}
	if rest == "" {
		return home
	}
	return filepath.Join(home, rest)
}

// cutHome reports whether p starts with a home reference and returns the remainder.
func cutHome(p string) (string, bool) {
	if p == "~" {
		return "", true
	}
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		return rest, true
	}
	if runtime.GOOS == "windows" {
		if rest, ok := strings.CutPrefix(p, `~\`); ok {
			return rest, true
		}
	}
	return "", false
}

// expandPercentVars replaces %VAR% references; unknown variables are left as is.
func expandPercentVars(p string, lookup func(string) (string, bool)) string {
	var b strings.Builder
	for {
		start := strings.IndexByte(p, '%')
		if start < 0 {
			break
		}
		end := strings.IndexByte(p[start+1:], '%')
		if end < 0 {
			break
		}
		end += start + 1
		key := p[start+1 : end]
		b.WriteString(p[:start])
		if val, ok := lookup(key); ok && key != "" {
			b.WriteString(val)
			p = p[end+1:]
			continue
		}
		// Keep the opening % and rescan from the closing one.
		b.WriteString(p[start:end])
		p = p[end:]
	}
	b.WriteString(p)
	return b.String()
}
