package scenario

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed scripts/*.yaml
var scripts embed.FS

// Builtins returns the names of the embedded scripts.
func Builtins() []string {
	entries, err := scripts.ReadDir("scripts")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Builtin parses the embedded script with the given name.
func Builtin(name string) (*Script, error) {
	data, err := scripts.ReadFile(path.Join("scripts", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScript, name)
	}
	return Parse(bytes.NewReader(data))
}
