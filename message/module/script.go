// Package module loads message modules: Go source files interpreted at
// runtime that export a Message value or a Message(version string) function.
//
// Scripts only see the Go standard library. Load them from paths the release
// configuration names explicitly; never from untrusted input.
package module

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// ExportName is the symbol a message script must declare.
const ExportName = "Message"

// ErrNotModule is returned for files the loader does not handle.
var ErrNotModule = errors.New("module: not a loadable module")

// ScriptLoader evaluates .go message scripts with yaegi
type ScriptLoader struct {
	fs afero.Fs
}

// NewScriptLoader creates a loader reading scripts from fsys
func NewScriptLoader(fsys afero.Fs) *ScriptLoader {
	return &ScriptLoader{fs: fsys}
}

// Load interprets the script at path and returns the value bound to ExportName.
// Functions are returned uncalled.
func (l *ScriptLoader) Load(path string) (any, error) {
	if filepath.Ext(path) != ".go" {
		return nil, ErrNotModule
	}
	code, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("module: read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(code))) == 0 {
		return nil, fmt.Errorf("module: %s is empty", path)
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("module: load stdlib symbols: %w", err)
	}
	if _, err := i.Eval(string(code)); err != nil {
		return nil, fmt.Errorf("module: interpret %s: %w", path, err)
	}
	value, err := i.Eval(exportSymbol(path, code))
	if err != nil {
		return nil, fmt.Errorf("module: %s must declare %s: %w", path, ExportName, err)
	}
	if !value.IsValid() {
		return nil, fmt.Errorf("module: %s has no value for %s", path, ExportName)
	}
	return value.Interface(), nil
}

// exportSymbol qualifies ExportName with the script's package unless it is main
func exportSymbol(path string, code []byte) string {
	file, err := parser.ParseFile(token.NewFileSet(), path, code, parser.PackageClauseOnly)
	if err != nil || file.Name == nil || file.Name.Name == "main" {
		return ExportName
	}
	return file.Name.Name + "." + ExportName
}
