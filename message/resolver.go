package message

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/marcelsud/release-notify/errdefs"
	"github.com/marcelsud/release-notify/message/markdown"
	"github.com/marcelsud/release-notify/message/module"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

/* Small interfaces isolate the resolver's side effects
 * The file system is an afero.Fs, module loading and markdown conversion
 * are pluggable so tests can replace them
 */

// ModuleLoader loads the value exported by a message module file.
// Implementations return module.ErrNotModule for files they do not handle.
type ModuleLoader interface {
	Load(path string) (any, error)
}

// Converter turns markdown into the webhook's native markup
type Converter interface {
	Convert(markdown string) string
}

// UseCase resolves message specs into payloads
type UseCase interface {
	Resolve(spec Spec, version string) (Payload, error)
}

// Resolver turns a Spec into a ready-to-send Payload
type Resolver struct {
	fs              afero.Fs
	modules         ModuleLoader
	converter       Converter
	convertMarkdown bool
	workDir         string
	logger          zerolog.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithFs sets the file system message files are read from
func WithFs(fsys afero.Fs) Option {
	return func(r *Resolver) {
		r.fs = fsys
	}
}

// WithModuleLoader sets the loader used for module files
func WithModuleLoader(loader ModuleLoader) Option {
	return func(r *Resolver) {
		r.modules = loader
	}
}

// WithConverter sets the markdown converter
func WithConverter(c Converter) Option {
	return func(r *Resolver) {
		r.converter = c
	}
}

// WithMarkdown enables markdown conversion for text and text files
func WithMarkdown(enabled bool) Option {
	return func(r *Resolver) {
		r.convertMarkdown = enabled
	}
}

// WithWorkDir sets the directory relative file references resolve against
func WithWorkDir(dir string) Option {
	return func(r *Resolver) {
		r.workDir = dir
	}
}

// WithLogger sets the logger used to report module fallbacks
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a resolver backed by the OS file system and the Go script loader
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		fs:        afero.NewOsFs(),
		converter: markdown.New(),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.modules == nil {
		r.modules = module.NewScriptLoader(r.fs)
	}
	if r.workDir == "" {
		if wd, err := os.Getwd(); err == nil {
			r.workDir = wd
		}
	}
	return r
}

// Resolve determines the shape of spec and builds its payload.
// A nil payload with a nil error means there is nothing to send.
func (r *Resolver) Resolve(spec Spec, version string) (Payload, error) {
	switch spec.Kind() {
	case Object:
		payload, err := substituteObject(spec.Object(), version)
		if err != nil {
			return nil, fmt.Errorf("substituting placeholders: %w", err)
		}
		return payload, nil
	case Text:
		path := r.resolvePath(spec.Text())
		if r.isFileAccessible(path) {
			return r.filePayload(path, version)
		}
		return r.textPayload(spec.Text(), version), nil
	default:
		return nil, nil
	}
}

func (r *Resolver) resolvePath(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(r.workDir, name)
}

// isFileAccessible reports whether path should be treated as a file reference.
// A permission error still counts: the read that follows reports the failure.
func (r *Resolver) isFileAccessible(path string) bool {
	info, err := r.fs.Stat(path)
	if err != nil {
		return errors.Is(err, fs.ErrPermission)
	}
	return !info.IsDir()
}

func (r *Resolver) filePayload(path, version string) (Payload, error) {
	payload, err := r.modulePayload(path, version)
	if err == nil {
		return payload, nil
	}
	if !errors.Is(err, module.ErrNotModule) {
		r.logger.Warn().Err(err).Str("path", path).Msg("message module failed, reading it as a file")
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, errdefs.New(errdefs.FileReadFailed, fmt.Errorf("%s: %w", path, err))
	}

	if isDocument(path) {
		if obj, ok := decodeDocument(data); ok {
			payload, err := substituteObject(obj, version)
			if err == nil {
				return payload, nil
			}
			r.logger.Warn().Err(err).Str("path", path).Msg("message document could not be substituted, reading it as text")
		}
	}

	return r.textPayload(strings.TrimSpace(string(data)), version), nil
}

func (r *Resolver) textPayload(text, version string) Payload {
	if r.convertMarkdown && r.converter != nil {
		text = r.converter.Convert(text)
	}
	return NewTextPayload(substituteVersion(text, version))
}

func (r *Resolver) modulePayload(path, version string) (Payload, error) {
	export, err := r.modules.Load(path)
	if err != nil {
		return nil, err
	}
	value, err := invokeExport(export, version)
	if err != nil {
		return nil, fmt.Errorf("module %s: %w", path, err)
	}
	return exportPayload(value)
}

// invokeExport calls export with version when it is a function, otherwise returns it unchanged
func invokeExport(export any, version string) (value any, err error) {
	fn := reflect.ValueOf(export)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return export, nil
	}

	fnType := fn.Type()
	var args []reflect.Value
	switch {
	case fnType.NumIn() == 0:
	case fnType.NumIn() == 1 && fnType.In(0).Kind() == reflect.String:
		args = []reflect.Value{reflect.ValueOf(version).Convert(fnType.In(0))}
	default:
		return nil, fmt.Errorf("%s must accept (version string)", module.ExportName)
	}
	if fnType.NumOut() == 0 || fnType.NumOut() > 2 {
		return nil, fmt.Errorf("%s must return (value[, error])", module.ExportName)
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%s panicked: %v", module.ExportName, rec)
		}
	}()

	results := fn.Call(args)
	if len(results) == 2 {
		errVal := results[1]
		if errVal.Kind() == reflect.Interface && !errVal.IsNil() {
			if e, ok := errVal.Interface().(error); ok {
				return nil, e
			}
			return nil, fmt.Errorf("%s returned non-error second value", module.ExportName)
		}
	}
	return results[0].Interface(), nil
}

// exportPayload uses a module value verbatim: objects become structured payloads,
// anything else is stringified into a text payload
func exportPayload(value any) (Payload, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case Payload:
		return v, nil
	case map[string]any:
		return Payload(v), nil
	case string:
		return NewTextPayload(v), nil
	case fmt.Stringer:
		return NewTextPayload(v.String()), nil
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Struct:
		raw, err := json.Marshal(rv.Interface())
		if err != nil {
			return nil, fmt.Errorf("encoding module value: %w", err)
		}
		payload, err := ParsePayload(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding module value: %w", err)
		}
		return payload, nil
	default:
		return NewTextPayload(fmt.Sprint(rv.Interface())), nil
	}
}

func isDocument(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// decodeDocument parses a JSON or YAML document holding a structured message
func decodeDocument(data []byte) (map[string]any, bool) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, false
	}
	if len(doc) == 0 {
		return nil, false
	}
	return doc, true
}
