package module_test

import (
	"reflect"
	"testing"

	"github.com/marcelsud/release-notify/message/module"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const funcScript = `package main

import "fmt"

func Message(version string) map[string]string {
	return map[string]string{
		"text": fmt.Sprintf("shipped %s", version),
	}
}
`

const valueScript = `package main

var Message = "static announcement"
`

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
}

func TestScriptLoader_Load(t *testing.T) {
	t.Run("success - exported function", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/msg/notify.go", funcScript)

		export, err := module.NewScriptLoader(fs).Load("/msg/notify.go")
		require.NoError(t, err)

		fn := reflect.ValueOf(export)
		require.Equal(t, reflect.Func, fn.Kind())
		out := fn.Call([]reflect.Value{reflect.ValueOf("1.4.0")})
		require.Len(t, out, 1)
		assert.Equal(t, map[string]string{"text": "shipped 1.4.0"}, out[0].Interface())
	})

	t.Run("success - exported value", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/msg/static.go", valueScript)

		export, err := module.NewScriptLoader(fs).Load("/msg/static.go")
		require.NoError(t, err)
		assert.Equal(t, "static announcement", export)
	})

	t.Run("success - exported function in a named package", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/msg/pkg.go", `package notify

func Message(version string) string { return "pkg " + version }
`)

		export, err := module.NewScriptLoader(fs).Load("/msg/pkg.go")
		require.NoError(t, err)

		fn := reflect.ValueOf(export)
		require.Equal(t, reflect.Func, fn.Kind())
		out := fn.Call([]reflect.Value{reflect.ValueOf("1.2.3")})
		assert.Equal(t, "pkg 1.2.3", out[0].Interface())
	})

	t.Run("success - exported value in a named package", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/msg/static.go", `package announce

var Message = "named static"
`)

		export, err := module.NewScriptLoader(fs).Load("/msg/static.go")
		require.NoError(t, err)
		assert.Equal(t, "named static", export)
	})

	t.Run("error - not a go file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/msg/notes.md", "# notes")

		_, err := module.NewScriptLoader(fs).Load("/msg/notes.md")
		require.ErrorIs(t, err, module.ErrNotModule)
	})

	t.Run("error - missing export", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/msg/broken.go", "package main\n\nfunc Other() string { return \"x\" }\n")

		_, err := module.NewScriptLoader(fs).Load("/msg/broken.go")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must declare Message")
	})

	t.Run("error - syntax error", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/msg/bad.go", "package main\n\nfunc Message(version string) string {\n")

		_, err := module.NewScriptLoader(fs).Load("/msg/bad.go")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "module: interpret")
	})

	t.Run("error - file missing", func(t *testing.T) {
		_, err := module.NewScriptLoader(afero.NewMemMapFs()).Load("/msg/none.go")
		require.Error(t, err)
		assert.NotErrorIs(t, err, module.ErrNotModule)
	})
}
