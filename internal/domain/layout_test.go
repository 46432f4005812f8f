package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mouse-blink/envboot/internal/adapter"
	m "github.com/mouse-blink/envboot/internal/model"
)

func TestRuntimeLayout_Posix(t *testing.T) {
	root := filepath.FromSlash("/work/project")
	layout := NewRuntimeLayout(m.Path(root), ".venv", "linux")

	assert.Equal(t, m.Path(filepath.Join(root, ".venv")), layout.Dir)
	assert.Equal(t, m.Path(filepath.Join(root, ".venv", "bin")), layout.BinDir())
	assert.Equal(t, m.Path(filepath.Join(root, ".venv", "bin", "python")), layout.Python())
	assert.Equal(t, m.Path(filepath.Join(root, ".venv", PyvenvConfig)), layout.ConfigFile())
	assert.Equal(t, "source .venv/bin/activate", layout.ActivateCommand())
}

func TestRuntimeLayout_Windows(t *testing.T) {
	root := filepath.FromSlash("/work/project")
	layout := NewRuntimeLayout(m.Path(root), ".venv", "windows")

	assert.Equal(t, m.Path(filepath.Join(root, ".venv", "Scripts")), layout.BinDir())
	assert.Equal(t, m.Path(filepath.Join(root, ".venv", "Scripts", "python.exe")), layout.Python())
	assert.Equal(t, `.venv\Scripts\activate`, layout.ActivateCommand())
}

func TestRuntimeLayout_ActivatedEnv(t *testing.T) {
	root := filepath.FromSlash("/work/project")

	t.Run("posix", func(t *testing.T) {
		layout := NewRuntimeLayout(m.Path(root), ".venv", "linux")
		env := adapter.MapEnvironment{"PATH": "/usr/bin", "PYTHONHOME": "/opt/py", "HOME": "/home/dev"}

		activated := layout.ActivatedEnv(env)

		assert.Equal(t, string(layout.Dir), activated["VIRTUAL_ENV"])
		assert.Equal(t, string(layout.BinDir())+":/usr/bin", activated["PATH"])
		assert.NotContains(t, activated, "PYTHONHOME")
		assert.Equal(t, "/home/dev", activated["HOME"])
		assert.Equal(t, "/opt/py", env["PYTHONHOME"], "input environment must not change")
	})

	t.Run("windows keeps the Path spelling", func(t *testing.T) {
		layout := NewRuntimeLayout(m.Path(root), ".venv", "windows")
		env := adapter.MapEnvironment{"Path": `C:\Windows`}

		activated := layout.ActivatedEnv(env)

		assert.Equal(t, string(layout.BinDir())+`;C:\Windows`, activated["Path"])
		assert.NotContains(t, activated, "PATH")
	})

	t.Run("empty PATH", func(t *testing.T) {
		layout := NewRuntimeLayout(m.Path(root), ".venv", "linux")

		activated := layout.ActivatedEnv(adapter.MapEnvironment{})

		assert.Equal(t, string(layout.BinDir()), activated["PATH"])
	})
}
