package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pion/opencamera"
	"github.com/pion/opencamera/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOpensBackCamera(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-fake", "front,front,back", "-log-level", "disabled"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "opened VideoTest2 (VideoTest back, facing back)")
}

func TestRunExplicitCamera(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-fake", "front,front,back", "-camera", "1", "-log-level", "disabled"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "opened VideoTest1")
}

func TestRunMissingCamera(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-fake", "front,front,back", "-camera", "5", "-log-level", "disabled"}, &out)
	assert.ErrorIs(t, err, opencamera.ErrCameraNotFound)
	assert.Empty(t, out.String())
}

func TestRunLegacyLevel(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-fake", "back,front", "-camera", "1", "-level", "8", "-log-level", "disabled"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "opened VideoTest0")
}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-fake", "front,back", "-list", "-log-level", "disabled"}, &out)
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "INDEX")
	assert.Contains(t, s, "VideoTest0")
	assert.Contains(t, s, "back")
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("camera:\n  id: 0\n  fake: [external, back]\nlog:\n  level: disabled\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", path}, &out))
	assert.Contains(t, out.String(), "opened VideoTest0")

	// Flags take precedence over the file.
	out.Reset()
	require.NoError(t, run([]string{"-config", path, "-camera", "-1"}, &out))
	assert.Contains(t, out.String(), "opened VideoTest1")
}

func TestLoadConfigFlags(t *testing.T) {
	f, fs, err := parseFlags([]string{"-level", "4", "-fake", " front , ,back"})
	require.NoError(t, err)

	cfg, err := loadConfig(f, fs)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Level())
	assert.Equal(t, []string{"front", "back"}, cfg.Camera.Fake)
	assert.Equal(t, config.DefaultCameraID, cfg.CameraID())
}

func TestLoadConfigInvalidFacing(t *testing.T) {
	f, fs, err := parseFlags([]string{"-fake", "up"})
	require.NoError(t, err)

	_, err = loadConfig(f, fs)
	assert.Error(t, err)
}

func TestRunNonPositiveLevel(t *testing.T) {
	for _, level := range []string{"0", "-3"} {
		t.Run(level, func(t *testing.T) {
			var out bytes.Buffer
			err := run([]string{"-fake", "back,front", "-camera", "1", "-level", level, "-log-level", "disabled"}, &out)
			require.NoError(t, err)
			assert.Contains(t, out.String(), "opened VideoTest0")
		})
	}
}

func TestRunConfigFileLevelZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("camera:\n  id: 1\n  level: 0\n  fake: [back, front]\nlog:\n  level: disabled\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", path}, &out))
	assert.Contains(t, out.String(), "opened VideoTest0")
}

func TestLoadConfigDefaultLevel(t *testing.T) {
	f, fs, err := parseFlags(nil)
	require.NoError(t, err)

	cfg, err := loadConfig(f, fs)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLevel, cfg.Level())
}
