package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modemboard-go/board"
	"modemboard-go/errcode"
)

// withEnv overrides the environment lookup for one test.
func withEnv(t *testing.T, env map[string]string) {
	t.Helper()
	old := LookupEnv
	LookupEnv = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	t.Cleanup(func() { LookupEnv = old })
}

func skipIfTagged(t *testing.T) {
	t.Helper()
	if len(board.Tagged()) != 0 {
		t.Skip("built with a board tag")
	}
}

func TestLoad_FileOnDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: LILYGO_T_A7670\nallowIncompatible: true\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "LILYGO_T_A7670", cfg.Board)
	assert.True(t, cfg.AllowIncompatible)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoad_ReadErrorAndBadYAML(t *testing.T) {
	old := ReadFile
	t.Cleanup(func() { ReadFile = old })

	ReadFile = func(string) ([]byte, error) { return nil, fs.ErrPermission }
	_, err := Load("board.yaml")
	require.Error(t, err)
	assert.Equal(t, errcode.InvalidConfig, errcode.Of(err))
	assert.True(t, errors.Is(err, fs.ErrPermission))

	ReadFile = func(string) ([]byte, error) { return []byte("bord: t-a7670\n"), nil }
	_, err = Load("board.yaml")
	assert.Equal(t, errcode.InvalidConfig, errcode.Of(err), "unknown keys must be rejected")
}

func TestMarshalParse(t *testing.T) {
	b, err := Marshal(Config{Board: "t-sim7670g-s3"})
	require.NoError(t, err)
	assert.Equal(t, "board: t-sim7670g-s3\n", string(b))

	cfg, err := Parse([]byte(`{"board":"sim7000g"}`))
	require.NoError(t, err)
	assert.Equal(t, "sim7000g", cfg.Board)
}

func TestSelection_SingleSource(t *testing.T) {
	skipIfTagged(t)
	withEnv(t, nil)

	s, err := NewSelection(Config{Board: "lilygo_t_eth_elite_a7670x"}, "")
	require.NoError(t, err)
	p, err := s.Resolve()
	require.NoError(t, err)
	assert.Equal(t, board.TETHEliteA7670X, p.ID)
}

func TestSelection_SourcesThatAgree(t *testing.T) {
	skipIfTagged(t)
	withEnv(t, map[string]string{EnvBoard: "LILYGO_T_A7670"})

	s, err := NewSelection(Config{Board: "t-a7670"}, "t-a7670")
	require.NoError(t, err)
	assert.Len(t, s.Candidates, 3)
	assert.Equal(t, []board.ID{board.TA7670}, s.IDs())

	p, err := s.Resolve()
	require.NoError(t, err)
	assert.Equal(t, board.TA7670, p.ID)
}

func TestSelection_NothingSelected(t *testing.T) {
	skipIfTagged(t)
	withEnv(t, map[string]string{EnvBoard: "  "})

	s, err := NewSelection(Config{}, "")
	require.NoError(t, err)
	_, err = s.Resolve()
	require.Error(t, err)
	assert.Equal(t, errcode.UnresolvedBoard, errcode.Of(err))
	assert.Contains(t, err.Error(), EnvBoard)
	assert.Contains(t, err.Error(), board.JoinIDs(board.Supported()))
}

func TestSelection_Conflict(t *testing.T) {
	skipIfTagged(t)
	withEnv(t, map[string]string{EnvBoard: "sim7000g"})

	s, err := NewSelection(Config{Board: "t-a7670"}, "")
	require.NoError(t, err)
	_, err = s.Resolve()
	require.Error(t, err)
	assert.Equal(t, errcode.UnresolvedBoard, errcode.Of(err))
	assert.Contains(t, err.Error(), "t-a7670 (config file)")
	assert.Contains(t, err.Error(), "sim7000g ($MODEMBOARD_BOARD)")
}

func TestSelection_UnknownBoard(t *testing.T) {
	withEnv(t, nil)
	_, err := NewSelection(Config{}, "t-watch-s3")
	require.Error(t, err)
	assert.Equal(t, errcode.InvalidConfig, errcode.Of(err))
	assert.Contains(t, err.Error(), "-board flag")
}

func TestSelection_Incompatible(t *testing.T) {
	skipIfTagged(t)
	withEnv(t, nil)

	s, err := NewSelection(Config{Board: "LILYGO_T_CALL_A7670_V1_1"}, "")
	require.NoError(t, err)
	_, err = s.Resolve()
	assert.Equal(t, errcode.IncompatibleBoard, errcode.Of(err))

	s.AllowIncompatible = true
	p, err := s.Resolve()
	require.NoError(t, err)
	assert.Equal(t, board.TCallA7670V11, p.ID)
	assert.False(t, p.Supported())
}
