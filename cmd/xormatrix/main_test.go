package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saylorsolutions/xormatrix/pkg/matrix"
	"github.com/saylorsolutions/xormatrix/pkg/xor"
)

func TestRun_EncryptDecrypt(t *testing.T) {
	var (
		dir    = t.TempDir()
		plain  = filepath.Join(dir, "plain.txt")
		key    = filepath.Join(dir, "key.txt")
		cipher = filepath.Join(dir, "cipher.bin")
		result = filepath.Join(dir, "result.txt")
		out    strings.Builder
	)
	require.NoError(t, os.WriteFile(plain, []byte("ABCD"), 0600))
	require.NoError(t, os.WriteFile(key, []byte("2\n5 3\n9 1\n"), 0600))

	require.NoError(t, run(&out, "encrypt", []string{plain, key, cipher}))
	assert.Contains(t, out.String(), "ENCRYPT:SUCCESS\n")
	data, err := os.ReadFile(cipher)
	require.NoError(t, err)
	assert.Equal(t, []byte{68, 65, 74, 69}, data)

	require.NoError(t, run(&out, "decrypt", []string{cipher, key, result}))
	assert.Contains(t, out.String(), "DECRYPT:SUCCESS\n")

	out.Reset()
	require.NoError(t, run(&out, "verify", []string{plain, result}))
	assert.Contains(t, out.String(), "VERIFY:SUCCESS\n")
}

func TestRun_Neg(t *testing.T) {
	var out strings.Builder
	assert.ErrorIs(t, run(&out, "frobnicate", nil), errUnknownCommand)
	assert.ErrorIs(t, run(&out, "encrypt", []string{"a", "b"}), errUsage)
	assert.Error(t, run(&out, "encrypt", []string{"--nope", "a", "b", "c"}))
	assert.NoError(t, run(&out, "encrypt", []string{"-h"}))
	assert.Contains(t, out.String(), "USAGE:  xormatrix encrypt IN KEY OUT")

	dir := t.TempDir()
	err := run(&out, "decrypt", []string{filepath.Join(dir, "missing.bin"), filepath.Join(dir, "missing.key"), filepath.Join(dir, "out.txt")})
	assert.Error(t, err)
}

func TestRun_SubcommandUsage(t *testing.T) {
	tests := map[string]struct {
		args  []string
		usage string
	}{
		"decrypt": {nil, "USAGE:  xormatrix decrypt IN KEY OUT"},
		"verify":  {[]string{"a"}, "USAGE:  xormatrix verify A B"},
		"run":     {nil, "USAGE:  xormatrix run SCRIPT"},
		"genkey":  {nil, "USAGE:  xormatrix genkey OUT"},
		"show":    {[]string{"a", "b"}, "USAGE:  xormatrix show KEY"},
	}
	for cmd, tc := range tests {
		t.Run(cmd, func(t *testing.T) {
			var out strings.Builder
			err := run(&out, cmd, tc.args)
			assert.ErrorIs(t, err, errUsage)
			assert.Contains(t, err.Error(), cmd+" expects")
			assert.Contains(t, out.String(), tc.usage)
		})
	}
}

func TestRun_Genkey(t *testing.T) {
	var (
		dir     = t.TempDir()
		textKey = filepath.Join(dir, "key.txt")
		binKey  = filepath.Join(dir, "key.bin")
		derived = filepath.Join(dir, "derived.txt")
		again   = filepath.Join(dir, "again.txt")
		out     strings.Builder
	)
	require.NoError(t, run(&out, "genkey", []string{"-s", "3", textKey}))
	m, err := matrix.LoadFile(textKey)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Size())

	require.NoError(t, run(&out, "genkey", []string{"--binary", "--size", "8", binKey}))
	m, err = matrix.LoadFile(binKey)
	require.NoError(t, err)
	assert.Equal(t, 8, m.Size())

	require.NoError(t, run(&out, "genkey", []string{"-p", "passphrase", "--salt", "abcd", derived}))
	require.NoError(t, run(&out, "genkey", []string{"-p", "passphrase", "--salt", "ABCD", again}))
	a, err := matrix.LoadFile(derived)
	require.NoError(t, err)
	b, err := matrix.LoadFile(again)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	assert.Error(t, run(&out, "genkey", []string{"-s", "9", filepath.Join(dir, "bad.txt")}))
	assert.Error(t, run(&out, "genkey", []string{"-p", "pass", "--salt", "xyz", filepath.Join(dir, "bad.txt")}))
	assert.ErrorIs(t, run(&out, "genkey", []string{"--salt", "abcd", filepath.Join(dir, "bad.txt")}), errUsage)
}

func TestRun_Show(t *testing.T) {
	var (
		dir = t.TempDir()
		key = filepath.Join(dir, "key.txt")
		out strings.Builder
	)
	require.NoError(t, matrix.MustNew(2, 5, 3, 9, 1).SaveFile(key, false))
	require.NoError(t, run(&out, "show", []string{key}))
	assert.Equal(t, key+":\n  5   3 \n  9   1 \n", out.String())
}

func TestRun_Script(t *testing.T) {
	var (
		dir    = t.TempDir()
		plain  = filepath.Join(dir, "plain.txt")
		key    = filepath.Join(dir, "key.txt")
		cipher = filepath.Join(dir, "cipher.bin")
		tests  = filepath.Join(dir, "tests.txt")
		out    strings.Builder
	)
	require.NoError(t, os.WriteFile(plain, []byte("Some plain text\n"), 0600))
	require.NoError(t, matrix.MustNew(3, 1, 2, 3, 4, 5, 6, 7, 8, 9).SaveFile(key, false))
	require.NoError(t, os.WriteFile(tests, []byte(strings.Join([]string{
		"# comment",
		"ENCRYPT " + plain + " " + key + " " + cipher,
		"VERIFY " + plain + " " + cipher,
	}, "\n")), 0600))

	require.NoError(t, run(&out, "run", []string{tests}))
	assert.Error(t, run(&out, "run", []string{"--strict", tests}))

	data, err := os.ReadFile(cipher)
	require.NoError(t, err)
	assert.Equal(t, xor.XOR([]byte("Some plain text\n"), matrix.MustNew(3, 1, 2, 3, 4, 5, 6, 7, 8, 9)), data)
}
