package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("  hello world \n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer

	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("lastline")), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(bufio.NewReader(strings.NewReader("")), "Name?", &out)
	assert.Error(t, err)
}

func TestGetTextDefault(t *testing.T) {
	var out bytes.Buffer
	got, err := GetTextDefault(bufio.NewReader(strings.NewReader("\n")), "Time", "09:00", &out)
	require.NoError(t, err)
	assert.Equal(t, "09:00", got)
	assert.Contains(t, out.String(), "Time [09:00]")
}

func TestGetInt_RepromptsUntilNumber(t *testing.T) {
	var out bytes.Buffer
	got, err := GetInt(bufio.NewReader(strings.NewReader("abc\n45\n")), "Duration", 60, &out)
	require.NoError(t, err)
	assert.Equal(t, 45, got)
	assert.Contains(t, out.String(), "Please enter a number")

	got, err = GetInt(bufio.NewReader(strings.NewReader("\n")), "Duration", 60, &out)
	require.NoError(t, err)
	assert.Equal(t, 60, got)
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	for in, want := range map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "maybe\n": false} {
		got, err := Confirm(bufio.NewReader(strings.NewReader(in)), "Sure?", &out)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestGetPassword(t *testing.T) {
	oldRead, oldTerm := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = oldRead, oldTerm })

	var out bytes.Buffer

	t.Run("terminal", func(t *testing.T) {
		isTerminal = func(int) bool { return true }
		readPassword = func(int) ([]byte, error) { return []byte("secret1"), nil }

		got, err := GetPassword(bufio.NewReader(strings.NewReader("")), &out)
		require.NoError(t, err)
		assert.Equal(t, "secret1", got)
	})

	t.Run("terminal error", func(t *testing.T) {
		isTerminal = func(int) bool { return true }
		readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }

		_, err := GetPassword(bufio.NewReader(strings.NewReader("")), &out)
		assert.Error(t, err)
	})

	t.Run("piped input", func(t *testing.T) {
		isTerminal = func(int) bool { return false }

		got, err := GetPassword(bufio.NewReader(strings.NewReader("piped\n")), &out)
		require.NoError(t, err)
		assert.Equal(t, "piped", got)
	})
}
