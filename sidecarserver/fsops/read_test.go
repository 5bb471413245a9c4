package fsops

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	a, root := newTestAccessor(t)

	t.Run("text file", func(t *testing.T) {
		path := filepath.Join(root, "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("hello\nworld\n"), 0644))

		result, err := a.Read("notes.txt")
		require.NoError(t, err)
		assert.Equal(t, path, result.Path)
		assert.Equal(t, "notes.txt", result.RelativePath)
		assert.Equal(t, "hello\nworld\n", result.Content)
		assert.Equal(t, EncodingText, result.Encoding)
		assert.Equal(t, 2, result.LineCount)
		assert.Equal(t, int64(12), result.Size)
		assert.Equal(t, "text/plain", result.MimeType)
		assert.True(t, result.IsText)
	})

	t.Run("binary file round-trips through base64", func(t *testing.T) {
		content := []byte{0x00, 0x01, 0xff, 0xfe, 0x0a, 0x80}
		require.NoError(t, os.WriteFile(filepath.Join(root, "blob.bin"), content, 0644))

		result, err := a.Read("blob.bin")
		require.NoError(t, err)
		assert.Equal(t, EncodingBase64, result.Encoding)
		assert.False(t, result.IsText)
		assert.Equal(t, 0, result.LineCount)
		assert.Equal(t, "application/octet-stream", result.MimeType)

		decoded, err := base64.StdEncoding.DecodeString(result.Content)
		require.NoError(t, err)
		assert.Equal(t, content, decoded)
	})

	t.Run("allow-listed extension with invalid utf-8 still reads as text", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(root, "legacy.txt"), []byte{'h', 0xe9, 'l', 'l', 'o'}, 0644))

		result, err := a.Read("legacy.txt")
		require.NoError(t, err)
		assert.Equal(t, EncodingText, result.Encoding)
		assert.True(t, result.IsText)
		assert.True(t, utf8.ValidString(result.Content))
		assert.Equal(t, "héllo", result.Content)
		assert.Equal(t, 1, result.LineCount)
	})

	t.Run("source extension outside the mime tables reads as text", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(root, "main.zig"), []byte("const x = 1;\n"), 0644))

		result, err := a.Read("main.zig")
		require.NoError(t, err)
		assert.True(t, result.IsText)
		assert.Equal(t, EncodingText, result.Encoding)
		assert.Equal(t, 1, result.LineCount)
	})

	t.Run("unknown extension with text content is sniffed as text", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(root, "notes.unknownext"), []byte("readable text\n"), 0644))

		result, err := a.Read("notes.unknownext")
		require.NoError(t, err)
		assert.True(t, result.IsText)
		assert.Equal(t, "text/plain", result.MimeType)
	})

	t.Run("file over the size ceiling is rejected before reading", func(t *testing.T) {
		path := filepath.Join(root, "huge.txt")
		f, err := os.Create(path)
		require.NoError(t, err)
		// Sparse file: stat reports the size without allocating 10MB.
		require.NoError(t, f.Truncate(MaxReadSize+1))
		require.NoError(t, f.Close())

		_, err = a.Read("huge.txt")
		opErr := requireKind(t, err, KindTooLarge)
		assert.Equal(t, "FileTooLargeError", opErr.WireName())
	})

	t.Run("file exactly at the ceiling is allowed", func(t *testing.T) {
		path := filepath.Join(root, "edge.bin")
		f, err := os.Create(path)
		require.NoError(t, err)
		require.NoError(t, f.Truncate(MaxReadSize))
		require.NoError(t, f.Close())

		result, err := a.Read("edge.bin")
		require.NoError(t, err)
		assert.Equal(t, int64(MaxReadSize), result.Size)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := a.Read("ghost.txt")
		opErr := requireKind(t, err, KindNotFound)
		assert.Equal(t, "FileNotFoundError", opErr.WireName())
	})

	t.Run("path is a directory", func(t *testing.T) {
		require.NoError(t, os.Mkdir(filepath.Join(root, "dir"), 0755))
		_, err := a.Read("dir")
		opErr := requireKind(t, err, KindNotAFile)
		assert.Equal(t, "NotAFileError", opErr.WireName())
	})

	t.Run("path outside the root", func(t *testing.T) {
		_, err := a.Read("../../etc/passwd")
		requireKind(t, err, KindAccessDenied)
	})
}
