package zipvfs

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFileSystem(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("index.html")
	require.NoError(t, err)
	_, err = w.Write([]byte("<h1>alldocs</h1>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	fs, err := BuildFileSystem(context.Background(), &buf)
	require.NoError(t, err)

	f, err := fs.Open("/index.html")
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "<h1>alldocs</h1>", string(data))

	_, err = fs.Open("/missing.html")
	assert.Error(t, err)
}

func TestBuildFileSystemInvalid(t *testing.T) {
	_, err := BuildFileSystem(context.Background(), bytes.NewBufferString("no zip"))
	assert.Error(t, err)
}
