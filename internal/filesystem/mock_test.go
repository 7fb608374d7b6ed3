package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func entryNames(entries []fs.DirEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestMockFileSystem_ReadDir(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddFile("/site/assets/b.jpg", []byte("b"))
	mfs.AddFile("/site/assets/a.jpg", []byte("a"))
	mfs.AddDir("/site/assets/sub")
	mfs.AddFile("/site/assets/sub/deep.jpg", nil)

	entries, err := mfs.ReadDir("/site/assets")
	require.NoError(t, err)
	require.Equal(t, []string{"a.jpg", "b.jpg", "sub"}, entryNames(entries))
	require.True(t, entries[2].IsDir())

	mfs.SetReverseListing(true)
	entries, err = mfs.ReadDir("/site/assets")
	require.NoError(t, err)
	require.Equal(t, []string{"sub", "b.jpg", "a.jpg"}, entryNames(entries))
}

func TestMockFileSystem_ReadDirMissing(t *testing.T) {
	mfs := NewMockFileSystem()

	_, err := mfs.ReadDir("/nope")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMockFileSystem_WriteFile(t *testing.T) {
	mfs := NewMockFileSystem()

	err := mfs.WriteFile("/missing/parent/file.json", []byte("{}"), 0644)
	require.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, mfs.MkdirAll("/missing/parent", 0755))
	require.True(t, mfs.IsDir("/missing"))
	require.NoError(t, mfs.WriteFile("/missing/parent/file.json", []byte("{}"), 0644))
	require.Equal(t, 1, mfs.WriteCount("/missing/parent/file.json"))

	data, err := mfs.ReadFile("/missing/parent/file.json")
	require.NoError(t, err)
	require.Equal(t, "{}", string(data))
}

func TestMockFileSystem_FailWrites(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddDir("/out")
	boom := errors.New("disk full")
	mfs.FailWrites("/out/index.json", boom)

	err := mfs.WriteFile("/out/index.json", []byte("[]"), 0644)
	require.ErrorIs(t, err, boom)
	require.False(t, mfs.Exists("/out/index.json"))
	require.Equal(t, 0, mfs.WriteCount("/out/index.json"))
}

func TestMockFileSystem_Abs(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.SetCurrentDir("/home/site")

	abs, err := mfs.Abs(".")
	require.NoError(t, err)
	require.Equal(t, "/home/site", abs)

	abs, err = mfs.Abs("/var/www/../www")
	require.NoError(t, err)
	require.Equal(t, "/var/www", abs)
}
