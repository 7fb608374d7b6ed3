package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jakoblorz/go-gallery-manifest/internal/filesystem"
	"github.com/jakoblorz/go-gallery-manifest/internal/manifest"
	"github.com/stretchr/testify/require"
)

type runOutput struct {
	stdout string
	stderr string
}

func runRoot(t *testing.T, fs filesystem.FileSystem, args ...string) (runOutput, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand(fs)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return runOutput{stdout: stdout.String(), stderr: stderr.String()}, err
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func readTree(t *testing.T, root string, names ...string) map[string]string {
	t.Helper()

	contents := make(map[string]string, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
		require.NoError(t, err, name)
		contents[name] = string(data)
	}
	return contents
}

func TestRoot_EndToEnd(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"assets/Homepage/img2.jpg":                    "",
		"assets/Homepage/img10.jpg":                   "",
		"assets/Homepage/img1.jpg":                    "",
		"assets/projects/Foo Bar/cover.jpg":           "",
		"assets/projects/Foo Bar/b.png":               "",
		"assets/projects/old-city_hall/2.jpg":         "",
		"assets/projects/old-city_hall/metadata.json": `{"title":"Ayuntamiento","area":null,"blurb":"","text":"Fachada ñ"}`,
		"assets/projects/vacío/readme.txt":            "",
	})

	generated := []string{
		"assets/Homepage/manifest.json",
		"assets/projects/manifest.json",
		"assets/projects/Foo Bar/index.json",
		"assets/projects/Foo Bar/metadata.json",
		"assets/projects/old-city_hall/index.json",
		"assets/projects/old-city_hall/metadata.json",
	}

	out, err := runRoot(t, filesystem.NewOSFileSystem(), "--webroot", root)
	require.NoError(t, err)
	require.Contains(t, out.stdout, "[i] Homepage manifest -> ")
	require.Contains(t, out.stdout, "(projects: 2)")
	require.Contains(t, out.stdout, "Done.")
	require.Contains(t, out.stderr, "[!]   (no images) -> vacío")

	first := readTree(t, root, generated...)
	require.Equal(t, "{\n  \"images\": [\n    \"img1.jpg\",\n    \"img2.jpg\",\n    \"img10.jpg\"\n  ]\n}\n", first["assets/Homepage/manifest.json"])
	require.Equal(t, "[\n  \"b.png\"\n]\n", first["assets/projects/Foo Bar/index.json"])
	require.Contains(t, first["assets/projects/manifest.json"], `"assets/projects/Foo Bar/cover.jpg"`)
	require.Contains(t, first["assets/projects/manifest.json"], `"text": "Fachada ñ"`)
	require.NoFileExists(t, filepath.Join(root, "assets/projects/vacío/index.json"))
	require.NoFileExists(t, filepath.Join(root, "assets/projects/vacío/metadata.json"))

	_, err = runRoot(t, filesystem.NewOSFileSystem(), "--webroot", root)
	require.NoError(t, err)
	require.Equal(t, first, readTree(t, root, generated...))
}

func TestRoot_MissingAssets(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"Homepage/a.jpg": ""})

	_, err := runRoot(t, filesystem.NewOSFileSystem(), "--webroot", root)
	require.ErrorIs(t, err, manifest.ErrAssetsNotFound)
	require.NoFileExists(t, filepath.Join(root, "Homepage/manifest.json"))
	require.NoDirExists(t, filepath.Join(root, "assets"))
}

func TestRoot_Force(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/site/assets/projects/old-city_hall/1.jpg", nil)
	mfs.AddFile("/site/assets/projects/old-city_hall/metadata.json", []byte(`{"title":"Custom"}`))

	_, err := runRoot(t, mfs, "--webroot", "/site", "--force")
	require.NoError(t, err)

	data, err := mfs.ReadFile("/site/assets/projects/old-city_hall/metadata.json")
	require.NoError(t, err)
	require.Equal(t, "{\n  \"title\": \"Old City Hall\",\n  \"area\": null,\n  \"blurb\": \"\",\n  \"text\": \"\"\n}\n", string(data))
}

func TestRoot_DefaultWebrootIsCurrentDirectory(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.SetCurrentDir("/site")
	mfs.AddFile("/site/assets/Homepage/a.jpg", nil)

	out, err := runRoot(t, mfs)
	require.NoError(t, err)
	require.True(t, mfs.Exists("/site/assets/Homepage/manifest.json"))
	require.Contains(t, out.stderr, "Projects directory not found")
}

func TestRoot_ConfigFile(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/site/gallery.yaml", []byte("projects_dir: obras\n"))
	mfs.AddFile("/site/assets/obras/casa/1.jpg", nil)

	_, err := runRoot(t, mfs, "--webroot", "/site")
	require.NoError(t, err)

	data, err := mfs.ReadFile("/site/assets/obras/manifest.json")
	require.NoError(t, err)
	require.Contains(t, string(data), `"assets/obras/casa/1.jpg"`)
}

func TestRoot_FlagsOverrideConfig(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/etc/gallery/custom.yaml", []byte("projects_dir: obras\n"))
	mfs.AddFile("/site/assets/trabajos/casa/1.jpg", nil)

	_, err := runRoot(t, mfs, "--webroot", "/site", "--config", "/etc/gallery/custom.yaml", "--projects-dir", "trabajos")
	require.NoError(t, err)
	require.True(t, mfs.Exists("/site/assets/trabajos/manifest.json"))
	require.False(t, mfs.Exists("/site/assets/obras/manifest.json"))
}

func TestRoot_InvalidConfig(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddDir("/site/assets")

	_, err := runRoot(t, mfs, "--webroot", "/site", "--config", "/nope.yaml")
	require.Error(t, err)

	_, err = runRoot(t, mfs, "--webroot", "/site", "--assets-dir", "../outside")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid configuration")
}

func TestRoot_RejectsArguments(t *testing.T) {
	_, err := runRoot(t, filesystem.NewMockFileSystem(), "extra")
	require.Error(t, err)
}

func TestRoot_Summary(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddFile("/site/assets/projects/casa/cover.jpg", nil)
	mfs.AddDir("/site/assets/projects/vacia")

	out, err := runRoot(t, mfs, "--webroot", "/site")
	require.NoError(t, err)
	require.Contains(t, out.stdout, "FOLDER")
	require.Contains(t, out.stdout, "skipped (no images)")
	require.Contains(t, out.stdout, "written (was absent)")

	out, err = runRoot(t, mfs, "--webroot", "/site", "--summary=false")
	require.NoError(t, err)
	require.NotContains(t, out.stdout, "FOLDER")
}
