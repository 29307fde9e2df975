package discovery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/confmend/confmend/pkg/discovery"
	"github.com/confmend/confmend/pkg/filesystem"
	"github.com/confmend/confmend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestListPairs_FindsAllVariantKinds(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "httpd.conf"), "a")
	writeFile(t, filepath.Join(root, "httpd.conf.rpmnew"), "b")
	writeFile(t, filepath.Join(root, "sshd.conf"), "a")
	writeFile(t, filepath.Join(root, "sshd.conf.rpmsave"), "b")
	writeFile(t, filepath.Join(root, "ntp.conf"), "a")
	writeFile(t, filepath.Join(root, "ntp.conf.rpmorig"), "b")

	scanner := discovery.NewDirScanner(filesystem.NewOS(), []string{root})
	pairs, err := scanner.ListPairs(nil)
	require.NoError(t, err)
	require.Len(t, pairs, 3)

	byPkg := map[string]types.FileVariantPair{}
	for _, p := range pairs {
		byPkg[p.Package] = p
	}

	assert.Equal(t, types.PairRpmnew, byPkg["httpd"].Kind)
	assert.Equal(t, types.PairRpmsave, byPkg["sshd"].Kind)
	// .rpmorig behaves like .rpmsave: the variant is a preserved old file
	assert.Equal(t, types.PairRpmsave, byPkg["ntp"].Kind)
	assert.Equal(t, filepath.Join(root, "httpd.conf"), byPkg["httpd"].ConfFile)
	assert.Equal(t, filepath.Join(root, "httpd.conf.rpmnew"), byPkg["httpd"].OtherFile)
}

func TestListPairs_RecursesSubdirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "nested", "deep", "app.conf"), "a")
	writeFile(t, filepath.Join(root, "nested", "deep", "app.conf.rpmnew"), "b")

	scanner := discovery.NewDirScanner(filesystem.NewOS(), []string{root})
	pairs, err := scanner.ListPairs(nil)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "app", pairs[0].Package)
}

func TestListPairs_PackageFilter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "httpd.conf"), "a")
	writeFile(t, filepath.Join(root, "httpd.conf.rpmnew"), "b")
	writeFile(t, filepath.Join(root, "sshd.conf"), "a")
	writeFile(t, filepath.Join(root, "sshd.conf.rpmnew"), "b")

	scanner := discovery.NewDirScanner(filesystem.NewOS(), []string{root})
	pairs, err := scanner.ListPairs([]string{"sshd"})
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "sshd", pairs[0].Package)
}

func TestListPairs_IgnoresOrphanVariants(t *testing.T) {
	root := t.TempDir()
	// Variant without a base file: nothing to reconcile
	writeFile(t, filepath.Join(root, "gone.conf.rpmnew"), "b")

	scanner := discovery.NewDirScanner(filesystem.NewOS(), []string{root})
	pairs, err := scanner.ListPairs(nil)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestListPairs_BrokenSymlinkBaseStillPaired(t *testing.T) {
	root := t.TempDir()
	conf := filepath.Join(root, "app.conf")
	require.NoError(t, os.Symlink(filepath.Join(root, "missing-target"), conf))
	writeFile(t, conf+".rpmnew", "b")

	scanner := discovery.NewDirScanner(filesystem.NewOS(), []string{root})
	pairs, err := scanner.ListPairs(nil)
	require.NoError(t, err)
	require.Len(t, pairs, 1, "a broken symlink still occupies the config slot")
}

func TestListPairs_MissingRootFails(t *testing.T) {
	scanner := discovery.NewDirScanner(filesystem.NewOS(), []string{filepath.Join(t.TempDir(), "nope")})
	_, err := scanner.ListPairs(nil)
	assert.Error(t, err)
}
