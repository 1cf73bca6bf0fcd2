package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-labs/notedump/internal/core/domain"
)

func TestFileSink_WritesPageContent(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSink(dir)
	require.NoError(t, err)

	page := &domain.Page{ID: "p1", Title: "Meeting notes"}
	require.NoError(t, sink.Write(page, []byte("<html>body</html>")))
	require.NoError(t, sink.Done())

	data, err := os.ReadFile(filepath.Join(dir, "Meeting notes.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html>body</html>", string(data))
}

func TestFileSink_DuplicateTitlesGetSuffix(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSink(dir)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, sink.Write(&domain.Page{Title: "Notes"}, []byte("x")))
	}

	assert.FileExists(t, filepath.Join(dir, "Notes.html"))
	assert.FileExists(t, filepath.Join(dir, "Notes (2).html"))
	assert.FileExists(t, filepath.Join(dir, "Notes (3).html"))
}

func TestFileSink_SanitizesUnsafeCharacters(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSink(dir)
	require.NoError(t, err)

	require.NoError(t, sink.Write(&domain.Page{Title: `a/b\c:d?e`}, []byte("x")))
	assert.FileExists(t, filepath.Join(dir, "a_b_c_d_e.html"))
}

func TestFileSink_EmptyTitleFallsBackToUntitled(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSink(dir)
	require.NoError(t, err)

	require.NoError(t, sink.Write(&domain.Page{Title: ""}, []byte("x")))
	require.NoError(t, sink.Write(&domain.Page{Title: "   "}, []byte("x")))

	assert.FileExists(t, filepath.Join(dir, "Untitled.html"))
	assert.FileExists(t, filepath.Join(dir, "Untitled (2).html"))
}

func TestFileSink_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	sink, err := NewFileSink(dir)
	require.NoError(t, err)
	require.NoError(t, sink.Write(&domain.Page{Title: "p"}, []byte("x")))
	assert.DirExists(t, dir)
}

func TestFileSink_DefaultDirectory(t *testing.T) {
	t.Chdir(t.TempDir())

	sink, err := NewFileSink("")
	require.NoError(t, err)
	assert.Equal(t, "output", sink.Dir())
	assert.DirExists(t, "output")
}
