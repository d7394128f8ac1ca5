package blob_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btec_backend/internals/helpers/blob"
	"btec_backend/internals/helpers/testutil"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"report (v2)+final.pdf": "report (v2)+final.pdf",
		"a/b\\c.txt":            "a_b_c.txt",
		"تقرير.docx":            "_____.docx",
		"x;y&z?.zip":            "x_y_z_.zip",
		"":                      "file",
	}
	for in, want := range cases {
		assert.Equal(t, want, blob.SanitizeFilename(in), "input %q", in)
	}
}

func TestStoredName(t *testing.T) {
	at := time.Unix(1700000000, 123456789)
	assert.Equal(t, "1700000000123456789_my file.pdf", blob.StoredName(at, "my file.pdf"))
}

func TestLocalBlobService_SaveAndDelete(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	svc, err := blob.NewLocalBlobService(root)
	require.NoError(t, err)

	fh := testutil.FileHeader(t, "notes.txt", "text/plain", "hello")
	stored, err := svc.Save(context.Background(), fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored.PublicURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(stored.Name, "_notes.txt"))
	assert.Equal(t, "notes.txt", stored.OriginalName)
	assert.Equal(t, "text/plain", stored.ContentType)
	assert.EqualValues(t, 5, stored.Size)

	data, err := os.ReadFile(filepath.Join(root, stored.Name))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, svc.DeleteByPublicURL(context.Background(), stored.PublicURL))
	_, err = os.Stat(filepath.Join(root, stored.Name))
	assert.True(t, os.IsNotExist(err))

	// already gone
	assert.NoError(t, svc.DeleteByPublicURL(context.Background(), stored.PublicURL))
}

func TestLocalBlobService_DefaultContentType(t *testing.T) {
	svc, err := blob.NewLocalBlobService(t.TempDir())
	require.NoError(t, err)

	stored, err := svc.Save(context.Background(), testutil.FileHeader(t, "raw.bin", "", "x"))
	require.NoError(t, err)
	assert.Equal(t, blob.DefaultContentType, stored.ContentType)
}

func TestLocalBlobService_DeleteRefusesEscapes(t *testing.T) {
	svc, err := blob.NewLocalBlobService(t.TempDir())
	require.NoError(t, err)

	for _, u := range []string{"/etc/passwd", "/uploads/../secret", "/uploads/", "uploads/x"} {
		assert.Error(t, svc.DeleteByPublicURL(context.Background(), u), u)
	}
}
