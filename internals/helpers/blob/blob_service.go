// file: internals/helpers/blob/blob_service.go
package blob

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

/*
BlobService is the upload/delete facade used by the task document service.

- Save stores one multipart file under a generated, collision-resistant name
  and returns where it can be fetched from (PublicURL, e.g. /uploads/<name>).
- DeleteByPublicURL removes the file behind a PublicURL. A file that is
  already gone is not an error.
*/
type BlobService interface {
	Save(ctx context.Context, fh *multipart.FileHeader) (StoredFile, error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

type StoredFile struct {
	Name         string // generated name on disk
	OriginalName string
	PublicURL    string
	ContentType  string
	Size         int64
}

const (
	DefaultURLPrefix   = "/uploads/"
	DefaultContentType = "application/octet-stream"
)

// --------------------------------------------------
// Local disk implementation
// --------------------------------------------------

type LocalBlobService struct {
	root      string
	urlPrefix string
	now       func() time.Time
}

// NewLocalBlobService creates root if needed. Files are served back by the
// static handler mounted at DefaultURLPrefix.
func NewLocalBlobService(root string) (*LocalBlobService, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("blob: empty upload root")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("blob: create upload root: %w", err)
	}
	return &LocalBlobService{root: root, urlPrefix: DefaultURLPrefix, now: time.Now}, nil
}

func (b *LocalBlobService) Root() string { return b.root }

func (b *LocalBlobService) Save(ctx context.Context, fh *multipart.FileHeader) (StoredFile, error) {
	if fh == nil {
		return StoredFile{}, fiber.NewError(fiber.StatusBadRequest, "file is required")
	}
	if err := ctx.Err(); err != nil {
		return StoredFile{}, err
	}

	name := StoredName(b.now(), fh.Filename)
	if err := fasthttp.SaveMultipartFile(fh, filepath.Join(b.root, name)); err != nil {
		return StoredFile{}, fmt.Errorf("blob: save %q: %w", name, err)
	}

	ct := strings.TrimSpace(fh.Header.Get(fiber.HeaderContentType))
	if ct == "" {
		ct = DefaultContentType
	}
	orig := fh.Filename
	if orig == "" {
		orig = name
	}
	return StoredFile{
		Name:         name,
		OriginalName: orig,
		PublicURL:    b.urlPrefix + name,
		ContentType:  ct,
		Size:         fh.Size,
	}, nil
}

func (b *LocalBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	name, ok := b.nameFromURL(publicURL)
	if !ok {
		return fmt.Errorf("blob: %q is not under %s", publicURL, b.urlPrefix)
	}
	err := os.Remove(filepath.Join(b.root, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("blob: remove %q: %w", name, err)
	}
	return nil
}

// nameFromURL maps /uploads/<name> back to <name>. Anything that would
// escape the root is refused.
func (b *LocalBlobService) nameFromURL(publicURL string) (string, bool) {
	u := strings.TrimSpace(publicURL)
	if !strings.HasPrefix(u, b.urlPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(u, b.urlPrefix)
	if name == "" || name != path.Base(name) || name == "." || name == ".." {
		return "", false
	}
	return name, true
}

// --------------------------------------------------
// Naming
// --------------------------------------------------

var reUnsafeFileChars = regexp.MustCompile(`[^\w.\-()+\s]`)

// SanitizeFilename replaces every character outside word characters, dot,
// hyphen, parentheses, plus and whitespace with "_". Empty becomes "file".
func SanitizeFilename(name string) string {
	if name == "" {
		name = "file"
	}
	return reUnsafeFileChars.ReplaceAllString(name, "_")
}

// StoredName is "<unix nanos>_<sanitized original>".
func StoredName(at time.Time, original string) string {
	return strconv.FormatInt(at.UnixNano(), 10) + "_" + SanitizeFilename(original)
}
