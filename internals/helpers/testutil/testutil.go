package testutil

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	database "btec_backend/internals/databases"
	helper "btec_backend/internals/helpers"
)

// DB opens a private in-memory SQLite database with the full schema.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := database.OpenSQLite(dsn, nil)
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("test db handle: %v", err)
	}
	// one connection keeps the in-memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	tb.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// StepClock replaces helper.NowFunc with a clock that advances one second per
// call, so createdAt values are strictly increasing. Restored on cleanup.
func StepClock(tb testing.TB) {
	tb.Helper()
	base := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	var n int64
	helper.NowFunc = func() time.Time {
		return base.Add(time.Duration(atomic.AddInt64(&n, 1)) * time.Second)
	}
	tb.Cleanup(func() { helper.NowFunc = time.Now })
}

// FileHeader builds a *multipart.FileHeader the way a multipart request would.
func FileHeader(tb testing.TB, filename, contentType, content string) *multipart.FileHeader {
	tb.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	if err != nil {
		tb.Fatalf("create part: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		tb.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		tb.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		tb.Fatalf("read form: %v", err)
	}
	tb.Cleanup(func() { _ = form.RemoveAll() })

	fhs := form.File["file"]
	if len(fhs) != 1 {
		tb.Fatalf("expected one file part, got %d", len(fhs))
	}
	return fhs[0]
}

// MultipartBody encodes fields plus an optional single "file" part.
// It returns the body and its Content-Type header.
func MultipartBody(tb testing.TB, fields map[string]string, filename, content string) (*bytes.Buffer, string) {
	tb.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			tb.Fatalf("write field %s: %v", k, err)
		}
	}
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		if err != nil {
			tb.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte(content)); err != nil {
			tb.Fatalf("write file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		tb.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

// JSONBody is a small convenience for request bodies in HTTP tests.
func JSONBody(s string) *strings.Reader { return strings.NewReader(s) }
