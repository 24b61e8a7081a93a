package security

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gabriel-vasile/mimetype"
)

const (
	pdfMIME = "application/pdf"

	// sniffLen matches mimetype's default read limit.
	sniffLen = 3072

	maxFileNameSize = 200
)

var (
	ErrNoFile              = errors.New("no file provided")
	ErrFileTooLarge        = errors.New("file too large")
	ErrFileTypeUnsupported = errors.New("only PDF files are accepted")
	ErrFileSpoofed         = errors.New("file content is not a PDF")
)

// ValidatePDF checks the declared content type and size of an upload, then
// sniffs its first bytes. On success it returns a reader that replays the
// sniffed bytes followed by the rest of r.
func ValidatePDF(declaredType string, size, maxSize int64, r io.Reader) (io.Reader, error) {
	if r == nil {
		return nil, ErrNoFile
	}

	// Check headers first which is easy to spoof, but faster for legit clients
	mediaType, _, err := mime.ParseMediaType(declaredType)
	if err != nil || mediaType != pdfMIME {
		return nil, ErrFileTypeUnsupported
	}

	if size <= 0 {
		return nil, ErrNoFile
	}
	if size > maxSize {
		return nil, ErrFileTooLarge
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	head = head[:n]

	if !mimetype.Detect(head).Is(pdfMIME) {
		return nil, ErrFileSpoofed
	}

	return io.MultiReader(bytes.NewReader(head), r), nil
}

// SanitizeFileName strips directories and control characters from a client
// supplied file name and bounds its length.
func SanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == '/' || r == '\\' {
			return -1
		}
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, name)

	if name == "" || name == "." || name == ".." {
		return "cv.pdf"
	}
	if len(name) > maxFileNameSize {
		ext := filepath.Ext(name)
		if len(ext) > 10 {
			ext = ""
		}
		name = strings.ToValidUTF8(name[:maxFileNameSize-len(ext)], "") + ext
	}
	return name
}

// IsSafeStoredName reports whether name can be used as a storage key without
// escaping the storage directory.
func IsSafeStoredName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return false
	}
	return filepath.Base(name) == name
}
