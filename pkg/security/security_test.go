package security

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"), "hash should use cost 10")

	ok, err := CheckPassword(hash, "secret123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = CheckPassword("not-a-hash", "secret123")
	assert.Error(t, err)
}

func TestValidatePDF(t *testing.T) {
	t.Run("Should accept a PDF and replay its content", func(t *testing.T) {
		r, err := ValidatePDF("application/pdf", int64(len(samplePDF)), 5<<20, bytes.NewReader(samplePDF))
		require.NoError(t, err)

		got, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, samplePDF, got)
	})

	t.Run("Should reject a non-PDF content type", func(t *testing.T) {
		_, err := ValidatePDF("text/plain", 10, 5<<20, strings.NewReader("hello"))
		assert.ErrorIs(t, err, ErrFileTypeUnsupported)
	})

	t.Run("Should reject oversized files", func(t *testing.T) {
		_, err := ValidatePDF("application/pdf", 5<<20+1, 5<<20, bytes.NewReader(samplePDF))
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("Should reject spoofed content", func(t *testing.T) {
		body := []byte("just some text pretending to be a pdf")
		_, err := ValidatePDF("application/pdf", int64(len(body)), 5<<20, bytes.NewReader(body))
		assert.ErrorIs(t, err, ErrFileSpoofed)
	})

	t.Run("Should reject a missing file", func(t *testing.T) {
		_, err := ValidatePDF("application/pdf", 0, 5<<20, nil)
		assert.ErrorIs(t, err, ErrNoFile)
	})
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "resume.pdf", SanitizeFileName("../../etc/resume.pdf"))
	assert.Equal(t, "my_cv.pdf", SanitizeFileName("my cv.pdf"))
	assert.Equal(t, "cv.pdf", SanitizeFileName(".."))
	assert.Equal(t, "x.pdf", SanitizeFileName(`C:\Users\me\x.pdf`))
	assert.LessOrEqual(t, len(SanitizeFileName(strings.Repeat("a", 500)+".pdf")), 200)
}

func TestIsSafeStoredName(t *testing.T) {
	assert.True(t, IsSafeStoredName("0b7c-resume.pdf"))
	assert.False(t, IsSafeStoredName("../secret"))
	assert.False(t, IsSafeStoredName("a/b.pdf"))
	assert.False(t, IsSafeStoredName(""))
}

func TestSecurityLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLogger(zap.New(core), "screening", "test")

	ctx := WithRequestID(context.Background(), "req-1")
	sl.Log(ctx, SecurityEvent{
		Event:        EventLoginFailed,
		SubjectType:  "email",
		SubjectValue: MaskEmail("alice@example.com"),
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "login_failed", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "a***@example.com", fields["subject_value"])
	assert.Equal(t, "req-1", fields["request_id"])
}

func TestEventSeverity(t *testing.T) {
	assert.Equal(t, SeverityWARN, GetSeverity(EventLoginFailed))
	assert.Equal(t, SeverityHIGH, GetSeverity(EventUserDeleted))
	assert.Equal(t, SeverityMEDIUM, GetSeverity(EventType("unknown")))
	assert.True(t, IsHighOrAbove(EventUserDeleted))
	assert.False(t, IsHighOrAbove(EventLoginSuccess))

	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLogger(zap.New(core), "screening", "test")
	sl.Log(context.Background(), SecurityEvent{Event: EventUserDeleted, SubjectType: "user_id", SubjectValue: "u1"})

	require.Len(t, logs.All(), 1)
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "HIGH", entry.ContextMap()["severity"])
}
