package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces removed", "Jo Lee", "JoLee"},
		{"keeps underscore and hyphen", "Mary-Jane_O'Neil!", "Mary-Jane_ONeil"},
		{"path traversal", "../../etc/passwd", "etcpasswd"},
		{"accents folded", "José Ñúñez", "JoseNunez"},
		{"truncated", strings.Repeat("a", 40), strings.Repeat("a", 30)},
		{"only symbols", "!!! ???", "guest"},
		{"blank", "   ", "guest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.in))
		})
	}
}

func TestSanitizeNameTruncatesAfterStripping(t *testing.T) {
	in := strings.Repeat("a b", 20)
	got := SanitizeName(in)
	assert.Len(t, got, 30)
	assert.NotContains(t, got, " ")
}

func TestTimestampToken(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)
	ts := time.Date(2026, 10, 18, 16, 30, 5, 123_000_000, loc)

	assert.Equal(t, "2026-10-18T09:30:05.123Z", FormatTimestamp(ts))
	assert.Equal(t, "2026-10-18T09-30-05-123Z", TimestampToken(ts))
}

func TestFilenames(t *testing.T) {
	assert.Equal(t, "selfie_JoLee_2026-10-18T09-30-05-123Z.jpg", SelfieFilename("JoLee", "2026-10-18T09-30-05-123Z"))
	assert.Equal(t, "record_JoLee_2026-10-18T09-30-05-123Z.json", RecordFilename("JoLee", "2026-10-18T09-30-05-123Z"))
}

func TestRecordFilenameForSelfie(t *testing.T) {
	got, ok := RecordFilenameForSelfie("selfie_JoLee_2026-10-18T09-30-05-123Z.jpg")
	assert.True(t, ok)
	assert.Equal(t, "record_JoLee_2026-10-18T09-30-05-123Z.json", got)

	for _, name := range []string{"record_JoLee_x.json", "photo.jpg", "selfie_.jpg", "selfie_JoLee.png"} {
		_, ok := RecordFilenameForSelfie(name)
		assert.False(t, ok, name)
	}
}
