package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/config"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
)

func TestExtractFile_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	content := "We need 99.9% uptime and OTP login."
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := ExtractFile(path, "notes.txt")
	if err != nil {
		t.Fatalf("ExtractFile failed: %v", err)
	}
	if got != content {
		t.Errorf("got %q, want %q", got, content)
	}
}

func TestExtractFile_UnsupportedExtension(t *testing.T) {
	_, err := ExtractFile("whatever.exe", "whatever.exe")
	if !errors.Is(err, brdModel.ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestMeetingTranscript(t *testing.T) {
	transcript := MeetingTranscript("https://meet.example/rec/42")

	if !strings.Contains(transcript, "Transcript fetched from https://meet.example/rec/42") {
		t.Error("transcript missing the source url header")
	}
	if !strings.Contains(transcript, "99.9% uptime") {
		t.Error("transcript missing the uptime requirement line")
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", config.MaxContentLength+500)
	if got := Truncate(long); len(got) != config.MaxContentLength {
		t.Errorf("truncated length got %d, want %d", len(got), config.MaxContentLength)
	}

	short := "short content"
	if got := Truncate(short); got != short {
		t.Errorf("short content must pass through unchanged, got %q", got)
	}
}

func TestTruncate_NeverSplitsRune(t *testing.T) {
	// "€" is 3 bytes; the leading byte shifts every rune off the cap
	// boundary so a byte-count cut would land mid-character
	long := "a" + strings.Repeat("€", config.MaxContentLength/3)

	got := Truncate(long)
	if len(got) > config.MaxContentLength {
		t.Fatalf("truncated length got %d, want at most %d", len(got), config.MaxContentLength)
	}
	if !utf8.ValidString(got) {
		t.Error("truncated content is not valid utf-8")
	}
	if !strings.HasSuffix(got, "€") {
		t.Errorf("cut should back off to the previous rune start, tail is %q", got[len(got)-4:])
	}
}
