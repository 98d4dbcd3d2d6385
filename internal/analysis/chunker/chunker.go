package chunker

import (
	"unicode/utf8"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
)

// Chunk splits text into fixed-size windows that overlap by `overlap` bytes.
// The window starts at offset 0 and advances by size-overlap, so the trailing
// chunk may be shorter than size. Window edges back off to the nearest rune
// start so a multi-byte character is never split across chunks. Empty text
// yields no chunks. Pure function - callers rely on it being deterministic
// and restartable.
func Chunk(text string, size int, overlap int) []brdModel.Chunk {
	if text == "" || size <= 0 || overlap < 0 || overlap >= size {
		return nil
	}

	var chunks []brdModel.Chunk
	step := size - overlap
	for offset := 0; offset < len(text); offset += step {
		start := offset
		for start > 0 && !utf8.RuneStart(text[start]) {
			start--
		}
		end := offset + size
		if end >= len(text) {
			end = len(text)
		} else {
			for end > start && !utf8.RuneStart(text[end]) {
				end--
			}
		}
		chunks = append(chunks, brdModel.Chunk{
			Text:   text[start:end],
			Offset: start,
		})
	}
	return chunks
}
