package ai

import (
	"regexp"
	"strings"
)

var chunkBoundaryPattern = regexp.MustCompile(`(?im)^\s*(Chapter|Unit|Module)\s+\d+`)

// Chunk splits raw text into bounded-size pieces, preferring logical
// chapter/unit boundaries and falling back to fixed word windows. Input is
// truncated to maxChars before any other processing.
func Chunk(text string, maxChunkWords, maxChars int) []string {
	if maxChars > 0 && len(text) > maxChars {
		text = text[:maxChars]
	}

	matches := chunkBoundaryPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return chunkByWords(text, maxChunkWords)
	}

	var chunks []string
	for i, m := range matches {
		start := m[0]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		segment := strings.TrimSpace(text[start:end])
		if segment == "" {
			continue
		}
		chunks = append(chunks, chunkByWords(segment, maxChunkWords)...)
	}
	return chunks
}

func chunkByWords(text string, maxChunkWords int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxChunkWords <= 0 || len(words) <= maxChunkWords {
		return []string{strings.Join(words, " ")}
	}

	var chunks []string
	for i := 0; i < len(words); i += maxChunkWords {
		end := i + maxChunkWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

// MergeChunks greedily recombines adjacent chunks until adding the next one
// would exceed ceiling words. Document order is preserved; this only reduces
// the number of downstream generation calls.
func MergeChunks(chunks []string, ceiling int) []string {
	if len(chunks) == 0 {
		return chunks
	}
	if ceiling <= 0 {
		ceiling = 3000
	}

	var merged []string
	var current strings.Builder
	currentWords := 0

	for _, chunk := range chunks {
		words := len(strings.Fields(chunk))
		if currentWords+words > ceiling && current.Len() > 0 {
			merged = append(merged, strings.TrimSpace(current.String()))
			current.Reset()
			currentWords = 0
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(chunk)
		currentWords += words
	}
	if current.Len() > 0 {
		merged = append(merged, strings.TrimSpace(current.String()))
	}
	return merged
}
