package commands

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const (
	pathSegmentSeparator = "/"
	currentDirectoryName = "."
	parentDirectoryName  = ".."
	replacementCharacter = "\uFFFD"
)

// folderName returns the final named component of path. Empty and "." segments are
// skipped; a path ending in ".." or without any named component yields "".
func folderName(path string) string {
	withoutVolume := path[len(filepath.VolumeName(path)):]
	pathSegments := strings.Split(filepath.ToSlash(withoutVolume), pathSegmentSeparator)
	for segmentIndex := len(pathSegments) - 1; segmentIndex >= 0; segmentIndex-- {
		pathSegment := pathSegments[segmentIndex]
		if pathSegment == "" || pathSegment == currentDirectoryName {
			continue
		}
		if pathSegment == parentDirectoryName {
			return ""
		}
		return sanitizeName(pathSegment)
	}
	return ""
}

// sanitizeName replaces each maximal invalid UTF-8 subsequence of name with one U+FFFD.
func sanitizeName(name string) string {
	if utf8.ValidString(name) {
		return name
	}
	var builder strings.Builder
	builder.Grow(len(name))
	for len(name) > 0 {
		decodedRune, runeSize := utf8.DecodeRuneInString(name)
		if decodedRune != utf8.RuneError || runeSize > 1 {
			builder.WriteString(name[:runeSize])
			name = name[runeSize:]
			continue
		}
		builder.WriteString(replacementCharacter)
		name = name[invalidSequenceLength(name):]
	}
	return builder.String()
}

// invalidSequenceLength returns the length of the truncated sequence at the start of
// text: the lead byte plus the continuation bytes that were still well formed.
func invalidSequenceLength(text string) int {
	lowerBound, upperBound := byte(0x80), byte(0xBF)
	var continuationCount int
	switch leadByte := text[0]; {
	case leadByte >= 0xC2 && leadByte <= 0xDF:
		continuationCount = 1
	case leadByte == 0xE0:
		continuationCount, lowerBound = 2, 0xA0
	case leadByte == 0xED:
		continuationCount, upperBound = 2, 0x9F
	case leadByte >= 0xE1 && leadByte <= 0xEF:
		continuationCount = 2
	case leadByte == 0xF0:
		continuationCount, lowerBound = 3, 0x90
	case leadByte == 0xF4:
		continuationCount, upperBound = 3, 0x8F
	case leadByte >= 0xF1 && leadByte <= 0xF3:
		continuationCount = 3
	default:
		return 1
	}
	sequenceLength := 1
	for sequenceLength <= continuationCount && sequenceLength < len(text) {
		continuationByte := text[sequenceLength]
		if continuationByte < lowerBound || continuationByte > upperBound {
			break
		}
		lowerBound, upperBound = 0x80, 0xBF
		sequenceLength++
	}
	return sequenceLength
}

// joinEntryPath appends name to directoryPath without cleaning, so diagnostics keep
// the prefix the user typed.
func joinEntryPath(directoryPath string, name string) string {
	if directoryPath == "" {
		return name
	}
	if os.IsPathSeparator(directoryPath[len(directoryPath)-1]) {
		return directoryPath + name
	}
	return directoryPath + string(os.PathSeparator) + name
}
