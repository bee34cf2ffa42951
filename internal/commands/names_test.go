package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFolderName(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "filesystem root", path: "/", expected: ""},
		{name: "current directory", path: ".", expected: ""},
		{name: "current directory with slash", path: "./", expected: ""},
		{name: "parent directory", path: "..", expected: ""},
		{name: "trailing parent", path: "a/..", expected: ""},
		{name: "empty", path: "", expected: ""},
		{name: "relative single", path: "relative", expected: "relative"},
		{name: "nested", path: "foo/bar", expected: "bar"},
		{name: "trailing slash", path: "foo/bar/", expected: "bar"},
		{name: "trailing dot", path: "foo/.", expected: "foo"},
		{name: "absolute missing", path: "/no/such/path", expected: "path"},
		{name: "hidden", path: "project/.config", expected: ".config"},
		{name: "invalid utf8", path: "dir/bad\xffname", expected: "bad\uFFFDname"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if result := folderName(testCase.path); result != testCase.expected {
				t.Fatalf("folderName(%q) = %q, expected %q", testCase.path, result, testCase.expected)
			}
		})
	}
}

func TestSanitizeName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "valid", input: "main.go", expected: "main.go"},
		{name: "valid replacement character kept", input: "a\uFFFDb", expected: "a\uFFFDb"},
		{name: "one replacement per invalid byte", input: "a\xff\xfeb", expected: "a\uFFFD\uFFFDb"},
		{name: "truncated three byte sequence", input: "\xe2\x82z", expected: "\uFFFDz"},
		{name: "truncated four byte sequence at end", input: "x\xf0\x9f\x98", expected: "x\uFFFD"},
		{name: "surrogate encoding", input: "\xed\xa0\x80", expected: "\uFFFD\uFFFD\uFFFD"},
		{name: "overlong lead", input: "\xc0\xafz", expected: "\uFFFD\uFFFDz"},
		{name: "multibyte neighbours kept", input: "\u00e9\xff\u00e9", expected: "\u00e9\uFFFD\u00e9"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if result := sanitizeName(testCase.input); result != testCase.expected {
				t.Fatalf("sanitizeName(%q) = %q, expected %q", testCase.input, result, testCase.expected)
			}
		})
	}
}

func TestJoinEntryPath(t *testing.T) {
	separator := string(os.PathSeparator)
	testCases := []struct {
		name      string
		directory string
		entry     string
		expected  string
	}{
		{name: "plain directory", directory: "project", entry: "main.go", expected: "project" + separator + "main.go"},
		{name: "dot prefix kept", directory: "." + separator + "project", entry: "src", expected: "." + separator + "project" + separator + "src"},
		{name: "trailing separator", directory: "project" + separator, entry: "src", expected: "project" + separator + "src"},
		{name: "empty directory", directory: "", entry: "src", expected: "src"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := joinEntryPath(testCase.directory, testCase.entry)
			if result != testCase.expected {
				t.Fatalf("joinEntryPath(%q, %q) = %q, expected %q", testCase.directory, testCase.entry, result, testCase.expected)
			}
			if filepath.Clean(result) != filepath.Join(testCase.directory, testCase.entry) {
				t.Fatalf("joined path %q does not resolve to %q", result, filepath.Join(testCase.directory, testCase.entry))
			}
		})
	}
}
