package utils

import (
	"runtime/debug"
	"testing"
)

func TestVersionFromBuildInfo(t *testing.T) {
	testCases := []struct {
		name      string
		buildInfo *debug.BuildInfo
		expected  string
	}{
		{name: "missing build info", buildInfo: nil, expected: "1.0"},
		{
			name:      "tagged module",
			buildInfo: &debug.BuildInfo{Main: debug.Module{Version: "v1.2.3"}},
			expected:  "v1.2.3",
		},
		{
			name: "development build with revision",
			buildInfo: &debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef0123"}},
			},
			expected: "1.0+0123456789ab",
		},
		{
			name:      "development build without revision",
			buildInfo: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			expected:  "1.0",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if result := versionFromBuildInfo(testCase.buildInfo); result != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, result)
			}
		})
	}
}
