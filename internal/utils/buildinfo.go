// Package utils provides helper functions shared by the foldertree packages.
package utils

import (
	"runtime/debug"
)

const (
	fallbackVersion     = "1.0"
	develVersion        = "(devel)"
	revisionSettingKey  = "vcs.revision"
	shortRevisionLength = 12
)

// GetApplicationVersion returns the module version recorded at build time. Development
// builds report the fallback version suffixed with the VCS revision when one is known.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if !buildInfoAvailable {
		return fallbackVersion
	}
	return versionFromBuildInfo(buildInfo)
}

func versionFromBuildInfo(buildInfo *debug.BuildInfo) string {
	if buildInfo == nil {
		return fallbackVersion
	}
	if buildInfo.Main.Version != "" && buildInfo.Main.Version != develVersion {
		return buildInfo.Main.Version
	}
	for _, setting := range buildInfo.Settings {
		if setting.Key != revisionSettingKey || setting.Value == "" {
			continue
		}
		revision := setting.Value
		if len(revision) > shortRevisionLength {
			revision = revision[:shortRevisionLength]
		}
		return fallbackVersion + "+" + revision
	}
	return fallbackVersion
}
