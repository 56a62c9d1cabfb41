// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// notAvailable replaces build metadata the linker did not inject.
const notAvailable = "N/A"

// AppBuildInfo is the build metadata injected with -ldflags "-X main.build...".
type AppBuildInfo struct {
	Version string `json:"build_version"`
	Date    string `json:"build_date"`
	Commit  string `json:"build_commit"`
}

// NewAppBuildInfo builds [AppBuildInfo], reporting empty values as "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// Known reports whether the linker injected a build version.
func (a AppBuildInfo) Known() bool {
	return a.Version != "" && a.Version != notAvailable
}

// String renders the build metadata as a single line.
func (a AppBuildInfo) String() string {
	return "version=" + a.Version + " date=" + a.Date + " commit=" + a.Commit
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// AppInfo is returned by /api/version.
type AppInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	AppBuildInfo
}
