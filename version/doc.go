// Package version reports build metadata for the textkit binaries.
//
// Values come from -ldflags when the release build sets them:
//
//	-ldflags "-X github.com/dendrascience/dendra-textkit/version.Version=v1.0.0 -X github.com/dendrascience/dendra-textkit/version.Commit=abc1234"
//
// and otherwise from debug.ReadBuildInfo, falling back to development
// placeholders.
package version
