package types

type ProfileID string

const (
	ProfileDefault      ProfileID = "default"
	ProfileMinimal      ProfileID = "minimal"
	ProfileStatic       ProfileID = "static"
	ProfileCrossWindows ProfileID = "cross-windows"
	ProfileRelease      ProfileID = "release"
)

type PlatformTag string

const (
	PlatformLinux  PlatformTag = "linux"
	PlatformDarwin PlatformTag = "darwin"
	PlatformOther  PlatformTag = "other"
)

type ScriptKind string

const (
	ScriptConfigure ScriptKind = "configure"
	ScriptBuild     ScriptKind = "build"
)

type AppName string

const (
	AppScanner   AppName = "scanner"
	AppConfigure AppName = "configure"
	AppBuild     AppName = "build"
)
