package intake

import "github.com/goliatone/go-news-intake/internal/runtimeconfig"

var (
	ErrRootRequired           = runtimeconfig.ErrRootRequired
	ErrIntakeDirRequired      = runtimeconfig.ErrIntakeDirRequired
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
	ErrIndexCommandEmptyArg   = runtimeconfig.ErrIndexCommandEmptyArg
	ErrWatchScheduleRequired  = runtimeconfig.ErrWatchScheduleRequired
)

type (
	Config        = runtimeconfig.Config
	PathsConfig   = runtimeconfig.PathsConfig
	IndexConfig   = runtimeconfig.IndexConfig
	VCSConfig     = runtimeconfig.VCSConfig
	WatchConfig   = runtimeconfig.WatchConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
