package domain

import "go.trai.ch/zerr"

var (
	// ErrBuildFailed is returned when the emission stage finished with the build error flag set.
	ErrBuildFailed = zerr.New("build failed")

	// ErrGenerationFailed is recorded when the code generator could not produce a bundle.
	ErrGenerationFailed = zerr.New("bundle generation failed")

	// ErrWriteFailed is returned when a bundle could not be written to its destination.
	ErrWriteFailed = zerr.New("failed to write bundle")

	// ErrMissingSource is returned when a component has no compiled source to bundle.
	ErrMissingSource = zerr.New("component source is empty")

	// ErrUnknownTargetType is returned when an output target has an unrecognised type.
	ErrUnknownTargetType = zerr.New("unknown output target type")

	// ErrInvalidConfig is returned when the configuration fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrDuplicateTagName is returned when two components declare the same tag name.
	ErrDuplicateTagName = zerr.New("duplicate component tag name")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrComponentReadFailed is returned when a component source or style file cannot be read.
	ErrComponentReadFailed = zerr.New("failed to read component file")

	// ErrStoreReadFailed is returned when the output manifest cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read output manifest")

	// ErrStoreUnmarshalFailed is returned when the output manifest cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal output manifest")

	// ErrStoreMarshalFailed is returned when the output manifest cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal output manifest")

	// ErrStoreWriteFailed is returned when the output manifest cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write output manifest")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrFailedToCleanOutput is returned when removing an emitted file fails.
	ErrFailedToCleanOutput = zerr.New("failed to clean output file")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to start file watcher")

	// ErrUnknownLogLevel is returned when a log level name is not recognised.
	ErrUnknownLogLevel = zerr.New("unknown log level")
)
