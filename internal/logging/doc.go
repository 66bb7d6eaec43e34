// Package logging builds the slog loggers used by hwprofile.
//
// Text output goes through [Handler], which writes one line per record and
// colors it on terminals. JSON output uses the standard [slog.JSONHandler].
// [NewMultiHandler] fans records out to both, as the CLI does for
// --log-file. Keys that name device identifiers or dialed numbers are
// masked by the text handler.
//
// Verbosity flags map to levels with [LevelFromVerbosity]; -vvv enables
// [LevelTrace], which the sensors use for every sample:
//
//	logger := logging.New(logging.Config{Level: logging.LevelFromVerbosity(2)})
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("resolved device", "kind", "phone")
//
// Tests route output through the test log with [ForTest].
package logging
