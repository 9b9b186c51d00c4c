// Package logging provides structured logging for hexinspect.
//
// It wraps a package-global zap logger. Logging is silent unless a level is
// passed to Initialize (from the --log-level flag or the [log] section of the
// config file) or set in HEXINSPECT_LOG_LEVEL. Because the viewer owns the
// terminal, output goes to a file (hexinspect.log by default).
//
// Initialize logging at startup:
//
//	if err := logging.Initialize("debug", "/tmp/hexinspect.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Log with structured fields:
//
//	logging.Debug("Command applied",
//	    zap.Stringer("command", cmd),
//	    zap.Int64("cursor", cursor),
//	)
package logging
