package cli

import (
	"os"

	"github.com/Skpow1234/Shardvault/internal/audit"
	"github.com/Skpow1234/Shardvault/internal/config"
)

// auditLogger resolves the audit destination from the --audit-log flag,
// the SHARDVAULT_AUDIT_LOG environment variable, or the config file, in
// that order. Returns a NopLogger when auditing is disabled or the file
// cannot be opened: a broken audit sink must not block the operation.
func auditLogger(p *Printer) audit.Logger {
	path := flagAuditLog
	if path == "" {
		path = os.Getenv("SHARDVAULT_AUDIT_LOG")
	}
	if path == "" {
		if cfg := config.Get(); cfg != nil {
			path = cfg.AuditLog
		}
	}
	if path == "" {
		return audit.NopLogger{}
	}
	logger, err := audit.NewFileLogger(path)
	if err != nil {
		p.Error(err, "audit log unavailable, continuing without it")
		return audit.NopLogger{}
	}
	return logger
}
