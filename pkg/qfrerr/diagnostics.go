package qfrerr

import "go.uber.org/multierr"

// Diagnostics accumulates non-fatal notices (skipped `.define` blocks,
// skipped header commands, skipped `opaque` bodies) over the course of a
// single parse. The parse itself does not abort when a notice is recorded;
// callers inspect the aggregate after Parse returns.
type Diagnostics struct {
	notices error
}

// Notef records a non-fatal notice.
func (d *Diagnostics) Notef(kind Kind, format string, args ...any) {
	d.notices = multierr.Append(d.notices, Newf(kind, format, args...))
}

// Note records a non-fatal notice with a fixed message.
func (d *Diagnostics) Note(kind Kind, msg string) {
	d.notices = multierr.Append(d.notices, New(kind, msg))
}

// Err returns the aggregated notices, or nil if there were none.
func (d *Diagnostics) Err() error {
	return d.notices
}

// Errors returns the individual notices in the order recorded.
func (d *Diagnostics) Errors() []error {
	return multierr.Errors(d.notices)
}

// Empty reports whether no notices were recorded.
func (d *Diagnostics) Empty() bool {
	return d.notices == nil
}
