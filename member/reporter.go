package member

type (
	// Reporter receives non fatal inspector errors
	Reporter interface {
		Report(err error)
	}

	// ReporterFunc adapts a function to Reporter
	ReporterFunc func(err error)
)

// Report reports an error
func (f ReporterFunc) Report(err error) {
	f(err)
}

// Report reports err with nil safe reporter
func Report(reporter Reporter, err error) {
	if reporter == nil || err == nil {
		return
	}
	reporter.Report(err)
}
