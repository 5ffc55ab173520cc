package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	DBConnError     = 3
	CopyError       = 4
	PublishError    = 5
	NotFound        = 6
	PolicyViolation = 7
)
