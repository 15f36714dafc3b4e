package constants

const (
	ExitCodeSuccessful                = 0
	ExitCodeSplitFailed               = 1
	ExitCodeInsufficientOrWrongInputs = 2
	ExitCodeUnknownErrorPanic         = -1
)
