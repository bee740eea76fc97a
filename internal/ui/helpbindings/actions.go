package helpbindings

// Close asks the host to hide the help popup.
type Close struct{}

func (Close) ActionType() string { return "helpbindings.close" }
