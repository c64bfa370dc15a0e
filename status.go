package rib

// Status is the outcome of a checked build.
type Status int

const (
	Success Status = iota
	BadFile
	ParseFailed
)

func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case BadFile:
		return "Bad file"
	case ParseFailed:
		return "Parse failed"
	}
	return "<unknown status>"
}
