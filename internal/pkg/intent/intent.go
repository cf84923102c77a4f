// Package intent extracts the date a chatbot user is asking about from a
// free-form utterance.
package intent

import "time"

type Kind int

const (
	KindUnresolved Kind = iota
	KindDate
	KindWeek
	KindHelp
	// KindInvalid is a date-looking token that is not a real calendar date.
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindWeek:
		return "week"
	case KindHelp:
		return "help"
	case KindInvalid:
		return "invalid"
	default:
		return "unresolved"
	}
}

// Intent is the parser result. Date is set for KindDate, and for KindWeek it
// is a day inside the requested week. Err is set for KindInvalid.
type Intent struct {
	Kind Kind
	Date time.Time
	Err  error
}

func Date(date time.Time) Intent {
	return Intent{Kind: KindDate, Date: date}
}

func Week(date time.Time) Intent {
	return Intent{Kind: KindWeek, Date: date}
}

func Help() Intent {
	return Intent{Kind: KindHelp}
}

func Unresolved() Intent {
	return Intent{Kind: KindUnresolved}
}

func Invalid(err error) Intent {
	return Intent{Kind: KindInvalid, Err: err}
}
