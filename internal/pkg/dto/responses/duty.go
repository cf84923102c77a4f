package responses

// DutyReply is the composed answer for one utterance.
type DutyReply struct {
	Text   string `json:"text"`
	Intent string `json:"intent"`
}
