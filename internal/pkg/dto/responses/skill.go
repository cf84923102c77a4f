package responses

type SkillResponse struct {
	Version  string        `json:"version"`
	Template SkillTemplate `json:"template"`
}

type SkillTemplate struct {
	Outputs      []SkillOutput `json:"outputs"`
	QuickReplies []QuickReply  `json:"quickReplies,omitempty"`
}

type SkillOutput struct {
	SimpleText *SimpleText `json:"simpleText,omitempty"`
}

type SimpleText struct {
	Text string `json:"text"`
}

type QuickReply struct {
	Label       string `json:"label"`
	Action      string `json:"action"`
	MessageText string `json:"messageText"`
}
