package requests

// SkillPayload is the part of the chatbot skill request the service reads.
// The controller extracts the utterance leniently, so this type is only used
// to build well-formed payloads.
type SkillPayload struct {
	UserRequest SkillUserRequest `json:"userRequest"`
}

type SkillUserRequest struct {
	Utterance string `json:"utterance"`
}
