package utils

import (
	"duty-service/internal/pkg/constvars"
	"duty-service/internal/pkg/dto/responses"
	"duty-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

// BuildSkillTemplate wraps text in the chatbot skill envelope. Version 1.0
// never carries quick replies.
func BuildSkillTemplate(text, version string, quickReplies []responses.QuickReply) responses.SkillResponse {
	if version != constvars.SkillVersionV1 {
		version = constvars.SkillVersionV2
	}

	template := responses.SkillTemplate{
		Outputs: []responses.SkillOutput{
			{SimpleText: &responses.SimpleText{Text: text}},
		},
	}
	if version == constvars.SkillVersionV2 && len(quickReplies) > 0 {
		template.QuickReplies = append([]responses.QuickReply(nil), quickReplies...)
	}

	return responses.SkillResponse{
		Version:  version,
		Template: template,
	}
}

func DefaultQuickReplies() []responses.QuickReply {
	labels := []string{
		constvars.SkillQuickReplyToday,
		constvars.SkillQuickReplyTomorrow,
		constvars.SkillQuickReplyThisWeek,
		constvars.SkillQuickReplyHelp,
	}
	quickReplies := make([]responses.QuickReply, 0, len(labels))
	for _, label := range labels {
		quickReplies = append(quickReplies, responses.QuickReply{
			Label:       label,
			Action:      constvars.SkillQuickReplyActionMessage,
			MessageText: label,
		})
	}
	return quickReplies
}

// BuildSkillResponse always answers 200; the chatbot platform has no
// application level error status.
func BuildSkillResponse(w http.ResponseWriter, response responses.SkillResponse) error {
	body, err := json.Marshal(response)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(constvars.StatusOK)
	_, err = w.Write(body)
	return err
}
