package duty

import (
	"duty-service/internal/app/models"
	"duty-service/internal/pkg/constvars"
	"regexp"
	"strings"
)

var numberedNamePattern = regexp.MustCompile(constvars.RegexScheduleNumberedName)

// CompleteName repairs entries shaped "<id> <partial name>" using names.
// Entries without a leading numeric id, or with an id names does not know,
// are returned unchanged. Completing an already complete entry is a no-op.
func CompleteName(entry string, names models.NameCompletionMap) string {
	if len(names) == 0 {
		return entry
	}

	match := numberedNamePattern.FindStringSubmatch(strings.TrimSpace(entry))
	if match == nil {
		return entry
	}

	id := match[1]
	fullName := strings.TrimSpace(names[id])
	if fullName == "" {
		return entry
	}
	if strings.HasPrefix(fullName, id+" ") {
		return fullName
	}
	return id + " " + fullName
}
