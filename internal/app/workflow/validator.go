package workflow

import (
	"strings"

	"postdesk/internal/core/domain"
	"postdesk/pkg/usermsg"
)

// Violation identifies one publish-readiness rule a content unit fails.
// Its value doubles as the message key in the translation catalog.
type Violation string

const (
	ViolationMissingArtwork       Violation = usermsg.MsgMissingArtwork
	ViolationMissingCopyOut       Violation = usermsg.MsgMissingCopyOut
	ViolationMissingScheduledDate Violation = usermsg.MsgMissingScheduledDate
	ViolationMissingPlatform      Violation = usermsg.MsgMissingPlatform
)

// Validate evaluates whether a content unit plus its working metadata
// form satisfy the publish-readiness rules. Rules are independent: every
// violation is collected, nothing short-circuits. Pure function; safe to
// call any number of times with the same inputs.
func Validate(unit domain.ContentUnit, form domain.MetadataForm, siblings []domain.Task) []Violation {
	var violations []Violation

	if !unit.HasArtwork() && !siblingHasDesignDeliverable(siblings) {
		violations = append(violations, ViolationMissingArtwork)
	}
	if strings.TrimSpace(form.CopyOut) == "" {
		violations = append(violations, ViolationMissingCopyOut)
	}
	if strings.TrimSpace(form.ScheduledDate) == "" {
		violations = append(violations, ViolationMissingScheduledDate)
	}
	if strings.TrimSpace(form.Platform) == "" {
		violations = append(violations, ViolationMissingPlatform)
	}

	return violations
}

func siblingHasDesignDeliverable(siblings []domain.Task) bool {
	for _, sibling := range siblings {
		if sibling.Type == domain.TaskTypeDesign && sibling.Deliverable != nil {
			return true
		}
	}
	return false
}
