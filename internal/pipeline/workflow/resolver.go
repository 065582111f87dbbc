// Package workflow maps classified intents to multi-step workflow
// descriptors from a static, intent-keyed template table.
package workflow

import (
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/logger"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/models"
)

type Resolver struct {
	logger logger.Logger
}

func NewResolver(log logger.Logger) *Resolver {
	return &Resolver{
		logger: log.WithFields(map[string]interface{}{"component": "workflow-resolver"}),
	}
}

// Resolve returns a fresh descriptor for procedural intents and nil for
// conversational ones. It is stateless and idempotent: identical inputs
// yield structurally identical descriptors. Entities and session are
// accepted for forward extensibility; the current rule set keys on intent
// alone.
func (r *Resolver) Resolve(intent models.Intent, entities models.Entities, session *models.SessionContext) *models.WorkflowDescriptor {
	template, ok := descriptorTemplates[intent]
	if !ok {
		return nil
	}

	steps := make([]string, len(template.Steps))
	copy(steps, template.Steps)
	urls := make([]string, len(template.URLs))
	copy(urls, template.URLs)

	descriptor := models.WorkflowDescriptor{
		Name:                   template.Name,
		Steps:                  steps,
		URLs:                   urls,
		RequiresAuthentication: template.RequiresAuthentication,
		SMSConfirmation:        template.SMSConfirmation,
	}

	return &descriptor
}
