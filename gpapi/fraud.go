package gpapi

import (
	"github.com/cardflow/gpapi/gpapi/models"
	"github.com/cardflow/gpapi/internal/document"
)

// riskAssessment maps the fraud configuration to the single element
// risk_assessment list. A nil configuration yields nil so the field is
// omitted rather than sent as an empty list.
func riskAssessment(cfg *models.FraudConfig) []*document.Document {
	if cfg == nil {
		return nil
	}

	var rules []*document.Document
	for _, r := range cfg.Rules {
		rules = append(rules, document.New().
			Set("reference", opt(r.Key)).
			Set("mode", opt(string(r.Mode))))
	}

	item := document.New().
		Set("mode", opt(string(cfg.Mode))).
		Set("rules", rules)

	return []*document.Document{item}
}
