package aclass

import (
	_ "embed"
	"fmt"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var rulesYAML []byte

var defaultClassifier *Classifier

func init() {
	classifier, err := NewClassifier(rulesYAML)
	if err != nil {
		panic(errors.Wrap(err, "aclass init error: embedded rules.yaml"))
	}
	defaultClassifier = classifier
}

// Default returns the classifier built from the embedded rule table.
func Default() *Classifier {
	return defaultClassifier
}

func DecodeRules(bs []byte) ([]Rule, error) {
	ruleSet := RuleSet{}
	if err := yaml.Unmarshal(bs, &ruleSet); err != nil {
		return nil, errors.Wrap(err, "aclass.DecodeRules error")
	}
	for i, rule := range ruleSet.Rules {
		if err := ValidateRule(rule); err != nil {
			return nil, errors.Wrapf(err, `aclass.DecodeRules error: rule %d "%s"`, i, rule.Name)
		}
	}
	return ruleSet.Rules, nil
}

func ValidateRule(rule Rule) error {
	isKnown := func(role Role) bool {
		return lo.Contains(Roles, role)
	}
	hasClassMatch := len(rule.ClassContains) > 0 || len(rule.ClassPrefixes) > 0
	hasPropertyMatch := len(rule.PropertyRoles) > 0

	switch {
	case hasClassMatch == hasPropertyMatch:
		return fmt.Errorf("expected either class patterns or property roles")
	case hasClassMatch && !isKnown(rule.Role):
		return fmt.Errorf(`unknown role "%s"`, rule.Role)
	case rule.FlagProperty != "" && !isKnown(rule.FlagRole):
		return fmt.Errorf(`unknown flag role "%s"`, rule.FlagRole)
	}
	for _, propertyRole := range rule.PropertyRoles {
		if propertyRole.Property == "" || !isKnown(propertyRole.Role) {
			return fmt.Errorf(`invalid property role "%s" -> "%s"`, propertyRole.Property, propertyRole.Role)
		}
	}
	return nil
}
