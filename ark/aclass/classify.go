package aclass

import (
	"strings"

	"ark-savior/ark/aobject"
	"github.com/samber/lo"
)

type Classifier struct {
	rules []Rule
}

func NewClassifier(rulesBytes []byte) (*Classifier, error) {
	rules, err := DecodeRules(rulesBytes)
	if err != nil {
		return nil, err
	}
	return &Classifier{rules: rules}, nil
}

// Classify returns the role of the first matching rule, or RoleMiscellaneous.
func (r *Classifier) Classify(obj aobject.GameObject) Role {
	for _, rule := range r.rules {
		if role, ok := rule.Match(obj); ok {
			return role
		}
	}
	return RoleMiscellaneous
}

func (r Rule) Match(obj aobject.GameObject) (Role, bool) {
	if len(r.PropertyRoles) > 0 {
		return r.matchProperties(obj)
	}

	matched := lo.SomeBy(
		r.ClassContains,
		func(pattern string) bool { return strings.Contains(obj.Class, pattern) },
	) || lo.SomeBy(
		r.ClassPrefixes,
		func(prefix string) bool { return strings.HasPrefix(obj.Class, prefix) },
	)
	if !matched {
		return "", false
	}
	if r.FlagProperty != "" {
		if flag, ok := obj.Flag(r.FlagProperty); ok && flag {
			return r.FlagRole, true
		}
	}
	return r.Role, true
}

func (r Rule) matchProperties(obj aobject.GameObject) (Role, bool) {
	for _, property := range obj.Properties {
		propertyRole, ok := lo.Find(
			r.PropertyRoles,
			func(propertyRole PropertyRole) bool { return propertyRole.Property == property.Name },
		)
		if ok {
			return propertyRole.Role, true
		}
	}
	return "", false
}
