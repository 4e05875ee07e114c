package main

import (
	"errors"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-fixturegen/pkg/fixture"
	"github.com/goliatone/go-fixturegen/pkg/generator"
)

// promptRequest walks the user through kind selection and parameter entry,
// seeding prompts with the registry defaults for the chosen kind.
func promptRequest(reg generator.TemplateSource) (fixture.Request, error) {
	kinds := reg.List()
	options := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		options = append(options, string(kind))
	}

	var kindChoice string
	if err := survey.AskOne(&survey.Select{
		Message: "Fixture kind:",
		Options: options,
	}, &kindChoice); err != nil {
		return fixture.Request{}, err
	}
	kind := fixture.Kind(kindChoice)

	var name string
	if err := survey.AskOne(&survey.Input{
		Message: "Fixture name:",
		Default: kindChoice,
		Help:    "Used as the generated fixture identifier.",
	}, &name, survey.WithValidator(nonEmpty)); err != nil {
		return fixture.Request{}, err
	}

	defaults, err := reg.Defaults(kind)
	if err != nil {
		return fixture.Request{}, err
	}

	params := make(map[string]string, len(defaults))
	for _, key := range sortedKeys(defaults) {
		var value string
		if err := survey.AskOne(&survey.Input{
			Message: "Parameter " + key + ":",
			Default: defaults[key],
		}, &value); err != nil {
			return fixture.Request{}, err
		}
		if value != "" {
			params[key] = value
		}
	}

	return fixture.Request{Kind: kind, Name: name, Params: params}, nil
}

func nonEmpty(ans any) error {
	value, _ := ans.(string)
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
