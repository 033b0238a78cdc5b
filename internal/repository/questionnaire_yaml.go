package repository

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"smart-advisor/internal/domain"
)

// DefaultBalancedFallback is used when the definition file does not
// override the sentence for profiles with three or more tied traits.
const DefaultBalancedFallback = "You have a well-rounded profile: no single trait stands out, which keeps many different paths open."

type questionnaireFile struct {
	Questions []struct {
		ID      string `yaml:"id"`
		Text    string `yaml:"text"`
		Options []struct {
			ID      string             `yaml:"id"`
			Text    string             `yaml:"text"`
			Weights map[string]float64 `yaml:"weights"`
		} `yaml:"options"`
	} `yaml:"questions"`
	Narrative struct {
		Traits           map[string]string `yaml:"traits"`
		BalancedFallback string            `yaml:"balanced_fallback"`
	} `yaml:"narrative"`
}

// LoadQuestionnaireYAML reads the questionnaire definition and narrative
// templates from a YAML file and validates them against the trait space.
func LoadQuestionnaireYAML(path string, space *domain.TraitSpace) (*domain.Questionnaire, domain.NarrativeTemplates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NarrativeTemplates{}, fmt.Errorf("read questionnaire: %w", err)
	}
	return ParseQuestionnaireYAML(data, space)
}

// ParseQuestionnaireYAML parses and validates a questionnaire definition.
// Sparse option weights are densified against the trait space; a weight
// keyed by an unknown trait fails the load.
func ParseQuestionnaireYAML(data []byte, space *domain.TraitSpace) (*domain.Questionnaire, domain.NarrativeTemplates, error) {
	var file questionnaireFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, domain.NarrativeTemplates{}, fmt.Errorf("%w: %v", domain.ErrQuestionnaireInvalid, err)
	}

	questions := make([]domain.Question, 0, len(file.Questions))
	for _, q := range file.Questions {
		options := make([]domain.Option, 0, len(q.Options))
		for _, opt := range q.Options {
			weights := space.NewVector()
			for trait, weight := range opt.Weights {
				i, ok := space.Index(trait)
				if !ok {
					return nil, domain.NarrativeTemplates{}, fmt.Errorf(
						"%w: option %s/%s weights unknown trait %q",
						domain.ErrQuestionnaireInvalid, q.ID, opt.ID, trait)
				}
				if weight < 0 {
					return nil, domain.NarrativeTemplates{}, fmt.Errorf(
						"%w: option %s/%s has negative weight for %q",
						domain.ErrQuestionnaireInvalid, q.ID, opt.ID, trait)
				}
				weights[i] = weight
			}
			options = append(options, domain.Option{ID: opt.ID, Text: opt.Text, Weights: weights})
		}
		questions = append(questions, domain.Question{ID: q.ID, Text: q.Text, Options: options})
	}

	questionnaire, err := domain.NewQuestionnaire(space, questions)
	if err != nil {
		return nil, domain.NarrativeTemplates{}, err
	}

	// The template set must be closed over the trait space: every
	// dimension that can dominate a profile needs a description.
	descriptions := make(map[string]string, space.Dim())
	for _, dim := range space.Dimensions() {
		desc, ok := file.Narrative.Traits[dim]
		if !ok || desc == "" {
			return nil, domain.NarrativeTemplates{}, fmt.Errorf(
				"%w: narrative is missing a description for trait %q",
				domain.ErrQuestionnaireInvalid, dim)
		}
		descriptions[dim] = desc
	}
	for trait := range file.Narrative.Traits {
		if _, ok := space.Index(trait); !ok {
			return nil, domain.NarrativeTemplates{}, fmt.Errorf(
				"%w: narrative describes unknown trait %q",
				domain.ErrQuestionnaireInvalid, trait)
		}
	}

	fallback := file.Narrative.BalancedFallback
	if fallback == "" {
		fallback = DefaultBalancedFallback
	}

	return questionnaire, domain.NarrativeTemplates{
		Descriptions:     descriptions,
		BalancedFallback: fallback,
	}, nil
}
