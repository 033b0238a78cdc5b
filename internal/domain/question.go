package domain

import "fmt"

// Option is one selectable answer. Its sparse trait contribution from
// the definition file is densified to a full vector at load time.
type Option struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Weights Vector `json:"-"`
}

// Question is one questionnaire entry with its fixed option set.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Questionnaire is the fixed ordered question list, loaded once from
// static configuration and immutable afterwards.
type Questionnaire struct {
	questions []Question
	options   map[string]map[string]Option
}

// NewQuestionnaire validates the question set and builds option lookups.
func NewQuestionnaire(space *TraitSpace, questions []Question) (*Questionnaire, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions defined", ErrQuestionnaireInvalid)
	}
	options := make(map[string]map[string]Option, len(questions))
	for _, q := range questions {
		if q.ID == "" {
			return nil, fmt.Errorf("%w: question with empty id", ErrQuestionnaireInvalid)
		}
		if _, ok := options[q.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate question id %q", ErrQuestionnaireInvalid, q.ID)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("%w: question %q has no options", ErrQuestionnaireInvalid, q.ID)
		}
		byID := make(map[string]Option, len(q.Options))
		for _, opt := range q.Options {
			if opt.ID == "" {
				return nil, fmt.Errorf("%w: question %q has an option with empty id", ErrQuestionnaireInvalid, q.ID)
			}
			if _, ok := byID[opt.ID]; ok {
				return nil, fmt.Errorf("%w: question %q has duplicate option id %q", ErrQuestionnaireInvalid, q.ID, opt.ID)
			}
			if len(opt.Weights) != space.Dim() {
				return nil, fmt.Errorf("%w: option %s/%s has %d weights, want %d",
					ErrQuestionnaireInvalid, q.ID, opt.ID, len(opt.Weights), space.Dim())
			}
			byID[opt.ID] = opt
		}
		options[q.ID] = byID
	}
	owned := make([]Question, len(questions))
	copy(owned, questions)
	return &Questionnaire{questions: owned, options: options}, nil
}

// Len returns the number of questions.
func (q *Questionnaire) Len() int { return len(q.questions) }

// Questions returns the questions in definition order.
func (q *Questionnaire) Questions() []Question {
	out := make([]Question, len(q.questions))
	copy(out, q.questions)
	return out
}

// Option resolves one option by question and option id.
func (q *Questionnaire) Option(questionID, optionID string) (Option, bool) {
	byID, ok := q.options[questionID]
	if !ok {
		return Option{}, false
	}
	opt, ok := byID[optionID]
	return opt, ok
}

// HasQuestion reports whether the questionnaire defines questionID.
func (q *Questionnaire) HasQuestion(questionID string) bool {
	_, ok := q.options[questionID]
	return ok
}
