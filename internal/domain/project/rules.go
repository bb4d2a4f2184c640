package project

import "github.com/ianto3/projectboard/internal/domain/validation"

// Field rules shared by the board form and the JSON API.
const (
	titleMinLength       = 5
	descriptionMinLength = 5
	peopleMin            = 1
	peopleMax            = 5
)

// FieldRules returns the constraints a new project's input must satisfy.
// people is whatever the caller parsed from user input (an int, or NaN when
// the input was not a number). With the exclusive bounds of the validation
// package only 2, 3 and 4 people pass.
func FieldRules(title, description string, people any) map[string]validation.Validatable {
	return map[string]validation.Validatable{
		"title": {
			Value:     title,
			Required:  true,
			MinLength: validation.Int(titleMinLength),
		},
		"description": {
			Value:     description,
			Required:  true,
			MinLength: validation.Int(descriptionMinLength),
		},
		"people": {
			Value:    people,
			Required: true,
			Min:      validation.Float(peopleMin),
			Max:      validation.Float(peopleMax),
		},
	}
}
