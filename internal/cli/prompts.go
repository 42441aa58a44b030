package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"gitlaunch.dev/gitlaunch/internal/config"
)

// promptIdentity asks for the user and email values that are still empty
func promptIdentity(opts config.Options) (config.Options, error) {
	var questions []*survey.Question
	if opts.User == "" {
		questions = append(questions, &survey.Question{
			Name:     "user",
			Prompt:   &survey.Input{Message: "GitHub user:"},
			Validate: survey.Required,
		})
	}
	if opts.Email == "" {
		questions = append(questions, &survey.Question{
			Name:     "email",
			Prompt:   &survey.Input{Message: "Email:"},
			Validate: survey.Required,
		})
	}
	if len(questions) == 0 {
		return opts, nil
	}

	answers := struct {
		User  string `survey:"user"`
		Email string `survey:"email"`
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return opts, fmt.Errorf("canceled: %w", err)
	}

	if answers.User != "" {
		opts.User = answers.User
	}
	if answers.Email != "" {
		opts.Email = answers.Email
	}
	return opts, nil
}
