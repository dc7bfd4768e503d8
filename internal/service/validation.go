package service

import (
	"fmt"
	"strings"
)

// Field limits enforced on user input before it reaches the store. The
// repositories themselves validate nothing beyond what the database schema
// enforces, so every limit lives here.
const (
	maxUsernameLen    = 25
	maxProgramNameLen = 50
	maxLinkLen        = 240
	maxDescriptionLen = 5000
	maxCommentLen     = 2000

	minGrade = 1
	maxGrade = 5
)

func validateCredentials(username, password string) error {
	if username == "" || len(username) > maxUsernameLen {
		return fmt.Errorf("%w: username must be 1-%d characters", ErrValidation, maxUsernameLen)
	}

	if password == "" {
		return fmt.Errorf("%w: password must not be empty", ErrValidation)
	}

	return nil
}

func validateProgramFields(name, sourceLink, downloadLink, description string) error {
	if name == "" || len(name) > maxProgramNameLen {
		return fmt.Errorf("%w: program name must be 1-%d characters", ErrValidation, maxProgramNameLen)
	}

	for _, link := range []string{sourceLink, downloadLink} {
		if err := validateLink(link); err != nil {
			return err
		}
	}

	if len(description) > maxDescriptionLen {
		return fmt.Errorf("%w: description must be at most %d characters", ErrValidation, maxDescriptionLen)
	}

	return nil
}

func validateLink(link string) error {
	if len(link) > maxLinkLen {
		return fmt.Errorf("%w: link must be at most %d characters", ErrValidation, maxLinkLen)
	}

	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return fmt.Errorf("%w: link must start with http:// or https://", ErrValidation)
	}

	return nil
}

func validateReviewFields(grade int, comment string) error {
	if grade < minGrade || grade > maxGrade {
		return fmt.Errorf("%w: grade must be between %d and %d", ErrValidation, minGrade, maxGrade)
	}

	if comment == "" || len(comment) > maxCommentLen {
		return fmt.Errorf("%w: comment must be 1-%d characters", ErrValidation, maxCommentLen)
	}

	return nil
}
