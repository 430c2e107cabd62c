package textutil

import (
	"fmt"
	"strings"
)

// UserData holds the fields of a "First Last user@host" line.
type UserData struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	User      string `json:"user"` // local-part of the email address
	Host      string `json:"host"`
}

// ParseUserData splits line on single spaces into exactly three tokens and the
// third token on '@' into exactly two. Tokens are not trimmed, so a trailing
// newline ends up in Host.
func ParseUserData(line string) (UserData, error) {
	tokens := strings.Split(line, " ")
	if len(tokens) != 3 {
		return UserData{}, fmt.Errorf("%w: want 3 space-separated tokens, got %d in %q", ErrMalformedUserData, len(tokens), line)
	}

	email := strings.Split(tokens[2], "@")
	if len(email) != 2 {
		return UserData{}, fmt.Errorf("%w: want exactly one '@' in %q", ErrMalformedUserData, tokens[2])
	}

	return UserData{
		FirstName: tokens[0],
		LastName:  tokens[1],
		User:      email[0],
		Host:      email[1],
	}, nil
}

// Email reassembles the email address.
func (u UserData) Email() string {
	return u.User + "@" + u.Host
}

// String renders u in the form accepted by ParseUserData.
func (u UserData) String() string {
	return u.FirstName + " " + u.LastName + " " + u.Email()
}
