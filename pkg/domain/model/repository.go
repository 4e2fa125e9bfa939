package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

type Repository struct {
	Owner string
	Name  string
}

func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// ParseRepository splits an "owner/name" string into a Repository.
func ParseRepository(s string) (Repository, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repository{}, goerr.New("repository must be in owner/name form: " + s)
	}
	return Repository{Owner: parts[0], Name: parts[1]}, nil
}
