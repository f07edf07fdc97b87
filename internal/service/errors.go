package service

import (
	"errors"

	"github.com/alexanderramin/hive/internal/contract"
	"github.com/alexanderramin/hive/internal/repository"
)

// notFoundAs turns a repository miss into a client-facing NOT_FOUND.
func notFoundAs(err error, what, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return contract.NotFound("%s %s not found", what, id)
	}
	return err
}
