package uow

import "errors"

var (
	ErrRepositoryNotRegistered     = errors.New("[uow] repository not registered")
	ErrRepositoryAlreadyRegistered = errors.New("[uow] repository already registered")
	ErrInvalidRepositoryType       = errors.New("[uow] invalid repository type")
	ErrNilRepositoryFactory        = errors.New("[uow] nil repository factory")
	ErrNoConnection                = errors.New("[uow] database connection is not set")
)
