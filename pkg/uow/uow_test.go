package uow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type fakeRepo struct {
	db DBTX
}

type otherRepo interface {
	Other()
}

type UOWTestSuite struct {
	suite.Suite
	unitOfWork *UnitOfWork
}

func TestUOWSuite(t *testing.T) {
	suite.Run(t, new(UOWTestSuite))
}

func (s *UOWTestSuite) SetupTest() {
	s.unitOfWork = NewUnitOfWork(nil)
}

func (s *UOWTestSuite) TestRegister() {
	factory := func(db DBTX) Repository { return &fakeRepo{db: db} }

	s.Require().NoError(s.unitOfWork.Register("fake", factory))
	s.Require().ErrorIs(s.unitOfWork.Register("fake", factory), ErrRepositoryAlreadyRegistered)
	s.Require().ErrorIs(s.unitOfWork.Register("nil", nil), ErrNilRepositoryFactory)
}

func (s *UOWTestSuite) TestGetRepositoryAs() {
	s.Require().NoError(s.unitOfWork.Register("fake", func(db DBTX) Repository { return &fakeRepo{db: db} }))

	repo, err := GetRepositoryAs[*fakeRepo](s.unitOfWork, "fake")
	s.Require().NoError(err)
	s.NotNil(repo)

	_, err = GetRepositoryAs[otherRepo](s.unitOfWork, "fake")
	s.Require().ErrorIs(err, ErrInvalidRepositoryType)

	_, err = GetRepositoryAs[*fakeRepo](s.unitOfWork, "missing")
	s.Require().ErrorIs(err, ErrRepositoryNotRegistered)
}

func (s *UOWTestSuite) TestTransactionGetAs() {
	s.Require().NoError(s.unitOfWork.Register("fake", func(db DBTX) Repository { return &fakeRepo{db: db} }))
	tx := NewTransaction(nil, s.unitOfWork.repositories)

	repo, err := GetAs[*fakeRepo](tx, "fake")
	s.Require().NoError(err)
	s.NotNil(repo)

	_, err = GetAs[*fakeRepo](tx, "missing")
	s.Require().ErrorIs(err, ErrRepositoryNotRegistered)
}

func (s *UOWTestSuite) TestTransactionReusesRepository() {
	created := 0
	s.Require().NoError(s.unitOfWork.Register("fake", func(db DBTX) Repository {
		created++
		return &fakeRepo{db: db}
	}))
	tx := NewTransaction(nil, s.unitOfWork.repositories)

	first, err := GetAs[*fakeRepo](tx, "fake")
	s.Require().NoError(err)
	second, err := GetAs[*fakeRepo](tx, "fake")
	s.Require().NoError(err)

	s.Same(first, second)
	s.Equal(1, created)
}

func (s *UOWTestSuite) TestDoWithoutConnection() {
	called := false
	err := s.unitOfWork.Do(context.Background(), func(context.Context, TX) error {
		called = true
		return nil
	})
	s.Require().ErrorIs(err, ErrNoConnection)
	s.False(called)
}
