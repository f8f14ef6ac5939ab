package box_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	box "github.com/ionutliviu/box-go-sdk"
	"github.com/ionutliviu/box-go-sdk/mocks"
)

type AccountTestSuite struct {
	suite.Suite
	ctx           context.Context
	mockTransport *mocks.Transport
	account       *box.Account
}

func (s *AccountTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockTransport = mocks.NewTransport(s.T())
	s.account = box.NewAccount(s.mockTransport)
}

func (s *AccountTestSuite) TestInfoCaches() {
	s.mockTransport.On("AccountInfo", mock.Anything).
		Return(box.Attrs{"login": "dev@example.com", "space_used": float64(10)}, nil).
		Once()

	info, err := s.account.Info(s.ctx)
	s.Require().NoError(err)
	s.Equal("dev@example.com", info["login"])

	// served from the cache, the single expectation stays satisfied
	info, err = s.account.Info(s.ctx)
	s.Require().NoError(err)
	s.Equal("dev@example.com", info["login"])
	s.True(s.account.Authorized())
}

func (s *AccountTestSuite) TestInfoSwallowsAuthErrors() {
	s.mockTransport.On("AccountInfo", mock.Anything).
		Return(nil, box.ErrNotAuthorized).
		Once()
	s.mockTransport.On("AccountInfo", mock.Anything).
		Return(nil, box.ErrInvalidInput).
		Once()

	info, err := s.account.Info(s.ctx)
	s.Require().NoError(err, "a rejected credential is not an error")
	s.Nil(info)
	s.False(s.account.Authorized())

	info, err = s.account.Info(s.ctx)
	s.Require().NoError(err, "an invalid credential is not an error either")
	s.Nil(info)
	s.False(s.account.Authorized())
}

func (s *AccountTestSuite) TestInfoPropagatesOtherErrors() {
	s.mockTransport.On("AccountInfo", mock.Anything).
		Return(nil, box.ErrNotFound).
		Once()

	_, err := s.account.Info(s.ctx)
	s.Require().Error(err)
	s.Require().ErrorIs(err, box.ErrNotFound)
}

func (s *AccountTestSuite) TestRefreshReplacesCache() {
	s.mockTransport.On("AccountInfo", mock.Anything).
		Return(box.Attrs{"login": "dev@example.com", "space_used": float64(10)}, nil).
		Once()
	s.mockTransport.On("AccountInfo", mock.Anything).
		Return(box.Attrs{"space_used": float64(20)}, nil).
		Once()

	_, err := s.account.Info(s.ctx)
	s.Require().NoError(err)

	info, err := s.account.Refresh(s.ctx)
	s.Require().NoError(err)
	s.Equal(float64(20), info["space_used"])
	_, stale := info["login"]
	s.False(stale, "a refresh replaces the cache instead of merging into it")
}

func (s *AccountTestSuite) TestRefreshFailureDeauthorizes() {
	s.mockTransport.On("AccountInfo", mock.Anything).
		Return(box.Attrs{"login": "dev@example.com"}, nil).
		Once()
	s.mockTransport.On("AccountInfo", mock.Anything).
		Return(nil, box.ErrNotAuthorized).
		Once()

	_, err := s.account.Info(s.ctx)
	s.Require().NoError(err)
	s.Require().True(s.account.Authorized())

	info, err := s.account.Refresh(s.ctx)
	s.Require().NoError(err)
	s.Nil(info)
	s.False(s.account.Authorized(), "a failed refresh leaves the account unauthorized")
}

func (s *AccountTestSuite) TestAuthorize() {
	s.Run("empty token reports current state", func() {
		s.False(s.account.Authorize(s.ctx, ""))
	})

	s.Run("valid token authorizes", func() {
		s.mockTransport.On("SetAuthToken", "valid-token").Return().Once()
		s.mockTransport.On("AccountInfo", mock.Anything).
			Return(box.Attrs{"login": "dev@example.com"}, nil).
			Once()

		s.True(s.account.Authorize(s.ctx, "valid-token"))
	})

	s.Run("rejected token does not", func() {
		s.mockTransport.On("SetAuthToken", "bad-token").Return().Once()
		s.mockTransport.On("AccountInfo", mock.Anything).
			Return(nil, box.ErrNotAuthorized).
			Once()

		s.False(s.account.Authorize(s.ctx, "bad-token"))
	})
}

func (s *AccountTestSuite) TestRoot() {
	root := s.account.Root()
	s.Equal("0", root.ID())
	s.Equal(box.TypeFolder, root.Type())
	s.Same(root, s.account.Root(), "the root handle is built once")
}

func (s *AccountTestSuite) TestDetachedHandles() {
	folder := s.account.Folder("9")
	s.Equal("9", folder.ID())
	s.Equal(box.TypeFolder, folder.Type())

	file := s.account.File("10")
	s.Equal("10", file.ID())
	s.Equal(box.TypeFile, file.Type())

	generic := s.account.Item("11")
	s.Equal("11", generic.ID())
	s.Equal(box.TypeItem, generic.Type())
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}
