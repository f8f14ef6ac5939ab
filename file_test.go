package box_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	box "github.com/ionutliviu/box-go-sdk"
	"github.com/ionutliviu/box-go-sdk/mocks"
)

type FileTestSuite struct {
	suite.Suite
	ctx           context.Context
	mockTransport *mocks.Transport
	account       *box.Account
}

func (s *FileTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockTransport = mocks.NewTransport(s.T())
	s.account = box.NewAccount(s.mockTransport)
}

func (s *FileTestSuite) TestDownload() {
	s.mockTransport.On("DownloadFile", mock.Anything, "7").
		Return(io.NopCloser(strings.NewReader("file content")), nil).
		Once()

	file := s.account.File("7")
	rc, err := file.Download(s.ctx)
	s.Require().NoError(err)
	defer func() { _ = rc.Close() }()

	content, err := io.ReadAll(rc)
	s.Require().NoError(err)
	s.Equal("file content", string(content))
}

func (s *FileTestSuite) TestDownloadError() {
	s.mockTransport.On("DownloadFile", mock.Anything, "7").
		Return(nil, box.ErrNotFound).
		Once()

	_, err := s.account.File("7").Download(s.ctx)
	s.Require().Error(err)
	s.Require().ErrorIs(err, box.ErrNotFound)
}

func (s *FileTestSuite) TestVersions() {
	s.mockTransport.On("ItemInfo", mock.Anything, box.TypeFile, "7").
		Return(box.Attrs{
			"name": "report.pdf",
			"versions": []any{
				map[string]any{"type": "version", "id": "v1", "sha1": "aaa111"},
				map[string]any{"type": "version", "id": "v2", "sha1": "bbb222"},
				map[string]any{"note": "not a version"},
			},
		}, nil).
		Once()

	file := s.account.File("7")
	versions, err := file.Versions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(versions, 2)
	s.Equal("v1", versions[0].ID())

	sha1, err := versions[1].Sha1(s.ctx)
	s.Require().NoError(err)
	s.Equal("bbb222", sha1, "version attributes ride along with the file payload")
}

func (s *FileTestSuite) TestVersionsAbsent() {
	s.mockTransport.On("ItemInfo", mock.Anything, box.TypeFile, "7").
		Return(box.Attrs{"name": "report.pdf"}, nil).
		Once()

	_, err := s.account.File("7").Versions(s.ctx)
	s.Require().ErrorIs(err, box.ErrUnknownAttribute)
}

func TestFileTestSuite(t *testing.T) {
	suite.Run(t, new(FileTestSuite))
}
