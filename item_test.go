package box_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	box "github.com/ionutliviu/box-go-sdk"
	"github.com/ionutliviu/box-go-sdk/mocks"
)

type ItemTestSuite struct {
	suite.Suite
	ctx           context.Context
	mockTransport *mocks.Transport
	account       *box.Account
}

func (s *ItemTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockTransport = mocks.NewTransport(s.T())
	s.account = box.NewAccount(s.mockTransport)
}

func (s *ItemTestSuite) TestGetFetchesOnce() {
	s.mockTransport.On("ItemInfo", mock.Anything, box.TypeFile, "7").
		Return(box.Attrs{"name": "readme.txt", "size": float64(42)}, nil).
		Once()

	file := s.account.File("7")

	name, err := file.Get(s.ctx, "name")
	s.Require().NoError(err)
	s.Equal("readme.txt", name)

	// size was cached by the same fetch
	size, err := file.Get(s.ctx, "size")
	s.Require().NoError(err)
	s.Equal(float64(42), size)
}

func (s *ItemTestSuite) TestGetUnknownAttribute() {
	s.mockTransport.On("ItemInfo", mock.Anything, box.TypeFile, "7").
		Return(box.Attrs{"name": "readme.txt"}, nil).
		Once()

	file := s.account.File("7")

	_, err := file.Get(s.ctx, "color")
	s.Require().Error(err)
	s.Require().ErrorIs(err, box.ErrUnknownAttribute)

	// still a single fetch: the miss does not refetch
	_, err = file.Get(s.ctx, "color")
	s.Require().ErrorIs(err, box.ErrUnknownAttribute)
}

func (s *ItemTestSuite) TestGetAfterFailedFetch() {
	s.mockTransport.On("ItemInfo", mock.Anything, box.TypeFile, "7").
		Return(nil, box.ErrNotFound).
		Once()

	file := s.account.File("7")

	_, err := file.Get(s.ctx, "name")
	s.Require().Error(err)
	s.Require().ErrorIs(err, box.ErrNotFound)

	// the failed fetch still marked the cache populated, so the next read
	// reports the missing key instead of fetching again
	_, err = file.Get(s.ctx, "name")
	s.Require().ErrorIs(err, box.ErrUnknownAttribute)
}

func (s *ItemTestSuite) TestGetIDWithoutFetch() {
	file := s.account.File("7")

	id, err := file.Get(s.ctx, "id")
	s.Require().NoError(err)
	s.Equal("7", id)
	s.Equal("7", file.ID())
}

func (s *ItemTestSuite) TestRefreshMergesOverCache() {
	s.mockTransport.On("ItemInfo", mock.Anything, box.TypeFile, "7").
		Return(box.Attrs{"name": "draft.txt", "size": float64(10)}, nil).
		Once()
	file := s.account.File("7")
	s.Require().NoError(file.Info(s.ctx))

	s.mockTransport.On("ItemInfo", mock.Anything, box.TypeFile, "7").
		Return(box.Attrs{"size": float64(20)}, nil).
		Once()
	s.Require().NoError(file.Refresh(s.ctx))

	// size overwritten, name survived the partial payload
	size, err := file.Size(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(20), size)

	name, err := file.Name(s.ctx)
	s.Require().NoError(err)
	s.Equal("draft.txt", name)
}

func (s *ItemTestSuite) TestTypedAccessors() {
	s.mockTransport.On("ItemInfo", mock.Anything, box.TypeFile, "7").
		Return(box.Attrs{
			"name":        "readme.txt",
			"description": "project notes",
			"etag":        "3",
			"size":        float64(1024),
			"created_at":  "2013-05-10T12:30:45-07:00",
			"modified_at": "2013-06-01T08:00:00Z",
		}, nil).
		Once()

	file := s.account.File("7")

	name, err := file.Name(s.ctx)
	s.Require().NoError(err)
	s.Equal("readme.txt", name)

	description, err := file.Description(s.ctx)
	s.Require().NoError(err)
	s.Equal("project notes", description)

	etag, err := file.Etag(s.ctx)
	s.Require().NoError(err)
	s.Equal("3", etag)

	size, err := file.Size(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1024), size)

	createdAt, err := file.CreatedAt(s.ctx)
	s.Require().NoError(err)
	s.Equal(time.Date(2013, time.May, 10, 12, 30, 45, 0, time.FixedZone("", -7*60*60)).Unix(), createdAt.Unix())

	modifiedAt, err := file.ModifiedAt(s.ctx)
	s.Require().NoError(err)
	s.Equal(time.Date(2013, time.June, 1, 8, 0, 0, 0, time.UTC), modifiedAt.UTC())
}

func (s *ItemTestSuite) TestEqual() {
	folderA := s.account.Folder("42")
	folderB := s.account.Folder("42")
	folderC := s.account.Folder("43")
	file := s.account.File("42")
	generic := s.account.Item("42")

	s.True(folderA.Equal(folderB), "same type and id are equal regardless of cache state")
	s.True(folderB.Equal(folderA))
	s.False(folderA.Equal(folderC), "different ids differ")
	s.False(folderA.Equal(file), "same id with a different type differs")
	s.False(file.Equal(generic))
	s.False(folderA.Equal(nil))
}

func (s *ItemTestSuite) TestParent() {
	s.Run("materialized parent", func() {
		s.mockTransport.On("ItemInfo", mock.Anything, box.TypeFile, "10").
			Return(box.Attrs{"parent": map[string]any{"type": "folder", "id": "42", "name": "docs"}}, nil).
			Once()

		file := s.account.File("10")
		parent, err := file.Parent(s.ctx)
		s.Require().NoError(err)
		s.Require().NotNil(parent)
		s.Equal("42", parent.ID())
	})

	s.Run("null parent", func() {
		s.mockTransport.On("ItemInfo", mock.Anything, box.TypeFile, "11").
			Return(box.Attrs{"parent": nil, "name": "orphan.txt"}, nil).
			Once()

		file := s.account.File("11")
		parent, err := file.Parent(s.ctx)
		s.Require().NoError(err)
		s.Nil(parent)
	})

	s.Run("absent parent", func() {
		s.mockTransport.On("ItemInfo", mock.Anything, box.TypeFile, "12").
			Return(box.Attrs{"name": "floating.txt"}, nil).
			Once()

		file := s.account.File("12")
		parent, err := file.Parent(s.ctx)
		s.Require().NoError(err)
		s.Nil(parent)
	})
}

func (s *ItemTestSuite) TestRename() {
	s.mockTransport.On("UpdateItem", mock.Anything, box.TypeFile, "7", box.Attrs{"name": "renamed.txt"}).
		Return(box.Attrs{"id": "7", "name": "renamed.txt"}, nil).
		Once()

	file := s.account.File("7")
	s.Require().NoError(file.Rename(s.ctx, "renamed.txt"))

	// the response was merged, so no fetch is needed for the new name
	name, err := file.Name(s.ctx)
	s.Require().NoError(err)
	s.Equal("renamed.txt", name)
}

func (s *ItemTestSuite) TestRenameRequiresName() {
	file := s.account.File("7")
	s.Require().Error(file.Rename(s.ctx, ""))
}

func (s *ItemTestSuite) TestChangeParent() {
	moveFields := mock.MatchedBy(func(fields box.Attrs) bool {
		parent, ok := fields["parent"].(box.Item)
		_, hasName := fields["name"]
		return ok && parent.ID() == "99" && !hasName
	})

	s.Run("moved", func() {
		s.mockTransport.On("UpdateItem", mock.Anything, box.TypeFile, "20", moveFields).
			Return(box.Attrs{"id": "20", "parent": map[string]any{"type": "folder", "id": "99"}}, nil).
			Once()

		file := s.account.File("20")
		outcome, err := file.ChangeParent(s.ctx, "99", false)
		s.Require().NoError(err)
		s.Equal(box.Moved, outcome)

		parent, err := file.Parent(s.ctx)
		s.Require().NoError(err)
		s.Equal("99", parent.ID())
	})

	s.Run("name taken without force", func() {
		s.mockTransport.On("UpdateItem", mock.Anything, box.TypeFile, "21", moveFields).
			Return(nil, box.ErrNameTaken).
			Once()

		file := s.account.File("21")
		_, err := file.ChangeParent(s.ctx, "99", false)
		s.Require().Error(err)
		s.Require().ErrorIs(err, box.ErrNameTaken)
	})

	s.Run("name taken with force retries disambiguated", func() {
		renamed := regexp.MustCompile(`^report \(\d{4}-\d{2}-\d{2} \d{2}-\d{2} UTC\)\.pdf$`)
		renameFields := mock.MatchedBy(func(fields box.Attrs) bool {
			parent, ok := fields["parent"].(box.Item)
			name, _ := fields["name"].(string)
			return ok && parent.ID() == "99" && renamed.MatchString(name)
		})

		s.mockTransport.On("UpdateItem", mock.Anything, box.TypeFile, "22", moveFields).
			Return(nil, box.ErrNameTaken).
			Once()
		s.mockTransport.On("ItemInfo", mock.Anything, box.TypeFile, "22").
			Return(box.Attrs{"name": "report.pdf"}, nil).
			Once()
		s.mockTransport.On("UpdateItem", mock.Anything, box.TypeFile, "22", renameFields).
			Return(box.Attrs{"id": "22"}, nil).
			Once()

		file := s.account.File("22")
		outcome, err := file.ChangeParent(s.ctx, "99", true)
		s.Require().NoError(err)
		s.Equal(box.MovedWithRename, outcome)
	})

	s.Run("empty parent id", func() {
		file := s.account.File("23")
		_, err := file.ChangeParent(s.ctx, "", false)
		s.Require().Error(err)
	})
}

func (s *ItemTestSuite) TestDelete() {
	s.mockTransport.On("DeleteItem", mock.Anything, box.TypeFile, "7", false).
		Return(nil).
		Once()

	file := s.account.File("7")
	s.Require().NoError(file.Delete(s.ctx))
}

func (s *ItemTestSuite) TestShare() {
	s.mockTransport.On("ShareItem", mock.Anything, box.TypeFile, "7", box.Attrs{"access": "open"}).
		Return(box.Attrs{"id": "7", "shared_link": map[string]any{"url": "https://app.box.com/s/abc"}}, nil).
		Once()

	file := s.account.File("7")
	attrs, err := file.Share(s.ctx, box.Attrs{"access": "open"})
	s.Require().NoError(err)
	s.Require().NotNil(attrs)

	link, ok := attrs["shared_link"].(box.Attrs)
	s.Require().True(ok)
	s.Equal("https://app.box.com/s/abc", link["url"])

	// merged into the cache, so a plain read finds it without fetching
	cached, err := file.Get(s.ctx, "shared_link")
	s.Require().NoError(err)
	s.NotNil(cached)
}

func (s *ItemTestSuite) TestShareInfo() {
	s.mockTransport.On("ShareInfo", mock.Anything, box.TypeFolder, "42").
		Return(box.Attrs{"id": "42", "shared_link": map[string]any{"access": "company"}}, nil).
		Once()

	folder := s.account.Folder("42")
	attrs, err := folder.ShareInfo(s.ctx)
	s.Require().NoError(err)

	link, ok := attrs["shared_link"].(box.Attrs)
	s.Require().True(ok)
	s.Equal("company", link["access"])
}

func (s *ItemTestSuite) TestBasicItemReadsOnlyCache() {
	generic := s.account.Item("5")

	s.Require().NoError(generic.Info(s.ctx), "generic items have no metadata operation")

	_, err := generic.Get(s.ctx, "name")
	s.Require().ErrorIs(err, box.ErrUnknownAttribute)

	id, err := generic.Get(s.ctx, "id")
	s.Require().NoError(err)
	s.Equal("5", id)
	s.Equal(box.TypeItem, generic.Type())
}

func TestItemTestSuite(t *testing.T) {
	suite.Run(t, new(ItemTestSuite))
}
