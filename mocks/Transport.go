package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	box "github.com/ionutliviu/box-go-sdk"
)

// Transport is a mock implementation of the box.Transport interface.
type Transport struct {
	mock.Mock
}

// NewTransport creates a new instance of Transport. It also registers a
// testing interface on the mock and a cleanup function to assert the mocks
// expectations.
func NewTransport(t interface {
	mock.TestingT
	Cleanup(func())
}) *Transport {
	m := &Transport{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// AccountInfo mocks the box.Transport AccountInfo function
func (m *Transport) AccountInfo(ctx context.Context) (box.Attrs, error) {
	args := m.Called(ctx)
	return attrsReturn(args, 0), args.Error(1)
}

// ItemInfo mocks the box.Transport ItemInfo function
func (m *Transport) ItemInfo(ctx context.Context, typ box.ItemType, id string) (box.Attrs, error) {
	args := m.Called(ctx, typ, id)
	return attrsReturn(args, 0), args.Error(1)
}

// FolderInfo mocks the box.Transport FolderInfo function
func (m *Transport) FolderInfo(ctx context.Context, id string, limit, offset int) (box.Attrs, error) {
	args := m.Called(ctx, id, limit, offset)
	return attrsReturn(args, 0), args.Error(1)
}

// CreateFolder mocks the box.Transport CreateFolder function
func (m *Transport) CreateFolder(ctx context.Context, parentID, name string) (box.Attrs, error) {
	args := m.Called(ctx, parentID, name)
	return attrsReturn(args, 0), args.Error(1)
}

// UpdateItem mocks the box.Transport UpdateItem function
func (m *Transport) UpdateItem(ctx context.Context, typ box.ItemType, id string, fields box.Attrs) (box.Attrs, error) {
	args := m.Called(ctx, typ, id, fields)
	return attrsReturn(args, 0), args.Error(1)
}

// DeleteItem mocks the box.Transport DeleteItem function
func (m *Transport) DeleteItem(ctx context.Context, typ box.ItemType, id string, recursive bool) error {
	args := m.Called(ctx, typ, id, recursive)
	return args.Error(0)
}

// UploadFile mocks the box.Transport UploadFile function
func (m *Transport) UploadFile(ctx context.Context, parentID, name string, content io.Reader) (box.Attrs, error) {
	args := m.Called(ctx, parentID, name, content)
	return attrsReturn(args, 0), args.Error(1)
}

// DownloadFile mocks the box.Transport DownloadFile function
func (m *Transport) DownloadFile(ctx context.Context, id string) (io.ReadCloser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

// CreateDiscussion mocks the box.Transport CreateDiscussion function
func (m *Transport) CreateDiscussion(ctx context.Context, folderID, name string) (box.Attrs, error) {
	args := m.Called(ctx, folderID, name)
	return attrsReturn(args, 0), args.Error(1)
}

// Discussions mocks the box.Transport Discussions function
func (m *Transport) Discussions(ctx context.Context, folderID string) ([]box.Attrs, error) {
	args := m.Called(ctx, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]box.Attrs), args.Error(1)
}

// ShareItem mocks the box.Transport ShareItem function
func (m *Transport) ShareItem(ctx context.Context, typ box.ItemType, id string, params box.Attrs) (box.Attrs, error) {
	args := m.Called(ctx, typ, id, params)
	return attrsReturn(args, 0), args.Error(1)
}

// ShareInfo mocks the box.Transport ShareInfo function
func (m *Transport) ShareInfo(ctx context.Context, typ box.ItemType, id string) (box.Attrs, error) {
	args := m.Called(ctx, typ, id)
	return attrsReturn(args, 0), args.Error(1)
}

// SetAuthToken mocks the box.Transport SetAuthToken function
func (m *Transport) SetAuthToken(token string) {
	m.Called(token)
}

func attrsReturn(args mock.Arguments, index int) box.Attrs {
	if args.Get(index) == nil {
		return nil
	}
	return args.Get(index).(box.Attrs)
}
