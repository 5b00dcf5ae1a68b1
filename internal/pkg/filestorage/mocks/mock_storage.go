package mocks

import (
	"mime/multipart"

	"github.com/stretchr/testify/mock"
)

// MockFileStorage is a testify mock for filestorage.FileStorage.
type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	args := m.Called(fileHeader)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error) {
	args := m.Called(fileHeader, path)
	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) DeleteFile(filePath string) error {
	args := m.Called(filePath)
	return args.Error(0)
}
