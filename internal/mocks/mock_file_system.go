// Package mocks provides testify mocks for the domain ports, written to the
// mockery expecter layout.
package mocks

import (
	os "os"

	mock "github.com/stretchr/testify/mock"
)

// MockFileSystem is a mock type for the FileSystem type
type MockFileSystem struct {
	mock.Mock
}

type MockFileSystem_Expecter struct {
	mock *mock.Mock
}

func (_m *MockFileSystem) EXPECT() *MockFileSystem_Expecter {
	return &MockFileSystem_Expecter{mock: &_m.Mock}
}

// ReadFile provides a mock function with given fields: path
func (_m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	ret := _m.Called(path)

	if len(ret) == 0 {
		panic("no return value specified for ReadFile")
	}

	var r0 []byte
	var r1 error
	if rf, ok := ret.Get(0).(func(string) ([]byte, error)); ok {
		return rf(path)
	}
	if rf, ok := ret.Get(0).(func(string) []byte); ok {
		r0 = rf(path)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]byte)
		}
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(path)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockFileSystem_ReadFile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ReadFile'
type MockFileSystem_ReadFile_Call struct {
	*mock.Call
}

// ReadFile is a helper method to define mock.On call
//   - path string
func (_e *MockFileSystem_Expecter) ReadFile(path interface{}) *MockFileSystem_ReadFile_Call {
	return &MockFileSystem_ReadFile_Call{Call: _e.mock.On("ReadFile", path)}
}

func (_c *MockFileSystem_ReadFile_Call) Run(run func(path string)) *MockFileSystem_ReadFile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockFileSystem_ReadFile_Call) Return(_a0 []byte, _a1 error) *MockFileSystem_ReadFile_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockFileSystem_ReadFile_Call) RunAndReturn(run func(string) ([]byte, error)) *MockFileSystem_ReadFile_Call {
	_c.Call.Return(run)
	return _c
}

// Stat provides a mock function with given fields: path
func (_m *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	ret := _m.Called(path)

	if len(ret) == 0 {
		panic("no return value specified for Stat")
	}

	var r0 os.FileInfo
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (os.FileInfo, error)); ok {
		return rf(path)
	}
	if rf, ok := ret.Get(0).(func(string) os.FileInfo); ok {
		r0 = rf(path)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(os.FileInfo)
		}
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(path)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockFileSystem_Stat_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Stat'
type MockFileSystem_Stat_Call struct {
	*mock.Call
}

// Stat is a helper method to define mock.On call
//   - path string
func (_e *MockFileSystem_Expecter) Stat(path interface{}) *MockFileSystem_Stat_Call {
	return &MockFileSystem_Stat_Call{Call: _e.mock.On("Stat", path)}
}

func (_c *MockFileSystem_Stat_Call) Run(run func(path string)) *MockFileSystem_Stat_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockFileSystem_Stat_Call) Return(_a0 os.FileInfo, _a1 error) *MockFileSystem_Stat_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockFileSystem_Stat_Call) RunAndReturn(run func(string) (os.FileInfo, error)) *MockFileSystem_Stat_Call {
	_c.Call.Return(run)
	return _c
}

// WriteFile provides a mock function with given fields: path, data
func (_m *MockFileSystem) WriteFile(path string, data []byte) error {
	ret := _m.Called(path, data)

	if len(ret) == 0 {
		panic("no return value specified for WriteFile")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(string, []byte) error); ok {
		r0 = rf(path, data)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockFileSystem_WriteFile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WriteFile'
type MockFileSystem_WriteFile_Call struct {
	*mock.Call
}

// WriteFile is a helper method to define mock.On call
//   - path string
//   - data []byte
func (_e *MockFileSystem_Expecter) WriteFile(path interface{}, data interface{}) *MockFileSystem_WriteFile_Call {
	return &MockFileSystem_WriteFile_Call{Call: _e.mock.On("WriteFile", path, data)}
}

func (_c *MockFileSystem_WriteFile_Call) Run(run func(path string, data []byte)) *MockFileSystem_WriteFile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].([]byte))
	})
	return _c
}

func (_c *MockFileSystem_WriteFile_Call) Return(_a0 error) *MockFileSystem_WriteFile_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockFileSystem_WriteFile_Call) RunAndReturn(run func(string, []byte) error) *MockFileSystem_WriteFile_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockFileSystem creates a new instance of MockFileSystem. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockFileSystem(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFileSystem {
	mock := &MockFileSystem{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
