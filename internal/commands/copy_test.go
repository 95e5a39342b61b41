package commands

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"filemanip/internal/domain"
	"filemanip/internal/errors"
	"filemanip/internal/mocks"
	"filemanip/internal/testutil"
)

func newTestCopyCommand(fs domain.FileSystem) *CopyCommand {
	return NewCopyCommand(fs, testutil.Logger())
}

func TestCopyCommand_Execute_Success(t *testing.T) {
	content := "line one\nline two\x00\xff\r\n"
	memFs, adapter := testutil.MemFS(t, map[string]string{"/src/a.txt": content}, domain.WriteModeAtomic)

	err := newTestCopyCommand(adapter).Execute(context.Background(), CopyRequest{
		InputPath:  "/src/a.txt",
		OutputPath: "/src/b.txt",
	})

	require.NoError(t, err)
	assert.Equal(t, content, testutil.ReadString(t, memFs, "/src/b.txt"), "copy must be byte-identical")
	assert.Equal(t, content, testutil.ReadString(t, memFs, "/src/a.txt"))
}

func TestCopyCommand_Execute_SamePath(t *testing.T) {
	for _, mode := range []domain.WriteMode{domain.WriteModeAtomic, domain.WriteModeDirect} {
		t.Run(string(mode), func(t *testing.T) {
			memFs, adapter := testutil.MemFS(t, map[string]string{"/a.txt": "unchanged"}, mode)

			err := newTestCopyCommand(adapter).Execute(context.Background(), CopyRequest{
				InputPath:  "/a.txt",
				OutputPath: "/a.txt",
			})

			require.NoError(t, err)
			assert.Equal(t, "unchanged", testutil.ReadString(t, memFs, "/a.txt"))
		})
	}
}

func TestCopyCommand_Execute_EmptyFile(t *testing.T) {
	memFs, adapter := testutil.MemFS(t, map[string]string{"/empty.txt": ""}, domain.WriteModeAtomic)

	err := newTestCopyCommand(adapter).Execute(context.Background(), CopyRequest{
		InputPath:  "/empty.txt",
		OutputPath: "/copy.txt",
	})

	require.NoError(t, err)
	assert.True(t, testutil.Exists(t, memFs, "/copy.txt"))
	assert.Empty(t, testutil.ReadString(t, memFs, "/copy.txt"))
}

func TestCopyCommand_Execute_InputNotFound(t *testing.T) {
	memFs, adapter := testutil.MemFS(t, nil, domain.WriteModeAtomic)

	err := newTestCopyCommand(adapter).Execute(context.Background(), CopyRequest{
		InputPath:  "/missing.txt",
		OutputPath: "/copy.txt",
	})

	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))
	assert.Contains(t, err.Error(), "failed to copy file")
	assert.False(t, testutil.Exists(t, memFs, "/copy.txt"))
}

func TestCopyCommand_Execute_WriteError(t *testing.T) {
	mockFS := mocks.NewMockFileSystem(t)
	mockFS.EXPECT().Stat("/a.txt").Return(nil, nil)
	mockFS.EXPECT().ReadFile("/a.txt").Return([]byte("data"), nil)
	mockFS.EXPECT().WriteFile("/readonly/b.txt", mock.Anything).
		Return(errors.NewIOError("write", "/readonly/b.txt", fs.ErrPermission))

	err := newTestCopyCommand(mockFS).Execute(context.Background(), CopyRequest{
		InputPath:  "/a.txt",
		OutputPath: "/readonly/b.txt",
	})

	require.Error(t, err)
	assert.True(t, errors.IsIO(err))
	assert.ErrorIs(t, err, fs.ErrPermission)
}
