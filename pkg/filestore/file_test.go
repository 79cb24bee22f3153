package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func seedRecords() []record {
	return []record{{ID: "1", Name: "Jellyfin"}}
}

func TestFile_ReadSeedsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "records.json")
	f := New(path, seedRecords)

	data, err := f.Read()

	require.NoError(t, err)
	assert.Equal(t, seedRecords(), data)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"name": "Jellyfin"`)
}

func TestFile_ReadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	f := New(path, seedRecords)

	_, err := f.Read()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRead))
	assert.False(t, errors.Is(err, ErrWrite))
	var storeErr *Error
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, path, storeErr.Path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(content))
}

func TestFile_Update(t *testing.T) {
	someErr := errors.New("rejected")

	testCases := []struct {
		name         string
		fn           func(data []record) ([]record, error)
		expectErr    error
		expectedData []record
	}{
		{
			name: "Success append",
			fn: func(data []record) ([]record, error) {
				return append(data, record{ID: "2", Name: "Nextcloud"}), nil
			},
			expectedData: []record{{ID: "1", Name: "Jellyfin"}, {ID: "2", Name: "Nextcloud"}},
		},
		{
			name: "Callback error leaves file unchanged",
			fn: func(data []record) ([]record, error) {
				return nil, someErr
			},
			expectErr:    someErr,
			expectedData: seedRecords(),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := New(filepath.Join(t.TempDir(), "records.json"), seedRecords)

			_, err := f.Update(tc.fn)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
			} else {
				assert.NoError(t, err)
			}
			data, err := f.Read()
			require.NoError(t, err)
			assert.Equal(t, tc.expectedData, data)
		})
	}
}

func TestFile_UpdateWriteFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.json")
	f := New(path, seedRecords)
	require.NoError(t, f.Init())

	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	// read-only directory: the temp file cannot be created
	require.NoError(t, os.Chmod(dir, 0o500))
	defer os.Chmod(dir, 0o700)

	_, err := f.Update(func(data []record) ([]record, error) {
		return append(data, record{ID: "2"}), nil
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrite))
	require.NoError(t, os.Chmod(dir, 0o700))
	data, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, seedRecords(), data)
}

func TestFile_ConcurrentUpdates(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "counter.json"), func() int { return 0 })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.Update(func(n int) (int, error) { return n + 1, nil })
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	n, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, 50, n)
}
