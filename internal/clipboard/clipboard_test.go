package clipboard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gitglance/internal/clipboard"
)

func TestServiceCopy(testInstance *testing.T) {
	writeFailure := errors.New("xclip missing")

	testCases := []struct {
		name          string
		text          string
		writeError    error
		expectedError error
		expectWrite   bool
	}{
		{name: "copies_text", text: "/tmp/a.html", expectWrite: true},
		{name: "rejects_blank_text", text: "  ", expectedError: clipboard.ErrEmptyText},
		{name: "wraps_backend_failure", text: "/tmp/a.html", writeError: writeFailure, expectedError: writeFailure, expectWrite: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			var written []string
			service := clipboard.NewServiceWithWriter(func(text string) error {
				written = append(written, text)
				return testCase.writeError
			})

			copyError := service.Copy(testCase.text)

			if testCase.expectedError != nil {
				require.ErrorIs(testInstance, copyError, testCase.expectedError)
			} else {
				require.NoError(testInstance, copyError)
			}
			if testCase.expectWrite {
				require.Equal(testInstance, []string{testCase.text}, written)
			} else {
				require.Empty(testInstance, written)
			}
		})
	}
}
