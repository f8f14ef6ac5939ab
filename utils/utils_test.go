package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ionutliviu/box-go-sdk/utils"
)

/**********************************
 ************TESTS*****************
 **********************************/

type utilsSuite struct {
	suite.Suite
}

func (s *utilsSuite) TestDisambiguateName() {
	now := time.Date(2013, time.May, 10, 12, 30, 45, 0, time.UTC)

	tests := []struct {
		name     string
		keepExt  bool
		expected string
		message  string
	}{
		{
			name:     "Resources",
			keepExt:  false,
			expected: "Resources (2013-05-10 12-30 UTC)",
			message:  "folder name - suffix appended",
		},
		{
			name:     "report.pdf",
			keepExt:  true,
			expected: "report (2013-05-10 12-30 UTC).pdf",
			message:  "file name - suffix goes before the extension",
		},
		{
			name:     "archive.tar.gz",
			keepExt:  true,
			expected: "archive.tar (2013-05-10 12-30 UTC).gz",
			message:  "multiple dots - only the final extension moves",
		},
		{
			name:     "notes",
			keepExt:  true,
			expected: "notes (2013-05-10 12-30 UTC)",
			message:  "file without extension - plain suffix",
		},
		{
			name:     ".bashrc",
			keepExt:  true,
			expected: ".bashrc (2013-05-10 12-30 UTC)",
			message:  "dotfile - leading dot is not an extension",
		},
		{
			name:     "Resources (2012-01-01 08-15 UTC)",
			keepExt:  false,
			expected: "Resources (2013-05-10 12-30 UTC)",
			message:  "already stamped - old suffix replaced, not stacked",
		},
		{
			name:     "report (2012-01-01 08-15 UTC).pdf",
			keepExt:  true,
			expected: "report (2013-05-10 12-30 UTC).pdf",
			message:  "already stamped file - old suffix replaced before the extension",
		},
	}

	for _, tc := range tests {
		s.Run(tc.message, func() {
			s.Equal(tc.expected, utils.DisambiguateName(tc.name, tc.keepExt, now), tc.message)
		})
	}
}

func (s *utilsSuite) TestDisambiguateNameConvertsToUTC() {
	est := time.FixedZone("EST", -5*60*60)
	now := time.Date(2013, time.May, 10, 7, 30, 0, 0, est)
	s.Equal("docs (2013-05-10 12-30 UTC)", utils.DisambiguateName("docs", false, now))
}

func (s *utilsSuite) TestStripDisambiguationSuffix() {
	tests := []struct {
		name     string
		expected string
		message  string
	}{
		{
			name:     "Resources (2013-05-10 12-30 UTC)",
			expected: "Resources",
			message:  "stamped name - suffix removed",
		},
		{
			name:     "Resources   (2013-05-10 12-30 UTC)",
			expected: "Resources",
			message:  "extra spaces before the stamp are removed too",
		},
		{
			name:     "Resources",
			expected: "Resources",
			message:  "unstamped name - unchanged",
		},
		{
			name:     "Minutes (draft)",
			expected: "Minutes (draft)",
			message:  "parenthesized text that is not a stamp - unchanged",
		},
		{
			name:     "(2013-05-10 12-30 UTC) Resources",
			expected: "(2013-05-10 12-30 UTC) Resources",
			message:  "stamp not at the end - unchanged",
		},
	}

	for _, tc := range tests {
		s.Run(tc.message, func() {
			s.Equal(tc.expected, utils.StripDisambiguationSuffix(tc.name), tc.message)
		})
	}
}

func (s *utilsSuite) TestSplitExt() {
	tests := []struct {
		name         string
		expectedBase string
		expectedExt  string
		message      string
	}{
		{
			name:         "report.pdf",
			expectedBase: "report",
			expectedExt:  ".pdf",
			message:      "simple extension",
		},
		{
			name:         "archive.tar.gz",
			expectedBase: "archive.tar",
			expectedExt:  ".gz",
			message:      "final dot wins",
		},
		{
			name:         "notes",
			expectedBase: "notes",
			expectedExt:  "",
			message:      "no extension",
		},
		{
			name:         ".bashrc",
			expectedBase: ".bashrc",
			expectedExt:  "",
			message:      "dotfile has no extension",
		},
		{
			name:         "trailing.",
			expectedBase: "trailing",
			expectedExt:  ".",
			message:      "trailing dot is the extension",
		},
	}

	for _, tc := range tests {
		s.Run(tc.message, func() {
			base, ext := utils.SplitExt(tc.name)
			s.Equal(tc.expectedBase, base, tc.message)
			s.Equal(tc.expectedExt, ext, tc.message)
		})
	}
}

func TestUtils(t *testing.T) {
	suite.Run(t, new(utilsSuite))
}
