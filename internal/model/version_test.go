package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	cases := map[string]struct {
		input string
		want  Version
	}{
		"interpreter banner":  {input: "Python 3.12.1\n", want: Version{3, 12, 1}},
		"major minor only":    {input: "3.11", want: Version{3, 11, 0}},
		"version info string": {input: "3.10.4.final.0", want: Version{3, 10, 4}},
		"release candidate":   {input: "Python 3.13.0rc2", want: Version{3, 13, 0}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseVersion(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("rejects text without a version", func(t *testing.T) {
		_, err := ParseVersion("command not found")
		assert.Error(t, err)
	})
}

func TestVersion_AtLeast(t *testing.T) {
	minimum := MustParseVersion("3.11")

	assert.True(t, Version{3, 11, 0}.AtLeast(minimum))
	assert.True(t, Version{3, 12, 4}.AtLeast(minimum))
	assert.True(t, Version{4, 0, 0}.AtLeast(minimum))
	assert.False(t, Version{3, 10, 14}.AtLeast(minimum))
	assert.False(t, Version{2, 7, 18}.AtLeast(minimum))
	assert.False(t, Version{}.AtLeast(minimum), "unknown version never satisfies a minimum")
}

func TestVersion_Compare(t *testing.T) {
	assert.Equal(t, 0, Version{3, 12, 1}.Compare(Version{3, 12, 1}))
	assert.Equal(t, -1, Version{3, 9, 0}.Compare(Version{3, 10, 0}))
	assert.Equal(t, 1, Version{3, 12, 2}.Compare(Version{3, 12, 1}))
}

func TestVersion_String(t *testing.T) {
	assert.Equal(t, "3.12.0", Version{3, 12, 0}.String())
	assert.Equal(t, "v3.12.0", Version{3, 12, 0}.Semver())
}
