package source

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `topic,question,option1,option2,option3,option4,correct_idx,correct_indices,explanation,difficulty,tags
Networking,What is a VPC?,A virtual network,A container,A database,A queue,0,,Isolated virtual network.,easy,"core, vpc"
Networking,"Pick the private ranges",10.0.0.0/8,8.8.8.8/32,172.16.0.0/12,1.1.1.1/32,,"0,2",,medium,
Storage,Which tier is coldest?,Standard,Archive,Premium,,1,,,hard,
,missing topic,a,b,,,0,,,,
Storage,,a,b,,,0,,,,
`

func TestParseCSV(t *testing.T) {
	set, err := ParseCSV([]byte(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"Networking", "Storage"}, set.Topics())
	assert.Equal(t, 3, set.Len(), "rows without topic or question are skipped")

	vpc := set["Networking"][0]
	assert.Equal(t, "What is a VPC?", vpc.Text)
	assert.Len(t, vpc.Options, 4)
	assert.Equal(t, 0, vpc.CorrectIndex)
	assert.False(t, vpc.IsMulti)
	assert.Equal(t, "easy", vpc.Difficulty)
	assert.Equal(t, []string{"core", "vpc"}, vpc.Tags)
	assert.Equal(t, "Isolated virtual network.", vpc.Explanation)

	multi := set["Networking"][1]
	assert.True(t, multi.IsMulti)
	assert.Equal(t, []int{0, 2}, multi.CorrectIndices)

	cold := set["Storage"][0]
	assert.Len(t, cold.Options, 3, "empty option cells are dropped")
	assert.Equal(t, 1, cold.CorrectIndex)
}

func TestParseCSVOptionColumnOrder(t *testing.T) {
	// Header order must not matter; option columns sort numerically.
	csv := "option2,question,option1,topic\nsecond,q,first,T\n"
	set, err := ParseCSV([]byte(csv))
	require.NoError(t, err)

	q := set["T"][0]
	assert.Equal(t, []string{"first", "second"}, q.Options)
}

func TestParseCSVMissingColumns(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"no topic", "question,option1\nq,a\n"},
		{"no question", "topic,option1\nT,a\n"},
		{"no options", "topic,question\nT,q\n"},
		{"empty input", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV([]byte(tt.csv))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestParseCSVAllRowsInvalid(t *testing.T) {
	csv := "topic,question,option1\n,q,a\nT,,a\n"
	_, err := ParseCSV([]byte(csv))
	assert.True(t, errors.Is(err, ErrInvalid))
}
