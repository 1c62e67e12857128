package narrator

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGenaiSchema(t *testing.T) {
	s := toGenaiSchema(&nextSegmentSchema)
	require.NotNil(t, s)

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, []string{"narration"}, s.Required)
	assert.Equal(t, genai.TypeString, s.Properties["narration"].Type)
	assert.Equal(t, genai.TypeArray, s.Properties["choices"].Type)
	assert.Equal(t, genai.TypeString, s.Properties["choices"].Items.Type)
	assert.Equal(t, genai.TypeBoolean, s.Properties["town"].Type)

	monster := s.Properties["combat"].Properties["monster"]
	assert.Equal(t, genai.TypeInteger, monster.Properties["hp"].Type)
	assert.Equal(t, "A brief description of the monster's main attack", monster.Properties["attack"].Description)
}

func TestGeminiText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"narration":`), genai.Text(`"hi"}`)}}},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("second candidate")}}},
		},
	}
	assert.Equal(t, `{"narration":"hi"}`, geminiText(resp))
	assert.Equal(t, "", geminiText(&genai.GenerateContentResponse{}))
}
