package notify

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdngo/thesisdesk/internal/logger"
)

func TestErrorTitle(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{400, "Validation Error"},
		{409, "Conflict Error"},
		{422, "Invalid Data"},
		{500, "Error 500"},
		{0, "Error 0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorTitle(tt.status))
	}
}

func TestLogNotifier_WritesEntries(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(logger.New("test", &buf))

	n.Error("Conflict Error", "group name already taken")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "Conflict Error", entry["title"])
	assert.Equal(t, "group name already taken", entry["message"])
}
