package assistant

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"shopping-assistant/internal/model"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in     string
		want   Command
		wantOK bool
	}{
		{in: "exit", want: CommandExit, wantOK: true},
		{in: "  QUIT ", want: CommandExit, wantOK: true},
		{in: "Clear", want: CommandClear, wantOK: true},
		{in: "context", want: CommandContext, wantOK: true},
		{in: "stats", want: CommandStats, wantOK: true},
		{in: "status", want: CommandStatus, wantOK: true},
		{in: "help", want: CommandHelp, wantOK: true},
		{in: "/start", want: CommandStart, wantOK: true},
		{in: "/help@shop_bot", want: CommandHelp, wantOK: true},
		{in: "help me pick a laptop", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCommand(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSession_AppendIsBounded(t *testing.T) {
	s := NewSession("s1", 3)
	for i := 0; i < 5; i++ {
		s.Append(model.ConversationRecord{Query: fmt.Sprintf("q%d", i)})
	}

	recs := s.Records()
	assert.Len(t, recs, 3)
	assert.Equal(t, "q2", recs[0].Query)
	assert.Equal(t, "q4", recs[2].Query)
}

func TestSession_RecordsIsCopy(t *testing.T) {
	s := NewSession("s1", 0)
	s.Append(model.ConversationRecord{Query: "a"})

	recs := s.Records()
	recs[0].Query = "mutated"

	assert.Equal(t, "a", s.Records()[0].Query)
}

func TestSession_Clear(t *testing.T) {
	s := NewSession("s1", 0)
	s.Append(model.ConversationRecord{Query: "a"})
	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Records())
}
