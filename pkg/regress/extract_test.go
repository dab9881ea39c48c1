package regress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		want    string
		wantErr error
	}{
		{name: "simple", text: "run TEST_NAME=alu_smoke +seed=1", want: "alu_smoke"},
		{name: "digits and underscores", text: "TEST_NAME=Mul_32x32_v2 ", want: "Mul_32x32_v2"},
		{name: "first match wins", text: "TEST_NAME=first TEST_NAME=second ", want: "first"},
		{name: "multiline record", text: "cd /work\nvsim TEST_NAME=dma_burst -do run.do\n", want: "dma_burst"},
		{name: "no token", text: "vsim -c +seed=1\n", wantErr: ErrNameNotFound},
		{name: "no trailing space", text: "vsim TEST_NAME=alu_smoke", wantErr: ErrNameNotFound},
		{name: "token ends at newline", text: "vsim TEST_NAME=alu_smoke\n", wantErr: ErrNameNotFound},
		{name: "empty value", text: "TEST_NAME= x", wantErr: ErrNameNotFound},
		{name: "empty record", text: "", wantErr: ErrNameNotFound},
		{name: "punctuation stops the name", text: "TEST_NAME=alu-smoke ", wantErr: ErrNameNotFound},
	}

	e := DefaultExtractor()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := e.Extract(tt.text)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractor_ExtractAll_ReturnsEveryMatch(t *testing.T) {
	e := DefaultExtractor()
	got := e.ExtractAll("TEST_NAME=a x TEST_NAME=b y TEST_NAME=a ")
	assert.Equal(t, []string{"a", "b", "a"}, got)
	assert.Empty(t, e.ExtractAll("nothing here"))
}

func TestNewExtractor_CustomKeyIsLiteral(t *testing.T) {
	e, err := NewExtractor("SEQ.NAME")
	require.NoError(t, err)
	assert.Equal(t, "SEQ.NAME", e.Key())

	got, err := e.Extract("SEQ.NAME=uart_rx ")
	require.NoError(t, err)
	assert.Equal(t, "uart_rx", got)

	_, err = e.Extract("SEQxNAME=uart_rx ")
	assert.ErrorIs(t, err, ErrNameNotFound)
}

func TestNewExtractor_RejectsEmptyKey(t *testing.T) {
	_, err := NewExtractor("")
	assert.Error(t, err)
}
