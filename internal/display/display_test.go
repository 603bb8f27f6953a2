package display

import (
	"bytes"
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen/internal/strength"
)

func TestPrinterBatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Header()
	p.BatchHeader(2)
	p.PasswordLabel(1)
	p.Password("Secret-Value-1")
	p.Footer()

	out := buf.String()
	assert.Contains(t, out, "PASSWORD GENERATOR")
	assert.Contains(t, out, "Generated 2 password(s):")
	assert.Contains(t, out, Rule)
	assert.Contains(t, out, "Password 1:")
	assert.Contains(t, out, "Generated Password:\nSecret-Value-1\n")
	assert.Contains(t, out, "Thank you for using the Password Generator Tool!")
}

func TestPrinterStrength(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Strength(strength.Evaluate("aaaaaaaaaaaa"))

	out := buf.String()
	assert.Contains(t, out, "Strength: Weak (41/100)")
	assert.Contains(t, out, "Feedback:")
	assert.Contains(t, out, " • Add uppercase letters")
	assert.Contains(t, out, " • Add more variety of characters")
}

func TestPrinterStrengthWithoutFeedback(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).Strength(strength.Report{Score: 95, Label: strength.VeryStrong})

	assert.Equal(t, "Strength: Very Strong (95/100)\n", buf.String())
}

func TestPlainRender(t *testing.T) {
	var buf bytes.Buffer
	err := Plain{Printer: NewPrinter(&buf, false)}.Render(context.Background(), "abc")
	require.NoError(t, err)

	assert.Equal(t, "Generated Password:\nabc\n", buf.String())
}

func TestRevealRender(t *testing.T) {
	var buf bytes.Buffer
	r := NewReveal(NewPrinter(&buf, false), 0)

	require.NoError(t, r.Render(context.Background(), "abcd"))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Generated Password:\n****\r"))
	assert.Contains(t, out, "a***\r")
	assert.Contains(t, out, "ab**\r")
	assert.Contains(t, out, "abc*\r")
	assert.True(t, strings.HasSuffix(out, "abcd"+strings.Repeat(" ", 10)+"\n"))
}

func TestRevealRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewReveal(NewPrinter(&buf, false), 0).Render(ctx, "abcd")
	assert.ErrorIs(t, err, context.Canceled)
}

func runMatrix(t *testing.T, m MatrixModel) (MatrixModel, int) {
	t.Helper()
	frames := 0
	for !m.Done() {
		next, _ := m.Update(matrixFrameMsg{})
		m = next.(MatrixModel)
		frames++
		require.Less(t, frames, 1000, "matrix animation did not finish")
	}
	return m, frames
}

func TestMatrixModel(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf, false)
	m := NewMatrixModel("Passw0rd!", rand.New(rand.NewPCG(1, 2)), styles, 0)

	assert.Equal(t, 30, m.width)

	m, frames := runMatrix(t, m)
	// noise frames, three flashes per character, one closing frame
	assert.Equal(t, matrixNoiseFrames+len("Passw0rd!")*matrixFlashes+1, frames)

	lines := strings.Split(m.View(), "\n")
	require.GreaterOrEqual(t, len(lines), matrixRows)
	middle := lines[matrixRows/2]
	start := (30 - len("Passw0rd!")) / 2
	assert.Equal(t, "Passw0rd!", middle[start:start+len("Passw0rd!")])
	assert.Contains(t, m.View(), "Password: Passw0rd!")
}

func TestMatrixModelWidthFollowsPassword(t *testing.T) {
	var buf bytes.Buffer
	m := NewMatrixModel(strings.Repeat("x", 40), rand.New(rand.NewPCG(3, 4)), NewStyles(&buf, false), 0)

	assert.Equal(t, 50, m.width)
	for _, row := range m.grid {
		assert.Len(t, row, 50)
	}
}

func TestMatrixModelKeyAborts(t *testing.T) {
	var buf bytes.Buffer
	m := NewMatrixModel("abc", rand.New(rand.NewPCG(5, 6)), NewStyles(&buf, false), 0)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, next.(MatrixModel).Done())
}

func TestScoreStyleThresholds(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyles(&buf, true)

	assert.Equal(t, s.Success.GetForeground(), s.ScoreStyle(70).GetForeground())
	assert.Equal(t, s.Notice.GetForeground(), s.ScoreStyle(50).GetForeground())
	assert.Equal(t, s.Error.GetForeground(), s.ScoreStyle(49).GetForeground())
}
