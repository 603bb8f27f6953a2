package display

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	matrixRows        = 5
	matrixNoiseFrames = 3
	matrixFlashes     = 3
	matrixNoiseChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"
)

// Rand is the random source used for the decorative noise.
type Rand interface {
	IntN(n int) int
}

type matrixFrameMsg struct{}

type matrixCell struct {
	ch      string
	flashed bool
}

// MatrixModel is a bubbletea model that rains noise characters and then
// uncovers the password in the middle row, flashing each character.
type MatrixModel struct {
	password []rune
	width    int
	grid     [][]matrixCell
	rng      Rand
	styles   Styles
	interval time.Duration

	frame    int
	revealed int
	flash    int
	done     bool
}

// NewMatrixModel builds the model. Width is max(len(password)+10, 30).
func NewMatrixModel(password string, rng Rand, styles Styles, interval time.Duration) MatrixModel {
	runes := []rune(password)
	width := max(len(runes)+10, 30)

	grid := make([][]matrixCell, matrixRows)
	for i := range grid {
		grid[i] = make([]matrixCell, width)
		for j := range grid[i] {
			grid[i][j] = matrixCell{ch: " "}
		}
	}

	return MatrixModel{
		password: runes,
		width:    width,
		grid:     grid,
		rng:      rng,
		styles:   styles,
		interval: interval,
	}
}

func (m MatrixModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return matrixFrameMsg{}
	})
}

// Init starts the first frame.
func (m MatrixModel) Init() tea.Cmd {
	return m.tick()
}

// Update advances the animation one frame per tick. Any key aborts.
func (m MatrixModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit
	case matrixFrameMsg:
	default:
		return m, nil
	}

	if m.done {
		return m, tea.Quit
	}

	if m.frame < matrixNoiseFrames {
		m.rain()
		m.frame++
		return m, m.tick()
	}

	if m.revealed >= len(m.password) {
		m.done = true
		return m, tea.Quit
	}

	row, col := matrixRows/2, (m.width-len(m.password))/2+m.revealed
	m.grid[row][col] = matrixCell{ch: string(m.password[m.revealed]), flashed: m.flash%2 == 0}
	m.flash++
	if m.flash == matrixFlashes {
		m.grid[row][col].flashed = true
		m.flash = 0
		m.revealed++
	}
	return m, m.tick()
}

// rain fills roughly a fifth of the cells with noise.
func (m MatrixModel) rain() {
	for i := range m.grid {
		for j := range m.grid[i] {
			if m.rng.IntN(5) == 0 {
				m.grid[i][j] = matrixCell{ch: string(matrixNoiseChars[m.rng.IntN(len(matrixNoiseChars))])}
			}
		}
	}
}

// Done reports whether the animation has finished.
func (m MatrixModel) Done() bool { return m.done }

// View renders the grid, followed by the password once finished.
func (m MatrixModel) View() string {
	var sb strings.Builder
	for _, row := range m.grid {
		for _, cell := range row {
			if cell.flashed {
				sb.WriteString(m.styles.Flash.Render(cell.ch))
				continue
			}
			sb.WriteString(m.styles.Matrix.Render(cell.ch))
		}
		sb.WriteByte('\n')
	}
	if m.done {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Password.Render("Password: " + string(m.password)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Matrix renders a password with the matrix effect through a bubbletea
// program on the printer's writer.
type Matrix struct {
	printer  *Printer
	rng      Rand
	interval time.Duration
}

// NewMatrix creates the matrix renderer. interval is the time per frame.
func NewMatrix(p *Printer, rng Rand, interval time.Duration) *Matrix {
	return &Matrix{printer: p, rng: rng, interval: interval}
}

func (r *Matrix) Render(ctx context.Context, password string) error {
	r.printer.line(r.printer.Styles().Title, "Generating secure password...\n")

	model := NewMatrixModel(password, r.rng, r.printer.Styles(), r.interval)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithOutput(r.printer.Writer()),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	_, err := program.Run()
	return err
}
