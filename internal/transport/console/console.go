package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

// ErrInputClosed is returned once the input has no more lines to give
var ErrInputClosed = errors.New("input closed")

// Console reads player answers and draws the board on a text terminal
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine shows prompt on the same line and blocks until a full line is typed.
// The line ending is stripped, nothing else.
func (c *Console) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(c.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) Message(msg string) error {
	_, err := fmt.Fprintln(c.out, msg)
	return err
}

// RenderBoard prints the column numbers, then every row from the top with its
// number counted from the bottom, each followed by a separator line.
func (c *Console) RenderBoard(board domain.Board) error {
	var sb strings.Builder

	headers := make([]string, board.Columns())
	for i := range headers {
		headers[i] = strconv.Itoa(i + 1)
	}
	sb.WriteString("  " + strings.Join(headers, " ") + "\n")

	separator := " +" + strings.Repeat("-+", board.Columns()) + "\n"
	for i, row := range board {
		sb.WriteString(strconv.Itoa(board.Rows() - i))
		sb.WriteString("|")
		for _, cell := range row {
			sb.WriteString(cell.Token())
			sb.WriteString("|")
		}
		sb.WriteString("\n")
		sb.WriteString(separator)
	}

	_, err := io.WriteString(c.out, sb.String())
	return err
}
