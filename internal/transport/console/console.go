package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	boardSide    = 3
	rowSeparator = "---+---+---"
)

// Console talks to the human through a text stream. Numbers are read as whitespace separated words.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Console{
		scanner: scanner,
		out:     out,
	}
}

// AskMark asks which symbol the human plays with.
func (that *Console) AskMark() (entity.Mark, error) {
	if err := that.println("Choose the symbol you will play with:"); err != nil {
		return entity.EmptyCell, err
	}

	for {
		choice, err := that.readInt("Enter 1 for 'X' or 2 for 'O': ")
		if err != nil {
			return entity.EmptyCell, err
		}

		switch choice {
		case 1:
			return entity.PlayerX, nil
		case 2:
			return entity.PlayerO, nil
		}
	}
}

// AskDifficultyLevel returns a level between 0 and maxLevel inclusive.
func (that *Console) AskDifficultyLevel(maxLevel int) (int, error) {
	if maxLevel < 0 {
		return 0, fmt.Errorf("%w: max level %d", apperror.ErrInvalidLevel, maxLevel)
	}

	if err := that.println("Choose the difficulty level:"); err != nil {
		return 0, err
	}

	prompt := fmt.Sprintf("Enter a number between 0 and %d: ", maxLevel)
	for {
		choice, err := that.readInt(prompt)
		if err != nil {
			return 0, err
		}

		if choice >= 0 && choice <= maxLevel {
			return choice, nil
		}
	}
}

// AskMove returns a valid move. The human types cells numbered from 1.
func (that *Console) AskMove(board *entity.Board) (int, error) {
	if board.IsEnded() {
		return 0, apperror.ErrGameFinished
	}

	for {
		choice, err := that.readInt("Choose your move: ")
		if err != nil {
			return 0, err
		}

		if move := choice - 1; board.IsValidMove(move) {
			return move, nil
		}
	}
}

func (that *Console) AskPlayAgain() (bool, error) {
	if err := that.println("Do you want to play again?"); err != nil {
		return false, err
	}

	for {
		choice, err := that.readInt("Enter 1 for Yes or 2 for No: ")
		if err != nil {
			return false, err
		}

		switch choice {
		case 1:
			return true, nil
		case 2:
			return false, nil
		}
	}
}

func (that *Console) ShowBoard(board *entity.Board) error {
	var sb strings.Builder

	sb.WriteString("\n")
	cells := board.Cells()
	for row := 0; row < boardSide; row++ {
		for col := 0; col < boardSide; col++ {
			pos := row*boardSide + col

			switch cells[pos] {
			case entity.EmptyCell:
				fmt.Fprintf(&sb, " %d ", pos+1)
			default:
				fmt.Fprintf(&sb, " %s ", cells[pos])
			}

			if col < boardSide-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")

		if row < boardSide-1 {
			sb.WriteString(rowSeparator + "\n")
		}
	}

	if board.IsEnded() {
		sb.WriteString("Game over.\n")
	} else {
		next, err := board.NextMark()
		if err != nil {
			return fmt.Errorf("failed to get next mark: %w", err)
		}
		fmt.Fprintf(&sb, "Next to move: %s\n", next)
	}

	return that.print(sb.String())
}

func (that *Console) ShowResult(message string) error {
	return that.println(message)
}

func (that *Console) ShowScore(score entity.Score) error {
	return that.println(fmt.Sprintf("Level %d score: %d won, %d lost, %d drawn",
		score.Level, score.Wins, score.Losses, score.Draws))
}

// readInt prompts until the next word parses as an integer.
func (that *Console) readInt(prompt string) (int, error) {
	for {
		if err := that.print(prompt); err != nil {
			return 0, err
		}

		if !that.scanner.Scan() {
			if err := that.scanner.Err(); err != nil {
				return 0, fmt.Errorf("failed to read input: %w", err)
			}

			return 0, fmt.Errorf("failed to read input: %w", io.EOF)
		}

		value, err := strconv.Atoi(that.scanner.Text())
		if err == nil {
			return value, nil
		}
	}
}

func (that *Console) print(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (that *Console) println(text string) error {
	return that.print(text + "\n")
}
