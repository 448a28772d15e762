package entity

// Result is the outcome of a match seen from the human player.
type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
	ResultDraw Result = "draw"
)

// Score is the human's tally against the computer at one difficulty level.
type Score struct {
	Level  int `json:"level"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

func (that *Score) Add(result Result) {
	switch result {
	case ResultWin:
		that.Wins++
	case ResultLoss:
		that.Losses++
	case ResultDraw:
		that.Draws++
	}
}

func (that *Score) Total() int {
	return that.Wins + that.Losses + that.Draws
}

// ResultFor converts the winner of a finished game into the outcome for mark.
func ResultFor(mark, winner Mark) Result {
	switch winner {
	case EmptyCell:
		return ResultDraw
	case mark:
		return ResultWin
	default:
		return ResultLoss
	}
}
