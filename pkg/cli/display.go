package cli

import (
	"fmt"

	"github.com/balaclava-guy/isofetch/pkg/domain/interfaces"
	"github.com/fatih/color"
)

// StageReporter prints one line per pipeline stage.
type StageReporter struct {
	stage *color.Color
	done  *color.Color
}

func NewStageReporter() interfaces.Reporter {
	return &StageReporter{
		stage: color.New(color.FgCyan),
		done:  color.New(color.FgGreen, color.Bold),
	}
}

func (r *StageReporter) Stagef(format string, args ...any) {
	r.stage.Print("» ")
	fmt.Printf(format+"\n", args...)
}

func (r *StageReporter) Donef(format string, args ...any) {
	r.done.Print("✔ ")
	fmt.Printf(format+"\n", args...)
}
