package gol

import (
	"fmt"

	"uk.ac.bris.cs/lifeengine/util"
)

// Event represents any Game of Life event that needs to be communicated to the user.
type Event interface {
	// Stringer allows each event to be printed by the main.
	fmt.Stringer

	// GetCompletedTurns returns the number of generations completed when the event was sent.
	GetCompletedTurns() int
}

// State represents a change in the state of execution.
type State int

const (
	Paused State = iota
	Executing
	Quitting
)

// String methods allow the different types of Events and States to be printed.
func (state State) String() string {
	switch state {
	case Paused:
		return "Paused"
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

// StateChange is sent whenever the run pauses, resumes or quits.
type StateChange struct {
	CompletedTurns int
	NewState       State
}

// TurnComplete is sent after every generation, once the buffers have been swapped.
// Population is the exact live interior count of the new current buffer.
type TurnComplete struct {
	CompletedTurns int
	Population     int
}

// AliveCellsCount is sent every 2 seconds while the run executes.
type AliveCellsCount struct {
	CompletedTurns int
	CellsCount     int
}

// FrameRendered is sent after the frame sink returns for a generation.
// Err is nil on success.
type FrameRendered struct {
	CompletedTurns int
	Err            error
}

// FinalTurnComplete is sent once the run terminates.
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Cell
}

func (event StateChange) String() string {
	return fmt.Sprintf("%v", event.NewState)
}

func (event StateChange) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event TurnComplete) String() string {
	return fmt.Sprintf("Population %d", event.Population)
}

func (event TurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event AliveCellsCount) String() string {
	return fmt.Sprintf("Alive Cells %d", event.CellsCount)
}

func (event AliveCellsCount) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event FrameRendered) String() string {
	if event.Err != nil {
		return fmt.Sprintf("Frame failed: %v", event.Err)
	}
	return "Frame rendered"
}

func (event FrameRendered) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event FinalTurnComplete) String() string {
	return fmt.Sprintf("Final Turn Complete, %d alive", len(event.Alive))
}

func (event FinalTurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}
