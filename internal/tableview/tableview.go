// Package tableview prints a rendered board as a plain text table.
package tableview

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

const (
	SymbolWater  = "."
	SymbolShip   = "#"
	SymbolSunken = "X"
	SymbolMissed = "o"
)

// Symbol is the single character drawn for a view cell.
func Symbol(vc mb.ViewCell) string {
	switch {
	case vc.State == mb.ViewStateSunken:
		return SymbolSunken
	case vc.State == mb.ViewStateMissed:
		return SymbolMissed
	case vc.Ship:
		return SymbolShip
	default:
		return SymbolWater
	}
}

func colorsFor(vc mb.ViewCell) tablewriter.Colors {
	switch {
	case vc.State == mb.ViewStateSunken:
		return tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiRedColor}
	case vc.State == mb.ViewStateMissed:
		return tablewriter.Colors{tablewriter.FgHiBlackColor}
	case vc.Ship:
		return tablewriter.Colors{tablewriter.FgHiWhiteColor}
	default:
		return tablewriter.Colors{tablewriter.FgBlueColor}
	}
}

// Print writes the board with row and column indexes followed by the
// remaining parts and the notification, if any.
func Print(out io.Writer, v mb.View, color bool) {
	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	header := []string{""}
	for col := 0; col < mb.GridSize; col++ {
		header = append(header, strconv.Itoa(col))
	}
	table.SetHeader(header)

	for row := 0; row < mb.GridSize; row++ {
		line := []string{strconv.Itoa(row)}
		colors := []tablewriter.Colors{{}}
		for col := 0; col < mb.GridSize; col++ {
			vc := v.Cells[row][col]
			line = append(line, Symbol(vc))
			colors = append(colors, colorsFor(vc))
		}

		if color {
			table.Rich(line, colors)
		} else {
			table.Append(line)
		}
	}
	table.Render()

	fmt.Fprintf(out, "remaining parts: %d\n", v.RemainingParts)
	if v.Notification != "" {
		fmt.Fprintln(out, v.Notification)
	}
}
