package ui

import (
	"image"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"lgd-info/lgd"
)

func Start(info lgd.Info, img image.Image) error {
	viewer := CreateViewer(info, img, termenv.ColorProfile())
	if err := tea.NewProgram(viewer).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
