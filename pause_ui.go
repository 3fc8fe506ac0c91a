package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewPauseUI builds the pause overlay: a dark strip across the middle of
// the screen with Resume, Restart Scene, and Quit to Title. No theme
// assets, just colored nine-slices and the built-in basic font.
func NewPauseUI(g *Game) *ebitenui.UI {
	stripImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x10, G: 0x1a, B: 0x1a, A: 230})
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0x2a, G: 0x44, B: 0x44, A: 0xff})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x1c, G: 0x30, B: 0x30, A: 0xff})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	textColor := color.NRGBA{R: 0xd8, G: 0xe2, B: 0xe2, A: 0xff}
	hintColor := color.NRGBA{R: 0x8a, G: 0x9a, B: 0x9a, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: textColor}

	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Pressed: btnPressed}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 32), centered),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	strip := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(stripImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(14),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 28, Bottom: 28, Left: 60, Right: 60}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchHorizontal:  true,
			}),
		),
	)

	strip.AddChild(widget.NewText(
		widget.TextOpts.Text("-- paused --", &face, textColor),
		widget.TextOpts.WidgetOpts(centered),
	))
	strip.AddChild(button("Resume", func() { g.paused = false }))
	strip.AddChild(button("Restart Scene", func() { g.restartPlay() }))
	strip.AddChild(button("Quit to Title", func() { g.setScene(NewTitleScene(g)) }))
	strip.AddChild(widget.NewText(
		widget.TextOpts.Text("tab resumes", &face, hintColor),
		widget.TextOpts.WidgetOpts(centered),
	))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(strip)

	return &ebitenui.UI{Container: root}
}
