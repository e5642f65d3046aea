package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/lexicarte/internal/card"
	"codeberg.org/snonux/lexicarte/internal/theming"
)

// CardTile is one card in the browse grid: the headword and translation on
// the card's procedural texture background, with play and optional delete
// affordances.
type CardTile struct {
	widget.BaseWidget

	container *fyne.Container

	onOpen func()
}

// NewCardTile creates a tile for a card. The delete button is only shown
// while edit mode is active.
func NewCardTile(w card.WordCard, showDelete bool, onOpen, onPlay, onDelete func()) *CardTile {
	t := &CardTile{onOpen: onOpen}

	th := theming.ThemeFor(w.ID)
	pattern := theming.PatternFor(w.Texture)

	background := canvas.NewRasterWithPixels(func(x, y, _, _ int) color.Color {
		return pattern(x, y, th.Background, th.Accent)
	})

	headword := canvas.NewText(w.French, th.Text)
	headword.TextSize = theming.FontSizeFor(w.French)
	headword.TextStyle = fyne.TextStyle{Bold: true}

	phonetic := canvas.NewText(w.Phonetic, th.Accent)
	phonetic.TextSize = 12

	translation := canvas.NewText(w.Translation, th.Text)
	translation.TextSize = 14

	playBtn := ttwidget.NewButtonWithIcon("", theme.MediaPlayIcon(), onPlay)
	playBtn.SetToolTip("Pronounce word")

	bottomRow := container.NewHBox(playBtn, layout.NewSpacer())

	var topRow fyne.CanvasObject = layout.NewSpacer()
	if showDelete {
		deleteBtn := ttwidget.NewButtonWithIcon("", theme.DeleteIcon(), onDelete)
		deleteBtn.Importance = widget.DangerImportance
		deleteBtn.SetToolTip("Delete card")
		topRow = container.NewHBox(layout.NewSpacer(), deleteBtn)
	}

	body := container.NewVBox(
		topRow,
		headword,
		phonetic,
		translation,
		layout.NewSpacer(),
		bottomRow,
	)

	t.container = container.NewStack(background, container.NewPadded(body))
	t.ExtendBaseWidget(t)
	return t
}

// CreateRenderer implements fyne.Widget
func (t *CardTile) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.container)
}

// Tapped opens the card's detail view.
func (t *CardTile) Tapped(*fyne.PointEvent) {
	if t.onOpen != nil {
		t.onOpen()
	}
}
