package gui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/lexicarte/internal/card"
	"codeberg.org/snonux/lexicarte/internal/theming"
)

// buildDetailView renders a single card with every generated field and the
// pronunciation controls.
func (a *Application) buildDetailView(w card.WordCard) fyne.CanvasObject {
	th := theming.ThemeFor(w.ID)
	pattern := theming.PatternFor(w.Texture)

	background := canvas.NewRasterWithPixels(func(x, y, _, _ int) color.Color {
		return pattern(x, y, th.Background, th.Accent)
	})

	headword := canvas.NewText(w.French, th.Text)
	headword.TextSize = 36
	headword.TextStyle = fyne.TextStyle{Bold: true}

	var headerBits []fyne.CanvasObject
	headerBits = append(headerBits, headword)
	if w.Phonetic != "" {
		phonetic := canvas.NewText(w.Phonetic, th.Accent)
		phonetic.TextSize = 18
		headerBits = append(headerBits, phonetic)
	}
	if w.Gender == card.GenderMasculine || w.Gender == card.GenderFeminine || w.Gender == card.GenderBoth {
		gender := canvas.NewText(fmt.Sprintf("(%s)", w.Gender), th.Text)
		gender.TextSize = 14
		gender.TextStyle = fyne.TextStyle{Italic: true}
		headerBits = append(headerBits, gender)
	}

	playWord := ttwidget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		a.speak(w.French)
	})
	playWord.SetToolTip("Pronounce word")

	header := container.NewStack(background,
		container.NewPadded(container.NewHBox(append(headerBits, playWord)...)))

	form := container.NewVBox(
		detailField("Translation", w.Translation),
		detailField("Definition", w.Definition),
	)

	if w.ExampleSentence != "" {
		playExample := ttwidget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
			a.speak(w.ExampleSentence)
		})
		playExample.SetToolTip("Pronounce example")

		example := widget.NewLabel(w.ExampleSentence)
		example.Wrapping = fyne.TextWrapWord
		example.TextStyle = fyne.TextStyle{Italic: true}

		form.Add(widget.NewLabelWithStyle("Example", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		form.Add(container.NewBorder(nil, nil, nil, playExample, example))
		if w.ExampleTranslation != "" {
			translated := widget.NewLabel(w.ExampleTranslation)
			translated.Wrapping = fyne.TextWrapWord
			form.Add(translated)
		}
	}

	if w.Nuance != "" {
		form.Add(detailField("Nuance", w.Nuance))
	}

	back := widget.NewButtonWithIcon("Back", theme.NavigateBackIcon(), func() {
		a.showBrowse()
	})

	deleteBtn := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() {
		dialog.NewConfirm("Delete Card",
			fmt.Sprintf("Delete the card for '%s'?", w.French),
			func(confirmed bool) {
				if !confirmed {
					return
				}
				a.deleteCard(w.ID)
				a.showBrowse()
			}, a.window).Show()
	})
	deleteBtn.Importance = widget.DangerImportance

	footer := container.NewBorder(nil, nil, back, deleteBtn)

	return container.NewBorder(header, footer, nil, nil,
		container.NewVScroll(container.NewPadded(form)))
}

func detailField(name, value string) fyne.CanvasObject {
	label := widget.NewLabel(value)
	label.Wrapping = fyne.TextWrapWord
	return container.NewVBox(
		widget.NewLabelWithStyle(name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		label,
	)
}
